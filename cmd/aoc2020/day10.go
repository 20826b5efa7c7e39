package main

import (
	"slices"

	aoc "github.com/maisem/aoc2020"
)

// adapters returns the adapter ratings in increasing order.
func (s solver) adapters() []int {
	js := aoc.Ints(s.Lines()...)
	slices.Sort(js)
	return js
}

/*
want=35

16
10
15
5
1
11
7
19
6
12
4
*/
func (s solver) D10p1() any {
	diffs := map[int]int{3: 1} // the device is 3 above the last adapter
	prev := 0
	for _, j := range s.adapters() {
		d := j - prev
		if d < 1 || d > 3 {
			aoc.Logger.Fatalf("gap of %d jolts below adapter %d", d, j)
		}
		diffs[d]++
		prev = j
	}
	return diffs[1] * diffs[3]
}

// want=8
func (s solver) D10p2() any {
	ways := map[int]int{0: 1}
	last := 0
	for _, j := range s.adapters() {
		ways[j] = aoc.Sum(ways[j-1], ways[j-2], ways[j-3])
		last = j
	}
	return ways[last]
}
