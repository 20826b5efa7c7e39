package main

import (
	"slices"
	"strings"

	aoc "github.com/maisem/aoc2020"
)

type bus struct {
	id     int
	offset int // minutes after t the bus must depart
}

func (s solver) buses() (now int, buses []bus) {
	lines := s.Lines()
	if len(lines) != 2 {
		aoc.Logger.Fatalf("want 2 lines of input, got %d", len(lines))
	}
	now = aoc.Int(lines[0])
	for i, f := range strings.Split(lines[1], ",") {
		if f == "x" {
			continue
		}
		buses = append(buses, bus{id: aoc.Int(f), offset: i})
	}
	return now, buses
}

/*
want=295

939
7,13,x,x,59,x,31,19
*/
func (s solver) D13p1() any {
	now, buses := s.buses()
	best, bestWait := 0, -1
	for _, b := range buses {
		wait := (b.id - now%b.id) % b.id
		if bestWait == -1 || wait < bestWait {
			best, bestWait = b.id, wait
		}
	}
	return best * bestWait
}

// want=1068781
func (s solver) D13p2() any {
	_, buses := s.buses()
	// Biggest ids first so the step grows fastest.
	slices.SortFunc(buses, func(a, b bus) int { return b.id - a.id })

	// Once t fits a set of buses, it keeps fitting them when stepping by
	// the LCM of their ids.
	t, step := 0, 1
	for _, b := range buses {
		for (t+b.offset)%b.id != 0 {
			t += step
		}
		step = aoc.LCM(step, b.id)
		s.Debug("bus ", b.id, " fits from t=", t)
	}
	return t
}
