package main

import (
	aoc "github.com/maisem/aoc2020"
	"github.com/maisem/aoc2020/handheld"
)

func (s solver) program() handheld.Program {
	return aoc.MustGet(handheld.Parse(s.Lines()))
}

/*
want=5

nop +0
acc +1
jmp +4
acc +3
jmp -3
acc -99
acc +1
jmp -4
acc +6
*/
func (s solver) D8p1() any {
	res := aoc.MustGet(s.program().Run())
	s.Debugf("stopped %v at %d", res.Status, res.State.PC)
	return res.State.Acc
}

// want=8
func (s solver) D8p2() any {
	p := s.program()
	res, r, err := handheld.Fix(p)
	aoc.MustDo(err)
	if r.Index >= 0 {
		s.Debugf("swapped %v at %d", p[r.Index], r.Index)
	}
	return res.State.Acc
}
