package main

import (
	aoc "github.com/maisem/aoc2020"
	"github.com/maisem/aoc2020/automaton"
)

const bootCycles = 6

// cubes boots the pocket dimension and returns the number of active cubes.
// at places the input's 2-D slice in the dimension.
func cubes[P automaton.Point[P]](s solver, at func(x, y int) P) int {
	g := aoc.MustGet(automaton.ParseSparse(s.Lines(), automaton.ParseCell, at, automaton.Inactive))
	sim := automaton.Simulator[*automaton.Sparse[P, automaton.Cell]]{
		Step: func(g *automaton.Sparse[P, automaton.Cell]) *automaton.Sparse[P, automaton.Cell] {
			return g.Step(automaton.LifeRule, automaton.Active)
		},
		Logger: aoc.Logger,
	}
	return sim.Run(g, bootCycles).Count(automaton.Active)
}

/*
want=112

.#.
..#
###
*/
func (s solver) D17p1() any {
	return cubes(s, func(x, y int) aoc.Pt3Int {
		return aoc.Pt3Int{X: x, Y: y}
	})
}

// want=848
func (s solver) D17p2() any {
	return cubes(s, func(x, y int) aoc.Pt4Int {
		return aoc.Pt4Int{X: x, Y: y}
	})
}
