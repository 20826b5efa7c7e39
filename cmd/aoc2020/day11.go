package main

import (
	aoc "github.com/maisem/aoc2020"
	"github.com/maisem/aoc2020/automaton"
)

type seatGrid = *automaton.Dense[automaton.Seat]

// seats runs the waiting area until nobody moves and returns the number of
// occupied seats.
func (s solver) seats(count automaton.Counter[automaton.Seat], threshold int) int {
	g := aoc.MustGet(automaton.ParseDense(s.Lines(), automaton.ParseSeat, automaton.Floor))
	rule := automaton.SeatRule(threshold)
	sim := automaton.Simulator[seatGrid]{
		Step: func(g seatGrid) seatGrid {
			return g.Step(rule, count)
		},
		MaxGenerations: s.Config().MaxGenerations,
		Logger:         aoc.Logger,
	}
	final, n, err := sim.Stabilize(g)
	aoc.MustDo(err)
	s.Debugf("stable after %d generations:\n%s", n, final.Format(automaton.Seat.Rune))
	return final.Count(automaton.Occupied)
}

/*
want=37

L.LL.LL.LL
LLLLLLL.LL
L.L.L..L..
LLLL.LL.LL
L.LL.LL.LL
L.LLLLL.LL
..L.L.....
LLLLLLLLLL
L.LLLLLL.L
L.LLLLL.LL
*/
func (s solver) D11p1() any {
	return s.seats(automaton.Adjacent(automaton.Occupied), 4)
}

// want=26
func (s solver) D11p2() any {
	return s.seats(automaton.Visible(automaton.Occupied, automaton.Floor), 5)
}
