// Package automaton runs cellular automata over dense and sparse grids until
// they stop changing.
//
// A simulation is made of three parts: a grid holding the current
// generation, a Rule mapping a cell's state and its active-neighbor count to
// its next state, and (for dense grids) a Counter deciding which cells count
// as neighbors. Each step builds a new grid from a frozen copy of the
// previous one; grids are never updated in place.
package automaton

import "fmt"

// Rule returns the next state of a cell given its current state and the
// number of active cells among its neighbors. Rules must be pure.
type Rule[S comparable] func(cur S, active int) S

// Seat is the state of a cell in a waiting area.
type Seat uint8

const (
	Floor Seat = iota
	Empty
	Occupied
)

func (s Seat) Rune() rune {
	switch s {
	case Floor:
		return '.'
	case Empty:
		return 'L'
	case Occupied:
		return '#'
	}
	panic(fmt.Sprintf("bad seat %d", s))
}

func (s Seat) String() string {
	return string(s.Rune())
}

// ParseSeat maps '.', 'L' and '#' to Floor, Empty and Occupied.
func ParseSeat(r rune) (Seat, error) {
	switch r {
	case '.':
		return Floor, nil
	case 'L':
		return Empty, nil
	case '#':
		return Occupied, nil
	}
	return Floor, fmt.Errorf("%w: bad seat %q", ErrParse, r)
}

// SeatRule returns the seating rule: an empty seat with no occupied
// neighbors becomes occupied, an occupied seat with at least threshold
// occupied neighbors empties, and floor never changes.
func SeatRule(threshold int) Rule[Seat] {
	return func(cur Seat, active int) Seat {
		switch cur {
		case Floor:
			return Floor
		case Empty:
			if active == 0 {
				return Occupied
			}
			return Empty
		case Occupied:
			if active >= threshold {
				return Empty
			}
			return Occupied
		}
		panic(fmt.Sprintf("bad seat %d", cur))
	}
}

// Cell is the state of a cube in a pocket dimension.
type Cell uint8

const (
	Inactive Cell = iota
	Active
)

func (c Cell) Rune() rune {
	switch c {
	case Inactive:
		return '.'
	case Active:
		return '#'
	}
	panic(fmt.Sprintf("bad cell %d", c))
}

func (c Cell) String() string {
	return string(c.Rune())
}

// ParseCell maps '.' and '#' to Inactive and Active.
func ParseCell(r rune) (Cell, error) {
	switch r {
	case '.':
		return Inactive, nil
	case '#':
		return Active, nil
	}
	return Inactive, fmt.Errorf("%w: bad cell %q", ErrParse, r)
}

// LifeRule is the B3/S23 rule: an active cell survives with 2 or 3 active
// neighbors and an inactive cell activates with exactly 3.
func LifeRule(cur Cell, active int) Cell {
	switch cur {
	case Active:
		if active == 2 || active == 3 {
			return Active
		}
		return Inactive
	case Inactive:
		if active == 3 {
			return Active
		}
		return Inactive
	}
	panic(fmt.Sprintf("bad cell %d", cur))
}
