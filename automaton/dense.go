package automaton

import (
	"fmt"

	aoc "github.com/maisem/aoc2020"
	"tailscale.com/util/deephash"
)

// Dense is a fixed-size 2-D grid. Reads outside the grid return the default
// state and writes outside it are rejected.
type Dense[S comparable] struct {
	cells aoc.Grid[S]
	def   S
}

// NewDense returns a w×h grid filled with def, which is also the state
// reported for out-of-bounds positions.
func NewDense[S comparable](w, h int, def S) *Dense[S] {
	cells := aoc.MakeGrid[S](w, h)
	for _, row := range cells {
		for x := range row {
			row[x] = def
		}
	}
	return &Dense[S]{cells: cells, def: def}
}

// ParseDense builds a grid from rows of single-character cells. All rows
// must have the width of the first one.
func ParseDense[S comparable](lines []string, parse func(rune) (S, error), def S) (*Dense[S], error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrParse)
	}
	w := len([]rune(lines[0]))
	g := NewDense(w, len(lines), def)
	for y, line := range lines {
		row := []rune(line)
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has width %d, want %d", ErrParse, y, len(row), w)
		}
		for x, r := range row {
			s, err := parse(r)
			if err != nil {
				return nil, fmt.Errorf("row %d, column %d: %w", y, x, err)
			}
			g.cells[y][x] = s
		}
	}
	return g, nil
}

func (g *Dense[S]) Size() aoc.Pt {
	return g.cells.Size()
}

// At returns the state at p, or the default state if p is out of bounds.
func (g *Dense[S]) At(p aoc.Pt) S {
	if v, ok := g.cells.AtOk(p); ok {
		return v
	}
	return g.def
}

// AtOk is like At but also reports whether p is in bounds.
func (g *Dense[S]) AtOk(p aoc.Pt) (S, bool) {
	return g.cells.AtOk(p)
}

// Set writes v at p and reports whether p was in bounds.
func (g *Dense[S]) Set(p aoc.Pt, v S) bool {
	return g.cells.SetOk(p, v)
}

// Count returns the number of cells in state v.
func (g *Dense[S]) Count(v S) int {
	n := 0
	g.cells.ForEach(func(_ aoc.Pt, s S) {
		if s == v {
			n++
		}
	})
	return n
}

func (g *Dense[S]) Clone() *Dense[S] {
	return &Dense[S]{cells: g.cells.Clone(), def: g.def}
}

// Equal reports whether g and o have the same bounds and contents.
func (g *Dense[S]) Equal(o *Dense[S]) bool {
	if g.Size() != o.Size() || g.def != o.def {
		return false
	}
	for y, row := range g.cells {
		for x, v := range row {
			if o.cells[y][x] != v {
				return false
			}
		}
	}
	return true
}

func (g *Dense[S]) Hash() deephash.Sum {
	return g.cells.Hash()
}

// Step returns the next generation. Every cell's next state is computed by
// rule from the neighbor count that count reports on g, which is left
// untouched.
func (g *Dense[S]) Step(rule Rule[S], count Counter[S]) *Dense[S] {
	size := g.Size()
	next := NewDense(size.X, size.Y, g.def)
	g.cells.ForEach(func(p aoc.Pt, s S) {
		next.cells.Set(p, rule(s, count(g, p)))
	})
	return next
}

// Format renders the grid using r for each cell.
func (g *Dense[S]) Format(r func(S) rune) string {
	return g.cells.Format(r)
}

// Counter counts the active neighbors of p in g.
type Counter[S comparable] func(g *Dense[S], p aoc.Pt) int

// Adjacent counts the directly adjacent cells (all 8 of them) in state
// active. Positions off the grid don't count.
func Adjacent[S comparable](active S) Counter[S] {
	return func(g *Dense[S], p aoc.Pt) int {
		n := 0
		p.ForNeighbors(func(q aoc.Pt) bool {
			if v, ok := g.AtOk(q); ok && v == active {
				n++
			}
			return true
		})
		return n
	}
}

// Visible looks outward from p in each of the 8 directions, skipping cells
// in state transparent, and counts the directions whose first other cell is
// in state active. A direction that reaches the edge of the grid counts for
// nothing.
func Visible[S comparable](active, transparent S) Counter[S] {
	return func(g *Dense[S], p aoc.Pt) int {
		n := 0
		aoc.Pt{}.ForNeighbors(func(dir aoc.Pt) bool {
			for q := p.Add(dir); ; q = q.Add(dir) {
				v, ok := g.AtOk(q)
				if !ok {
					break
				}
				if v == transparent {
					continue
				}
				if v == active {
					n++
				}
				break
			}
			return true
		})
		return n
	}
}
