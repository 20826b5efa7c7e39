package automaton

import (
	"fmt"

	"golang.org/x/exp/maps"
	"tailscale.com/util/deephash"
)

// Point is a position in an unbounded grid of any dimension, such as
// aoc.Pt3Int or aoc.Pt4Int.
type Point[P any] interface {
	comparable
	ForNeighbors(f func(P) (keepGoing bool))
}

// Sparse is an unbounded grid that only stores cells not in the default
// state. Every position it doesn't store is in the default state.
type Sparse[P Point[P], S comparable] struct {
	cells map[P]S
	def   S
}

func NewSparse[P Point[P], S comparable](def S) *Sparse[P, S] {
	return &Sparse[P, S]{cells: make(map[P]S), def: def}
}

// ParseSparse builds a grid from rows of single-character cells. The cell at
// column x of row y is stored at at(x, y).
func ParseSparse[P Point[P], S comparable](lines []string, parse func(rune) (S, error), at func(x, y int) P, def S) (*Sparse[P, S], error) {
	g := NewSparse[P](def)
	for y, line := range lines {
		for x, r := range []rune(line) {
			s, err := parse(r)
			if err != nil {
				return nil, fmt.Errorf("row %d, column %d: %w", y, x, err)
			}
			g.Set(at(x, y), s)
		}
	}
	return g, nil
}

func (g *Sparse[P, S]) At(p P) S {
	if v, ok := g.cells[p]; ok {
		return v
	}
	return g.def
}

// Set writes v at p. It always succeeds; it reports true to match Dense.
func (g *Sparse[P, S]) Set(p P, v S) bool {
	if v == g.def {
		delete(g.cells, p)
	} else {
		g.cells[p] = v
	}
	return true
}

// Len returns the number of cells not in the default state.
func (g *Sparse[P, S]) Len() int {
	return len(g.cells)
}

// Count returns the number of cells in state v. It panics if v is the
// default state, which covers infinitely many cells.
func (g *Sparse[P, S]) Count(v S) int {
	if v == g.def {
		panic("automaton: counting the default state of a sparse grid")
	}
	n := 0
	for _, s := range g.cells {
		if s == v {
			n++
		}
	}
	return n
}

// Candidates returns every position whose state may change in the next
// generation: the stored cells and all their neighbors.
func (g *Sparse[P, S]) Candidates() map[P]bool {
	out := make(map[P]bool, len(g.cells)*3)
	for p := range g.cells {
		out[p] = true
		p.ForNeighbors(func(q P) bool {
			out[q] = true
			return true
		})
	}
	return out
}

// Neighbors returns the number of neighbors of p in state active.
func (g *Sparse[P, S]) Neighbors(p P, active S) int {
	n := 0
	p.ForNeighbors(func(q P) bool {
		if g.At(q) == active {
			n++
		}
		return true
	})
	return n
}

func (g *Sparse[P, S]) Clone() *Sparse[P, S] {
	return &Sparse[P, S]{cells: maps.Clone(g.cells), def: g.def}
}

// Equal reports whether g and o hold the same cells.
func (g *Sparse[P, S]) Equal(o *Sparse[P, S]) bool {
	return g.def == o.def && maps.Equal(g.cells, o.cells)
}

func (g *Sparse[P, S]) Hash() deephash.Sum {
	return deephash.Hash(&g.cells)
}

// Step returns the next generation, applying rule to every candidate
// position with its count of active neighbors in g.
func (g *Sparse[P, S]) Step(rule Rule[S], active S) *Sparse[P, S] {
	next := NewSparse[P](g.def)
	for p := range g.Candidates() {
		next.Set(p, rule(g.At(p), g.Neighbors(p, active)))
	}
	return next
}
