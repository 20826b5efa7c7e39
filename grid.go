package aoc

import (
	"reflect"
	"slices"
	"strings"
	"sync"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

// Grid is a rectangular, row-major grid. Rows are indexed by Y and columns
// by X.
type Grid[T any] [][]T

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if len(g) == 0 || p.X < 0 || p.Y < 0 || p.X >= len(g[0]) || p.Y >= len(g) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

// SetOk is like Set but reports false instead of panicking when p is out of
// bounds.
func (g Grid[T]) SetOk(p Pt, v T) bool {
	if _, ok := g.AtOk(p); !ok {
		return false
	}
	g[p.Y][p.X] = v
	return true
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

// Clone returns a deep copy of g.
func (g Grid[T]) Clone() Grid[T] {
	out := make(Grid[T], len(g))
	for i, row := range g {
		out[i] = slices.Clone(row)
	}
	return out
}

// ForEach calls f for every cell in row-major order.
func (g Grid[T]) ForEach(f func(p Pt, v T)) {
	for y, row := range g {
		for x, v := range row {
			f(Pt{x, y}, v)
		}
	}
}

var (
	hashersMu sync.Mutex
	hashers   map[reflect.Type]any // map[reflect.Type]func(*Grid[T]) deephash.Sum
)

func (g Grid[T]) Hash() deephash.Sum {
	rt := reflect.TypeOf(g)
	hashersMu.Lock()
	if hashers == nil {
		hashers = make(map[reflect.Type]any)
	}
	h, ok := hashers[rt]
	if !ok {
		h = deephash.HasherForType[Grid[T]]()
		hashers[rt] = h
	}
	hashersMu.Unlock()
	return h.(func(*Grid[T]) deephash.Sum)(&g)
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// Format renders the grid one row per line using r to pick each cell's rune.
func (g Grid[T]) Format(r func(T) rune) string {
	var sb strings.Builder
	for _, row := range g {
		for _, v := range row {
			sb.WriteRune(r(v))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

func (p Pt2[T]) Add(o Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X + o.X, p.Y + o.Y}
}

// ForNeighbors calls f for each of the 8 neighbors of p, row by row.
func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}

func (p Pt2[T]) Neighbors() []Pt2[T] {
	out := make([]Pt2[T], 0, 8)
	p.ForNeighbors(func(n Pt2[T]) bool {
		out = append(out, n)
		return true
	})
	return out
}

type Pt3[T constraints.Signed] struct {
	X, Y, Z T
}

type Pt3Int = Pt3[int]

// ForNeighbors calls f for each of the 26 neighbors of p. X varies slowest
// and Z fastest.
func (p Pt3[T]) ForNeighbors(f func(Pt3[T]) (keepGoing bool)) {
	for x := T(-1); x <= 1; x++ {
		for y := T(-1); y <= 1; y++ {
			for z := T(-1); z <= 1; z++ {
				if x == 0 && y == 0 && z == 0 {
					continue
				}
				if !f(Pt3[T]{p.X + x, p.Y + y, p.Z + z}) {
					return
				}
			}
		}
	}
}

func (p Pt3[T]) Neighbors() []Pt3[T] {
	out := make([]Pt3[T], 0, 26)
	p.ForNeighbors(func(n Pt3[T]) bool {
		out = append(out, n)
		return true
	})
	return out
}

type Pt4[T constraints.Signed] struct {
	X, Y, Z, W T
}

type Pt4Int = Pt4[int]

// ForNeighbors calls f for each of the 80 neighbors of p. X varies slowest
// and W fastest.
func (p Pt4[T]) ForNeighbors(f func(Pt4[T]) (keepGoing bool)) {
	for x := T(-1); x <= 1; x++ {
		for y := T(-1); y <= 1; y++ {
			for z := T(-1); z <= 1; z++ {
				for w := T(-1); w <= 1; w++ {
					if x == 0 && y == 0 && z == 0 && w == 0 {
						continue
					}
					if !f(Pt4[T]{p.X + x, p.Y + y, p.Z + z, p.W + w}) {
						return
					}
				}
			}
		}
	}
}

func (p Pt4[T]) Neighbors() []Pt4[T] {
	out := make([]Pt4[T], 0, 80)
	p.ForNeighbors(func(n Pt4[T]) bool {
		out = append(out, n)
		return true
	})
	return out
}
