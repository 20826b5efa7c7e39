package automaton

import (
	"strings"
	"testing"

	aoc "github.com/maisem/aoc2020"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at3(x, y int) aoc.Pt3Int { return aoc.Pt3Int{X: x, Y: y} }
func at4(x, y int) aoc.Pt4Int { return aoc.Pt4Int{X: x, Y: y} }
func at2(x, y int) aoc.Pt     { return aoc.Pt{X: x, Y: y} }

func TestNeighborOrder(t *testing.T) {
	got := aoc.Pt3Int{}.Neighbors()
	require.Len(t, got, 26)
	assert.Equal(t, []aoc.Pt3Int{
		{X: -1, Y: -1, Z: -1},
		{X: -1, Y: -1, Z: 0},
		{X: -1, Y: -1, Z: 1},
		{X: -1, Y: 0, Z: -1},
	}, got[:4])
	assert.Equal(t, aoc.Pt3Int{X: 0, Y: 0, Z: -1}, got[12])
	assert.Equal(t, aoc.Pt3Int{X: 0, Y: 0, Z: 1}, got[13])
	assert.Equal(t, aoc.Pt3Int{X: 1, Y: 1, Z: 1}, got[25])

	seen := make(map[aoc.Pt3Int]bool)
	for _, p := range got {
		assert.False(t, seen[p], "duplicate neighbor %v", p)
		seen[p] = true
	}

	p := aoc.Pt3Int{X: 5, Y: -2, Z: 7}
	assert.Contains(t, p.Neighbors(), aoc.Pt3Int{X: 4, Y: -1, Z: 8})
	assert.NotContains(t, p.Neighbors(), p)
}

func TestParseSparse(t *testing.T) {
	g, err := ParseSparse([]string{".#.", "..#"}, ParseCell, at3, Inactive)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Len())
	assert.Equal(t, Active, g.At(aoc.Pt3Int{X: 1}))
	assert.Equal(t, Active, g.At(aoc.Pt3Int{X: 2, Y: 1}))
	assert.Equal(t, Inactive, g.At(aoc.Pt3Int{X: 100, Y: -100, Z: 3}))

	_, err = ParseSparse([]string{".L."}, ParseCell, at3, Inactive)
	assert.ErrorIs(t, err, ErrParse)
}

func TestSparseSet(t *testing.T) {
	g := NewSparse[aoc.Pt3Int](Inactive)
	p := aoc.Pt3Int{X: 1, Y: 2, Z: 3}
	assert.True(t, g.Set(p, Active))
	assert.Equal(t, 1, g.Count(Active))

	c := g.Clone()
	assert.True(t, g.Equal(c))
	assert.Equal(t, g.Hash(), c.Hash())

	// Writing the default state forgets the cell.
	g.Set(p, Inactive)
	assert.Equal(t, 0, g.Len())
	assert.False(t, g.Equal(c))
	assert.Equal(t, 1, c.Len())

	assert.Panics(t, func() { g.Count(Inactive) })
}

func TestSparseStep(t *testing.T) {
	g, err := ParseSparse([]string{"###"}, ParseCell, at3, Inactive)
	require.NoError(t, err)

	assert.Equal(t, 1, g.Neighbors(aoc.Pt3Int{X: 0}, Active))
	assert.Equal(t, 2, g.Neighbors(aoc.Pt3Int{X: 1}, Active))
	assert.Equal(t, 3, g.Neighbors(aoc.Pt3Int{X: 1, Y: 1}, Active))
	assert.Len(t, g.Candidates(), 3*5*3)

	next := g.Step(LifeRule, Active)
	assert.Equal(t, 9, next.Count(Active))
	assert.Equal(t, Inactive, next.At(aoc.Pt3Int{X: 0}))
	assert.Equal(t, Active, next.At(aoc.Pt3Int{X: 1}))
	assert.Equal(t, Inactive, next.At(aoc.Pt3Int{X: 2}))
	for _, p := range []aoc.Pt3Int{
		{X: 1, Y: 1},
		{X: 1, Y: -1},
		{X: 1, Y: 1, Z: 1},
		{X: 1, Y: -1, Z: -1},
	} {
		assert.Equal(t, Active, next.At(p), "at %v", p)
	}
	assert.Equal(t, 3, g.Count(Active), "step modified its input")
}

func TestPocketDimension(t *testing.T) {
	lines := strings.Split(".#.\n..#\n###", "\n")

	g3, err := ParseSparse(lines, ParseCell, at3, Inactive)
	require.NoError(t, err)
	sim3 := Simulator[*Sparse[aoc.Pt3Int, Cell]]{
		Step: func(g *Sparse[aoc.Pt3Int, Cell]) *Sparse[aoc.Pt3Int, Cell] {
			return g.Step(LifeRule, Active)
		},
	}
	assert.Equal(t, 11, sim3.Run(g3, 1).Count(Active))
	assert.Equal(t, 112, sim3.Run(g3, 6).Count(Active))
	assert.Equal(t, 5, g3.Len())

	g4, err := ParseSparse(lines, ParseCell, at4, Inactive)
	require.NoError(t, err)
	sim4 := Simulator[*Sparse[aoc.Pt4Int, Cell]]{
		Step: func(g *Sparse[aoc.Pt4Int, Cell]) *Sparse[aoc.Pt4Int, Cell] {
			return g.Step(LifeRule, Active)
		},
	}
	assert.Equal(t, 848, sim4.Run(g4, 6).Count(Active))
}
