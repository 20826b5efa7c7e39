package aoc

import (
	"slices"
)

// Arc is a weighted, directed edge.
type Arc[K comparable] struct {
	From, To K
	Weight   int
}

// Digraph is a directed multigraph. Parallel arcs between the same pair of
// nodes are kept, so it can carry an arc per alternative (e.g. one arc for
// what a program does and one for what it would do if patched).
//
// Nodes are remembered in insertion order so that iteration, and therefore
// search order, is deterministic.
type Digraph[K comparable] struct {
	Nodes map[K]bool
	Arcs  map[K][]Arc[K] // outgoing arcs by source

	order []K
}

func (g *Digraph[K]) AddNode(a K) {
	InitMap(&g.Nodes)
	if g.Nodes[a] {
		return
	}
	g.Nodes[a] = true
	g.order = append(g.order, a)
}

func (g *Digraph[K]) AddArc(from, to K, weight int) {
	InitMap(&g.Arcs)
	g.AddNode(from)
	g.AddNode(to)
	g.Arcs[from] = append(g.Arcs[from], Arc[K]{From: from, To: to, Weight: weight})
}

// Order returns the nodes in insertion order.
func (g *Digraph[K]) Order() []K {
	return slices.Clone(g.order)
}

// Reverse returns a new graph with every arc flipped. Weights are kept.
func (g *Digraph[K]) Reverse() *Digraph[K] {
	var out Digraph[K]
	for _, k := range g.order {
		out.AddNode(k)
	}
	for _, k := range g.order {
		for _, a := range g.Arcs[k] {
			out.AddArc(a.To, a.From, a.Weight)
		}
	}
	return &out
}

// ReachableNodes returns the set of nodes reachable from a, including a.
func (g *Digraph[K]) ReachableNodes(a K) map[K]bool {
	visited := make(map[K]bool)
	q := NewQueue(a)
	q.While(func(v K) bool {
		if visited[v] {
			return true
		}
		visited[v] = true
		for _, arc := range g.Arcs[v] {
			q.Push(arc.To)
		}
		return true
	})
	return visited
}

// PathWithin returns the first simple path from start to end whose total
// weight does not exceed budget. Arcs are tried in insertion order and the
// search backtracks on failure. Weights must not be negative.
//
// A path from a node to itself is the empty path.
func (g *Digraph[K]) PathWithin(start, end K, budget int) ([]Arc[K], bool) {
	return g.pathHelper(start, end, budget, make(map[K]bool), nil)
}

func (g *Digraph[K]) pathHelper(start, end K, budget int, visited map[K]bool, path []Arc[K]) ([]Arc[K], bool) {
	if start == end {
		return slices.Clone(path), true
	}
	visited[start] = true
	defer func() {
		visited[start] = false
	}()
	for _, a := range g.Arcs[start] {
		if visited[a.To] || a.Weight > budget {
			continue
		}
		if p, ok := g.pathHelper(a.To, end, budget-a.Weight, visited, append(path, a)); ok {
			return p, true
		}
	}
	return nil, false
}

// PathWeight returns the sum of the weights along path.
func PathWeight[K comparable](path []Arc[K]) int {
	return Fold(path, func(w int, a Arc[K]) int { return w + a.Weight }, 0)
}
