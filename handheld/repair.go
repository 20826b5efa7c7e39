package handheld

import (
	"fmt"

	aoc "github.com/maisem/aoc2020"
)

// EdgeKind tells real control flow from control flow that would only exist
// after swapping the source instruction. Its value is the edge's weight.
type EdgeKind int

const (
	Existing     EdgeKind = 0
	Hypothetical EdgeKind = 1
)

// Edge is a control-flow edge as seen from its source.
type Edge struct {
	Kind EdgeKind
	To   int
}

// CFG is the control-flow graph of a program of length n. Its nodes are the
// instruction indexes 0..n-1 and the terminal node n. Jumps that leave that
// range have no edge; following them can only crash the machine.
type CFG struct {
	g   *aoc.Digraph[int]
	end int
}

// BuildCFG returns the graph of what p actually does: one Existing edge from
// each instruction to the one it passes control to.
func BuildCFG(p Program) *CFG {
	c := &CFG{g: new(aoc.Digraph[int]), end: len(p)}
	for i := 0; i <= len(p); i++ {
		c.g.AddNode(i)
	}
	for i, in := range p {
		c.addEdge(i, in, Existing)
	}
	return c
}

func (c *CFG) addEdge(i int, in Instruction, kind EdgeKind) {
	next, err := in.Next(i)
	if err != nil || next > c.end {
		return
	}
	c.g.AddArc(i, next, int(kind))
}

// End returns the terminal node, one past the last instruction.
func (c *CFG) End() int { return c.end }

// AddSwaps adds a Hypothetical edge from every jmp and nop of p to where it
// would pass control if it were swapped.
func (c *CFG) AddSwaps(p Program) {
	for i, in := range p {
		if sw, ok := in.Swapped(); ok {
			c.addEdge(i, sw, Hypothetical)
		}
	}
}

// Reverse returns the graph with every edge flipped.
func (c *CFG) Reverse() *CFG {
	return &CFG{g: c.g.Reverse(), end: c.end}
}

// Edges returns the outgoing edges of node i in insertion order.
func (c *CFG) Edges(i int) []Edge {
	arcs := c.g.Arcs[i]
	out := make([]Edge, 0, len(arcs))
	for _, a := range arcs {
		out = append(out, Edge{Kind: EdgeKind(a.Weight), To: a.To})
	}
	return out
}

// Search does a depth-first search for a simple path from one node to
// another whose number of Hypothetical edges is at most budget.
func (c *CFG) Search(from, to, budget int) ([]aoc.Arc[int], bool) {
	return c.g.PathWithin(from, to, budget)
}

// Repair is a fix for a looping program.
type Repair struct {
	// Index is the instruction to swap, or -1 if the program already
	// terminates.
	Index int
	// Path is the proof: a path from the end of the program back to its
	// start in the reversed graph.
	Path []aoc.Arc[int]
}

// FindRepair finds the instruction whose swap makes p terminate.
//
// It builds the control-flow graph of p plus an edge of weight one for every
// possible swap, reverses it and searches from the end of the program back
// to instruction 0 for a path of weight zero, then of weight at most one.
// Such a path, read forwards, is the run of the program with at most one
// instruction swapped: the origin of its weight-one edge. A program that
// already terminates gets Index -1.
func FindRepair(p Program) (Repair, error) {
	cfg := BuildCFG(p)
	cfg.AddSwaps(p)
	rev := cfg.Reverse()

	if !rev.g.ReachableNodes(rev.end)[0] {
		return Repair{Index: -1}, fmt.Errorf("%w: end unreachable from start with any swaps", ErrNoRepair)
	}
	// A path without swaps wins over one with a swap.
	path, ok := rev.Search(rev.end, 0, int(Existing))
	if !ok {
		path, ok = rev.Search(rev.end, 0, int(Hypothetical))
	}
	if !ok {
		return Repair{Index: -1}, ErrNoRepair
	}
	r := Repair{Index: -1, Path: path}
	for _, a := range path {
		if EdgeKind(a.Weight) == Hypothetical {
			// Reversed, so the edge points back at the instruction it came from.
			r.Index = a.To
			break
		}
	}
	return r, nil
}

// Fix repairs p with FindRepair and runs the repaired copy.
func Fix(p Program) (Result, Repair, error) {
	r, err := FindRepair(p)
	if err != nil {
		return Result{}, r, err
	}
	fixed := p
	if r.Index >= 0 {
		fixed = p.Patched(r.Index)
	}
	res, err := fixed.Run()
	if err != nil {
		return res, r, fmt.Errorf("running repaired program: %w", err)
	}
	if res.Status != Terminated {
		return res, r, fmt.Errorf("%w: swapped instruction %d", ErrRepairLoops, r.Index)
	}
	return res, r, nil
}

// FixBruteForce tries every jmp/nop swap in order and returns the run of the
// first patched program that terminates, along with the swapped index. Like
// Fix, it returns index -1 and the plain run if p already terminates.
func FixBruteForce(p Program) (Result, int, error) {
	if res, err := p.Run(); err == nil && res.Status == Terminated {
		return res, -1, nil
	}
	for i, in := range p {
		if _, ok := in.Swapped(); !ok {
			continue
		}
		res, err := p.Patched(i).Run()
		if err != nil {
			// Crashing isn't terminating.
			continue
		}
		if res.Status == Terminated {
			return res, i, nil
		}
	}
	return Result{}, -1, ErrNoRepair
}
