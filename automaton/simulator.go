package automaton

import (
	"fmt"

	"github.com/charmbracelet/log"
	aoc "github.com/maisem/aoc2020"
	"tailscale.com/util/deephash"
)

// Generation is a snapshot of a simulation that can be compared with its
// successor.
type Generation[G any] interface {
	Equal(G) bool
	Hash() deephash.Sum
}

// Simulator advances a generation with Step.
type Simulator[G Generation[G]] struct {
	// Step returns the successor of a generation. It must not modify its
	// argument.
	Step func(G) G

	// MaxGenerations bounds Stabilize. Zero means aoc.DefaultMaxGenerations.
	MaxGenerations int

	// Logger, if non-nil, receives a debug line per simulation.
	Logger *log.Logger
}

func (s Simulator[G]) maxGenerations() int {
	if s.MaxGenerations > 0 {
		return s.MaxGenerations
	}
	return aoc.DefaultMaxGenerations
}

// Stabilize steps g until a generation equals its successor, and returns
// that generation along with the number of steps computed.
//
// It returns ErrOscillation as soon as a generation repeats an older one
// (the run is periodic) and ErrNoFixedPoint once MaxGenerations steps
// have been computed without reaching a fixed point.
func (s Simulator[G]) Stabilize(g G) (G, int, error) {
	limit := s.maxGenerations()
	seen := map[deephash.Sum]int{g.Hash(): 0}
	cur := g
	for n := 1; n <= limit; n++ {
		next := s.Step(cur)
		if next.Equal(cur) {
			s.debug("stabilized", "generations", n)
			return cur, n, nil
		}
		h := next.Hash()
		if prev, ok := seen[h]; ok {
			return cur, n, fmt.Errorf("%w: generation %d repeats generation %d", ErrOscillation, n, prev)
		}
		seen[h] = n
		cur = next
	}
	return cur, limit, fmt.Errorf("%w: gave up after %d generations", ErrNoFixedPoint, limit)
}

// Run steps g exactly n times and returns the last generation.
func (s Simulator[G]) Run(g G, n int) G {
	for i := 0; i < n; i++ {
		g = s.Step(g)
	}
	s.debug("ran", "generations", n)
	return g
}

func (s Simulator[G]) debug(msg string, keyvals ...any) {
	if s.Logger != nil {
		s.Logger.Debug(msg, keyvals...)
	}
}
