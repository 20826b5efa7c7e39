package automaton

import "errors"

var (
	// ErrParse is returned for malformed grid input: an unknown cell
	// character or a row of the wrong width.
	ErrParse = errors.New("automaton: parse error")

	// ErrNoFixedPoint is returned when a simulation has not stabilized within
	// its generation limit.
	ErrNoFixedPoint = errors.New("automaton: no fixed point within generation limit")

	// ErrOscillation is returned when a generation repeats an earlier,
	// different generation. The simulation is periodic and will never
	// stabilize.
	ErrOscillation = errors.New("automaton: generations oscillate")
)
