package handheld

import (
	"fmt"

	"tailscale.com/util/set"
)

// Status is where a Machine is in its run.
type Status uint8

const (
	Running    Status = iota
	Looped            // about to execute an instruction for the second time
	Terminated        // the program counter is just past the last instruction
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Looped:
		return "looped"
	case Terminated:
		return "terminated"
	}
	return fmt.Sprintf("Status(%d)", uint8(s))
}

// State is the machine's registers.
type State struct {
	PC  int
	Acc int64
}

// Result is the outcome of running a program to completion.
type Result struct {
	Status Status
	State  State
}

// Machine executes a Program one instruction at a time, remembering every
// instruction it has executed so that it can stop at the first repeat.
type Machine struct {
	prog    Program
	state   State
	status  Status
	visited set.Set[int]
}

func NewMachine(p Program) *Machine {
	return &Machine{
		prog:    p,
		visited: make(set.Set[int], len(p)),
	}
}

func (m *Machine) State() State   { return m.state }
func (m *Machine) Status() Status { return m.status }

// Step executes the instruction at the program counter, unless the machine
// is about to repeat an instruction (Looped) or has run off the end of the
// program (Terminated). Once the machine has stopped, Step does nothing. A
// failed step leaves the machine where it was, so stepping again fails the
// same way.
func (m *Machine) Step() (Status, error) {
	if m.status != Running {
		return m.status, nil
	}
	pc := m.state.PC
	switch {
	case m.visited.Contains(pc):
		m.status = Looped
		return m.status, nil
	case pc == len(m.prog):
		m.status = Terminated
		return m.status, nil
	case pc < 0 || pc > len(m.prog):
		return m.status, fmt.Errorf("%w: %d in a program of length %d", ErrPCOutOfRange, pc, len(m.prog))
	}
	in := m.prog[pc]
	next, err := in.Next(pc)
	if err != nil {
		return m.status, err
	}
	m.visited.Add(pc)
	if in.Op == Acc {
		m.state.Acc += int64(in.Arg)
	}
	m.state.PC = next
	return m.status, nil
}

// Run steps the machine until it loops or terminates.
func (m *Machine) Run() (Result, error) {
	for {
		st, err := m.Step()
		if err != nil {
			return Result{Status: st, State: m.state}, err
		}
		if st != Running {
			return Result{Status: st, State: m.state}, nil
		}
	}
}

// Run runs p on a fresh machine.
func (p Program) Run() (Result, error) {
	return NewMachine(p).Run()
}
