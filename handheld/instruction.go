// Package handheld implements the handheld game console's boot code: a tiny
// accumulator machine with acc, jmp and nop instructions, a loop-detecting
// interpreter, and a search for the single jmp/nop swap that makes a looping
// program terminate.
package handheld

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	// ErrParse is returned for malformed program text.
	ErrParse = errors.New("handheld: parse error")

	// ErrNegativePC is returned when a jmp would move the program counter
	// below zero.
	ErrNegativePC = errors.New("handheld: negative program counter")

	// ErrPCOutOfRange is returned when the program counter lands past the
	// instruction just after the end of the program.
	ErrPCOutOfRange = errors.New("handheld: program counter out of range")

	// ErrNoRepair is returned when no single jmp/nop swap makes the program
	// terminate.
	ErrNoRepair = errors.New("handheld: no single-instruction repair")

	// ErrRepairLoops is returned when a program patched with the repair
	// found by FindRepair still loops. It means the search is wrong.
	ErrRepairLoops = errors.New("handheld: repaired program still loops")
)

// Op is an instruction's operation.
type Op uint8

const (
	Acc Op = iota // add the argument to the accumulator
	Jmp           // jump by the argument, relative to the instruction
	Nop           // do nothing
)

func (o Op) String() string {
	switch o {
	case Acc:
		return "acc"
	case Jmp:
		return "jmp"
	case Nop:
		return "nop"
	}
	return fmt.Sprintf("Op(%d)", uint8(o))
}

// Instruction is a single line of boot code.
type Instruction struct {
	Op  Op
	Arg int
}

func (in Instruction) String() string {
	return fmt.Sprintf("%v %+d", in.Op, in.Arg)
}

// Swapped returns in with jmp and nop exchanged, keeping the argument. It
// reports false for acc, which has no counterpart.
func (in Instruction) Swapped() (Instruction, bool) {
	switch in.Op {
	case Jmp:
		return Instruction{Nop, in.Arg}, true
	case Nop:
		return Instruction{Jmp, in.Arg}, true
	case Acc:
		return in, false
	}
	panic(fmt.Sprintf("bad op %v", in.Op))
}

// Next returns the program counter after executing in at pc. It returns
// ErrNegativePC if a jump would leave the counter negative.
func (in Instruction) Next(pc int) (int, error) {
	switch in.Op {
	case Acc, Nop:
		return pc + 1, nil
	case Jmp:
		next := pc + in.Arg
		if next < 0 {
			return 0, fmt.Errorf("%w: jmp %+d at %d", ErrNegativePC, in.Arg, pc)
		}
		return next, nil
	}
	panic(fmt.Sprintf("bad op %v", in.Op))
}

// ParseInstruction parses a line like "acc +3" or "jmp -4".
func ParseInstruction(line string) (Instruction, error) {
	f := strings.Fields(line)
	if len(f) != 2 {
		return Instruction{}, fmt.Errorf("%w: %q: want 2 fields, got %d", ErrParse, line, len(f))
	}
	var op Op
	switch f[0] {
	case "acc":
		op = Acc
	case "jmp":
		op = Jmp
	case "nop":
		op = Nop
	default:
		return Instruction{}, fmt.Errorf("%w: %q: unknown op %q", ErrParse, line, f[0])
	}
	arg, err := strconv.Atoi(f[1])
	if err != nil {
		return Instruction{}, fmt.Errorf("%w: %q: bad argument: %v", ErrParse, line, err)
	}
	return Instruction{Op: op, Arg: arg}, nil
}

// Program is a sequence of instructions. Programs are treated as values:
// nothing in this package modifies a Program it is given.
type Program []Instruction

// Parse parses one instruction per line. Blank lines at the end of the
// input are ignored.
func Parse(lines []string) (Program, error) {
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	p := make(Program, 0, len(lines))
	for i, line := range lines {
		in, err := ParseInstruction(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		p = append(p, in)
	}
	return p, nil
}

// ParseReader is like Parse but reads the lines from r.
func ParseReader(r io.Reader) (Program, error) {
	var lines []string
	s := bufio.NewScanner(r)
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return Parse(lines)
}

// Patched returns a copy of p with the instruction at i swapped (see
// Instruction.Swapped). It panics if i is out of range or holds an acc.
func (p Program) Patched(i int) Program {
	in, ok := p[i].Swapped()
	if !ok {
		panic(fmt.Sprintf("handheld: cannot swap %v at %d", p[i], i))
	}
	out := make(Program, len(p))
	copy(out, p)
	out[i] = in
	return out
}

func (p Program) String() string {
	var sb strings.Builder
	for _, in := range p {
		sb.WriteString(in.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
