// Command aoc2020 solves the Advent of Code 2020 puzzles that run a small
// machine or automaton: the handheld console (day 8), joltage adapters
// (day 10), seating (day 11), shuttle buses (day 13) and Conway cubes
// (day 17).
//
// Usage:
//
//	aoc2020 [-day N] [-part P] [-sample | -skip-sample] [-debug] [-config aoc.yaml]
package main

import (
	"embed"

	aoc "github.com/maisem/aoc2020"
)

//go:embed *.go
var source embed.FS

type solver struct {
	*aoc.Puzzle
}

func main() {
	aoc.Run(2020, source, &solver{})
}
