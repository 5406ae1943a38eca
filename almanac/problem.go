package almanac

import (
	_ "embed"
	"strings"

	"github.com/katalvlaran/segments/runner"
	"github.com/pkg/errors"
)

// ProblemKey is the registry key of this puzzle.
const ProblemKey = "aoc2023/day5"

//go:embed inputs/sample1.txt
var sample1 string

// Problem returns the puzzle wired for the runner: the embedded sample input
// and the step1 (individual seeds) and step2 (seed ranges) solvers.
func Problem() runner.Problem {
	return runner.Problem{
		Key:   ProblemKey,
		Title: "If You Give A Seed A Fertilizer",
		Link:  "https://adventofcode.com/2023/day/5",
		Parse: func(data string) (any, error) {
			return Parse(strings.NewReader(data))
		},
		Inputs: []runner.Input{
			{Key: "sample1", Description: "First sample", Data: sample1},
		},
		Solvers: []runner.Solver{
			{Key: "step1", Title: "Lowest location of individual seeds", Solve: solveWith((*Almanac).LowestLocation)},
			{Key: "step2", Title: "Lowest location of seed ranges", Solve: solveWith((*Almanac).LowestRangeLocation)},
		},
	}
}

func solveWith(fn func(*Almanac) (int64, error)) func(any) (any, error) {
	return func(input any) (any, error) {
		a, ok := input.(*Almanac)
		if !ok {
			return nil, errors.Errorf("almanac: unexpected input type %T", input)
		}
		return fn(a)
	}
}
