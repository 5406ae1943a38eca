package runner

import "time"

// Input is a named puzzle input bundled with a problem.
type Input struct {
	Key         string
	Description string
	Data        string
}

// Solver computes an output from a parsed input.
type Solver struct {
	Key   string
	Title string
	Solve func(input any) (any, error)
}

// Problem is a puzzle with its parser, bundled inputs and solvers.
type Problem struct {
	Key   string
	Title string
	Link  string

	// Parse turns raw input text into the value handed to every solver.
	Parse func(data string) (any, error)

	Inputs  []Input
	Solvers []Solver
}

// Result is the outcome of one timed solver call.
type Result struct {
	Solver  string
	Output  any
	Elapsed time.Duration
}
