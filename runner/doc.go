// Package runner selects a registered puzzle problem, parses one of its
// inputs and runs its solvers, reporting each output with its elapsed time.
//
// A Problem bundles a parser, named inputs and named solvers. Problems are
// kept in a Registry; a Runner resolves a Config against it:
//
//	problem  : by key; optional when exactly one problem is registered
//	input    : by key, the first input when empty, or raw Config.Data
//	solvers  : by key, all of them when empty
//	warm-up  : Config.WarmUp untimed calls before the timed one
//
// Selection and timings are logged through a logrus.FieldLogger; results are
// written to an io.Writer with large integers grouped by go-humanize.
package runner
