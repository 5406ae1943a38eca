package runner

import "github.com/pkg/errors"

// Sentinel errors for registry, selection and configuration failures.
// Returned errors wrap these with the offending key; branch with errors.Is.
var (
	// ErrInvalidProblem indicates a problem without key, parser or solvers.
	ErrInvalidProblem = errors.New("runner: invalid problem")

	// ErrDuplicateProblem indicates a problem key registered twice.
	ErrDuplicateProblem = errors.New("runner: duplicate problem")

	// ErrNoProblemSelected indicates no problem key was given and the choice is ambiguous.
	ErrNoProblemSelected = errors.New("runner: no problem selected")

	// ErrUnknownProblem indicates the requested problem key is not registered.
	ErrUnknownProblem = errors.New("runner: unknown problem")

	// ErrUnknownInput indicates the requested input key does not exist for the problem.
	ErrUnknownInput = errors.New("runner: unknown input")

	// ErrNoInput indicates the problem has no inputs and no raw data was given.
	ErrNoInput = errors.New("runner: no input available")

	// ErrUnknownSolver indicates a requested solver key does not exist for the problem.
	ErrUnknownSolver = errors.New("runner: unknown solver")

	// ErrBadConfig indicates an invalid configuration value or file.
	ErrBadConfig = errors.New("runner: bad config")
)
