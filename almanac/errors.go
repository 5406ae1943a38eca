package almanac

import "github.com/pkg/errors"

// Sentinel errors for parsing and solving. Returned errors wrap these with
// line numbers or category names; branch with errors.Is.
var (
	// ErrEmptyInput indicates the input holds no non-blank line.
	ErrEmptyInput = errors.New("almanac: empty input")

	// ErrMissingSeeds indicates the first line is not a "seeds:" list.
	ErrMissingSeeds = errors.New("almanac: missing seeds line")

	// ErrBadHeader indicates a map block does not start with "<from>-to-<to> map:".
	ErrBadHeader = errors.New("almanac: malformed map header")

	// ErrBadLine indicates a map row is not three non-negative integers.
	ErrBadLine = errors.New("almanac: malformed map line")

	// ErrBrokenChain indicates a map does not start where the previous one ended.
	ErrBrokenChain = errors.New("almanac: map chain is broken")

	// ErrOddSeedCount indicates seed ranges were requested from an odd number of values.
	ErrOddSeedCount = errors.New("almanac: seed ranges need an even number of values")

	// ErrNoSeeds indicates there is nothing to locate.
	ErrNoSeeds = errors.New("almanac: no seeds to locate")
)
