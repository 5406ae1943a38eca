package segment

import "fmt"

// DefaultDegree is the B-tree degree used by NewTreeSet when no WithDegree
// option is given.
const DefaultDegree = 32

// TreeOption customizes a TreeSet before construction.
// Option constructors validate their input and panic on meaningless values;
// set operations never panic.
type TreeOption func(*treeConfig)

type treeConfig struct {
	degree int
}

// WithDegree sets the degree of the underlying B-tree.
// Panics when degree < 2, which the B-tree cannot represent.
func WithDegree(degree int) TreeOption {
	if degree < 2 {
		panic(fmt.Sprintf("segment: WithDegree(%d): degree must be >= 2", degree))
	}
	return func(c *treeConfig) {
		c.degree = degree
	}
}

// newTreeConfig applies opts in order over the defaults.
func newTreeConfig(opts ...TreeOption) treeConfig {
	cfg := treeConfig{degree: DefaultDegree}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
