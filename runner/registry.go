package runner

import "github.com/pkg/errors"

// Registry holds problems in registration order with unique keys.
type Registry struct {
	problems []Problem
	index    map[string]int
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register adds p. Returns ErrInvalidProblem when p has no key, no parser or
// no solvers, and ErrDuplicateProblem when the key is taken.
func (r *Registry) Register(p Problem) error {
	switch {
	case p.Key == "":
		return errors.Wrap(ErrInvalidProblem, "empty key")
	case p.Parse == nil:
		return errors.Wrapf(ErrInvalidProblem, "%s: nil parser", p.Key)
	case len(p.Solvers) == 0:
		return errors.Wrapf(ErrInvalidProblem, "%s: no solvers", p.Key)
	}
	if _, ok := r.index[p.Key]; ok {
		return errors.Wrap(ErrDuplicateProblem, p.Key)
	}
	r.index[p.Key] = len(r.problems)
	r.problems = append(r.problems, p)
	return nil
}

// MustRegister is Register that panics on error, for static wiring.
func (r *Registry) MustRegister(p Problem) {
	if err := r.Register(p); err != nil {
		panic(err)
	}
}

// Lookup returns the problem registered under key.
func (r *Registry) Lookup(key string) (Problem, error) {
	i, ok := r.index[key]
	if !ok {
		return Problem{}, errors.Wrap(ErrUnknownProblem, key)
	}
	return r.problems[i], nil
}

// Problems returns the registered problems in registration order.
func (r *Registry) Problems() []Problem {
	out := make([]Problem, len(r.problems))
	copy(out, r.problems)
	return out
}

// resolve picks the problem named key, or the only problem when key is empty.
func (r *Registry) resolve(key string) (Problem, error) {
	if key != "" {
		return r.Lookup(key)
	}
	if len(r.problems) == 1 {
		return r.problems[0], nil
	}
	return Problem{}, errors.Wrapf(ErrNoProblemSelected, "%d problems registered", len(r.problems))
}
