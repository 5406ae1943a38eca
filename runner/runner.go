package runner

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Runner runs problems from a Registry.
type Runner struct {
	registry *Registry
	out      io.Writer
	log      logrus.FieldLogger
	now      func() time.Time
}

// Option customizes a Runner. Option constructors panic on nil arguments.
type Option func(*Runner)

// WithOutput sets where results are printed (default os.Stdout).
func WithOutput(w io.Writer) Option {
	if w == nil {
		panic("runner: WithOutput(nil)")
	}
	return func(r *Runner) { r.out = w }
}

// WithLogger sets the logger (default logrus.StandardLogger()).
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("runner: WithLogger(nil)")
	}
	return func(r *Runner) { r.log = l }
}

// WithClock replaces time.Now, for deterministic elapsed times in tests.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("runner: WithClock(nil)")
	}
	return func(r *Runner) { r.now = now }
}

// New returns a Runner over reg.
func New(reg *Registry, opts ...Option) *Runner {
	r := &Runner{
		registry: reg,
		out:      os.Stdout,
		log:      logrus.StandardLogger(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run resolves cfg, parses the input and runs every selected solver:
// cfg.WarmUp untimed calls, then one timed call whose output is printed.
// The first failing solver aborts the run; results gathered so far are returned.
func (r *Runner) Run(cfg Config) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p, err := r.registry.resolve(cfg.Problem)
	if err != nil {
		return nil, err
	}
	logger := r.log.WithField("problem", p.Key)
	logger.Debug("problem selected")

	inputKey, data, err := selectInput(p, cfg)
	if err != nil {
		return nil, err
	}
	logger = logger.WithField("input", inputKey)
	logger.Debug("input selected")

	solvers, err := selectSolvers(p, cfg.Solvers)
	if err != nil {
		return nil, err
	}

	input, err := p.Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: parse input %s", p.Key, inputKey)
	}
	fmt.Fprintf(r.out, "%s: %s\n", p.Key, p.Title)

	results := make([]Result, 0, len(solvers))
	for _, s := range solvers {
		solverLog := logger.WithField("solver", s.Key)
		res, err := r.runSolver(s, input, cfg.WarmUp)
		if err != nil {
			solverLog.WithError(err).Error("solver failed")
			return results, errors.Wrapf(err, "%s: solver %s", p.Key, s.Key)
		}
		solverLog.WithFields(logrus.Fields{
			"elapsed": res.Elapsed,
			"warmup":  cfg.WarmUp,
		}).Info("solver finished")

		fmt.Fprintf(r.out, "  %s (%s)\n    output:  %s\n    elapsed: %s\n",
			s.Key, s.Title, FormatOutput(res.Output), res.Elapsed)
		results = append(results, res)
	}
	return results, nil
}

func (r *Runner) runSolver(s Solver, input any, warmUp int) (Result, error) {
	for i := 0; i < warmUp; i++ {
		if _, err := s.Solve(input); err != nil {
			return Result{}, errors.Wrapf(err, "warm-up %d", i+1)
		}
	}
	start := r.now()
	out, err := s.Solve(input)
	elapsed := r.now().Sub(start)
	if err != nil {
		return Result{}, err
	}
	return Result{Solver: s.Key, Output: out, Elapsed: elapsed}, nil
}

// Print lists every registered problem with its inputs and solvers.
func (r *Runner) Print() error {
	tw := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	for _, p := range r.registry.Problems() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Key, p.Title, p.Link)
		for _, in := range p.Inputs {
			fmt.Fprintf(tw, "  input\t%s\t%s\n", in.Key, in.Description)
		}
		for _, s := range p.Solvers {
			fmt.Fprintf(tw, "  solver\t%s\t%s\n", s.Key, s.Title)
		}
	}
	return tw.Flush()
}

// FormatOutput renders solver outputs; integers are digit-grouped.
func FormatOutput(v any) string {
	switch x := v.(type) {
	case int64:
		return humanize.Comma(x)
	case int:
		return humanize.Comma(int64(x))
	case int32:
		return humanize.Comma(int64(x))
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}

func selectInput(p Problem, cfg Config) (key, data string, err error) {
	if cfg.Data != "" {
		return "custom", cfg.Data, nil
	}
	if cfg.Input == "" {
		if len(p.Inputs) == 0 {
			return "", "", errors.Wrap(ErrNoInput, p.Key)
		}
		return p.Inputs[0].Key, p.Inputs[0].Data, nil
	}
	for _, in := range p.Inputs {
		if in.Key == cfg.Input {
			return in.Key, in.Data, nil
		}
	}
	return "", "", errors.Wrapf(ErrUnknownInput, "%s: %s (have %s)", p.Key, cfg.Input, inputKeys(p))
}

func selectSolvers(p Problem, keys []string) ([]Solver, error) {
	if len(keys) == 0 {
		return p.Solvers, nil
	}
	out := make([]Solver, 0, len(keys))
	for _, k := range keys {
		found := false
		for _, s := range p.Solvers {
			if s.Key == k {
				out = append(out, s)
				found = true
				break
			}
		}
		if !found {
			return nil, errors.Wrapf(ErrUnknownSolver, "%s: %s", p.Key, k)
		}
	}
	return out, nil
}

func inputKeys(p Problem) string {
	keys := make([]string, len(p.Inputs))
	for i, in := range p.Inputs {
		keys[i] = in.Key
	}
	return strings.Join(keys, ", ")
}
