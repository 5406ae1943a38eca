// Command segments runs the registered puzzles built on the segment package.
//
//	segments [--config FILE] [--log-level LEVEL] [--log-json] solve [PROBLEM] [-i INPUT] [--input-file PATH] [-s SOLVER]... [--warmup N]
//	segments print
//
// Flags given on the command line override the values read from --config.
package main

import (
	"io"
	"os"

	"github.com/katalvlaran/segments/almanac"
	"github.com/katalvlaran/segments/runner"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// registry returns every problem the binary knows about.
func registry() *runner.Registry {
	reg := runner.NewRegistry()
	reg.MustRegister(almanac.Problem())
	return reg
}

// run parses args, executes the selected command and returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	app := kingpin.New("segments", "Runs puzzles solved with half-open segment sets.")
	app.HelpFlag.Short('h')
	app.UsageWriter(stdout)
	app.ErrorWriter(stderr)
	app.Terminate(nil)

	// global flags
	configPath := app.Flag("config", "TOML file with problem, input, solvers, warmup and log_level.").ExistingFile()
	logLevel := app.Flag("log-level", "Log level (panic, fatal, error, warn, info, debug, trace).").String()
	logJSON := app.Flag("log-json", "Emit logs as JSON.").Bool()

	solve := app.Command("solve", "Run the solvers of a problem.").Default()
	problem := solve.Arg("problem", "Problem key; optional when only one problem is registered.").String()
	input := solve.Flag("input", "Bundled input key (default: the first one).").Short('i').String()
	inputFile := solve.Flag("input-file", "Read the puzzle input from a file instead.").ExistingFile()
	solvers := solve.Flag("solver", "Solver key to run; repeatable (default: all).").Short('s').Strings()
	warmUp := solve.Flag("warmup", "Untimed runs before the timed one.").Default("-1").Int()

	printCmd := app.Command("print", "List problems, inputs and solvers.")

	command, err := app.Parse(args)
	if err != nil {
		app.Errorf("%v", err)
		return 2
	}

	cfg := runner.DefaultConfig()
	if *configPath != "" {
		if cfg, err = runner.LoadConfig(*configPath); err != nil {
			app.Errorf("%v", err)
			return 2
		}
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	logger := logrus.New()
	logger.SetOutput(stderr)
	if *logJSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		app.Errorf("%v", errors.Wrap(runner.ErrBadConfig, err.Error()))
		return 2
	}
	logger.SetLevel(level)

	r := runner.New(registry(), runner.WithOutput(stdout), runner.WithLogger(logger))

	switch command {
	case printCmd.FullCommand():
		if err := r.Print(); err != nil {
			logger.WithError(err).Error("print failed")
			return 1
		}
		return 0

	case solve.FullCommand():
		if *problem != "" {
			cfg.Problem = *problem
		}
		if *input != "" {
			cfg.Input = *input
		}
		if len(*solvers) > 0 {
			cfg.Solvers = *solvers
		}
		if *warmUp >= 0 {
			cfg.WarmUp = *warmUp
		}
		if *inputFile != "" {
			data, err := os.ReadFile(*inputFile)
			if err != nil {
				logger.WithError(err).Error("read input file")
				return 1
			}
			cfg.Data = string(data)
		}
		if _, err := r.Run(cfg); err != nil {
			logger.WithError(err).Error("run failed")
			return 1
		}
		return 0
	}

	return 2
}
