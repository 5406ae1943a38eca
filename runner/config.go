package runner

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Config selects what a Runner runs. It can be loaded from a TOML file:
//
//	problem   = "aoc2023/day5"
//	input     = "sample1"
//	solvers   = ["step1", "step2"]
//	warmup    = 3
//	log_level = "debug"
type Config struct {
	Problem string   `toml:"problem"`
	Input   string   `toml:"input"`
	Solvers []string `toml:"solvers"`
	WarmUp  int      `toml:"warmup"`

	// LogLevel is a logrus level name; consumed by the CLI.
	LogLevel string `toml:"log_level"`

	// Data, when non-empty, is parsed instead of a bundled input.
	Data string `toml:"-"`
}

// Deterministic defaults.
const (
	defaultWarmUp   = 0
	defaultLogLevel = "info"
)

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		WarmUp:   defaultWarmUp,
		LogLevel: defaultLogLevel,
	}
}

// LoadConfig reads a TOML file over DefaultConfig and validates the result.
// Unknown keys are rejected so that typos do not go unnoticed.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrapf(ErrBadConfig, "%s: %v", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.Wrapf(ErrBadConfig, "%s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrap(err, path)
	}
	return cfg, nil
}

// Validate checks value ranges: WarmUp >= 0 and a known log level.
func (c Config) Validate() error {
	if c.WarmUp < 0 {
		return errors.Wrapf(ErrBadConfig, "warmup %d < 0", c.WarmUp)
	}
	if c.LogLevel != "" {
		if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
			return errors.Wrapf(ErrBadConfig, "log_level: %v", err)
		}
	}
	return nil
}
