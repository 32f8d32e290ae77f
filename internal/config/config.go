// Package config loads tipcalc's startup defaults.
//
// Configuration comes from an optional YAML file named by the --config
// flag or the TIPCALC_CONFIG environment variable. With neither set the
// built-in defaults apply. Values in the file override the defaults
// field by field; omitted fields keep their default.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Mr-Dark-debug/tipcalc/internal/calculator"
	"github.com/Mr-Dark-debug/tipcalc/pkg/logging"
)

// EnvVar names the environment variable consulted when no --config flag is given.
const EnvVar = "TIPCALC_CONFIG"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the tunable defaults for both binaries.
type Config struct {
	// DefaultPreset is the tip percentage selected on a fresh form.
	// Must be one of 10, 15, 18 or 20.
	DefaultPreset int `yaml:"default_preset"`

	// Rounding is the initial rounding mode: none, tip or total.
	Rounding string `yaml:"rounding"`

	// LogLevel is debug, info, warn or error.
	LogLevel string `yaml:"log_level"`

	// LogFile receives log output from the TUI, which cannot write to
	// the terminal it is drawing on. Empty disables TUI logging.
	LogFile string `yaml:"log_file"`
}

// DefaultConfig returns sensible defaults for local use.
func DefaultConfig() Config {
	return Config{
		DefaultPreset: int(calculator.DefaultPreset),
		Rounding:      calculator.RoundNone.String(),
		LogLevel:      "info",
	}
}

// ResolvePath picks the config file path: the flag value if set,
// otherwise $TIPCALC_CONFIG. An empty result means no file.
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(EnvVar)
}

// Load reads the YAML file at path over DefaultConfig and validates the
// result. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field against the values the calculator accepts.
func (c Config) Validate() error {
	var problems []string

	if _, err := calculator.ParsePreset(c.DefaultPreset); err != nil {
		problems = append(problems, fmt.Sprintf("default_preset: %v", err))
	}
	if _, err := calculator.ParseRounding(c.Rounding); err != nil {
		problems = append(problems, fmt.Sprintf("rounding: %v", err))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, fmt.Sprintf("log_level: %v", err))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// FormDefaults converts the config into calculator defaults. Call it
// only on a validated Config.
func (c Config) FormDefaults() calculator.Defaults {
	rounding, _ := calculator.ParseRounding(c.Rounding)
	return calculator.Defaults{
		Preset:   calculator.Preset(c.DefaultPreset),
		Rounding: rounding,
	}
}
