// tipcalc TUI — interactive tip calculator form.
//
// Usage:
//
//	tipcalc-tui [flags]
//
// Flags:
//
//	--config     Path to YAML config file (default: $TIPCALC_CONFIG)
//	--log-file   Write log records to this file (default: discard)
//	--log-level  debug, info, warn or error (overrides config)
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/Mr-Dark-debug/tipcalc/internal/calculator"
	"github.com/Mr-Dark-debug/tipcalc/internal/config"
	"github.com/Mr-Dark-debug/tipcalc/internal/tui"
	"github.com/Mr-Dark-debug/tipcalc/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var configPath, logFile, logLevel string

	flagSet := pflag.NewFlagSet("tipcalc-tui", pflag.ContinueOnError)
	flagSet.StringVar(&configPath, "config", "", "path to YAML config file (default: $"+config.EnvVar+")")
	flagSet.StringVar(&logFile, "log-file", "", "write log records to this file")
	flagSet.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}
	if extra := flagSet.Args(); len(extra) > 0 {
		return fmt.Errorf("unexpected argument: %s", extra[0])
	}

	cfg, err := config.Load(config.ResolvePath(configPath))
	if err != nil {
		return err
	}
	if logFile != "" {
		cfg.LogFile = logFile
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	closer, err := logging.SetupFile(cfg.LogFile, level)
	if err != nil {
		return err
	}
	defer closer.Close()

	slog.Info("starting tipcalc-tui", "preset", cfg.DefaultPreset, "rounding", cfg.Rounding)

	form := calculator.NewForm(cfg.FormDefaults())
	p := tea.NewProgram(tui.NewModel(form), tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
