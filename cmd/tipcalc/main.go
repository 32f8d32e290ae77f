// tipcalc CLI — one-shot tip calculation from flags.
//
// Usage:
//
//	tipcalc <command> [flags]
//
// Commands:
//
//	calc      Compute tip, total and per-person split
//	version   Print version information
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/Mr-Dark-debug/tipcalc/internal/calculator"
	"github.com/Mr-Dark-debug/tipcalc/internal/config"
	"github.com/Mr-Dark-debug/tipcalc/pkg/logging"
)

var (
	Version   = "0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	switch os.Args[1] {
	case "calc":
		if err := cmdCalc(os.Args[2:], os.Stdout); err != nil {
			if errors.Is(err, pflag.ErrHelp) {
				return
			}
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("tipcalc v%s (commit: %s, built: %s)\n", Version, GitCommit, BuildTime)
	case "help", "--help", "-h":
		printUsage(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage(os.Stderr)
		os.Exit(1)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `tipcalc — tip and split calculator

Usage:
  tipcalc <command> [flags]

Commands:
  calc       Compute tip, total and per-person split
  version    Print version information

Run 'tipcalc calc --help' for flags. Run 'tipcalc-tui' for the interactive form.`)
}

// calcOutput is the JSON shape printed by --format json.
type calcOutput struct {
	calculator.Results
	Display calculator.Display `json:"display"`
}

// cmdCalc applies the flags to a fresh form in field order and prints
// the results. Validation problems are logged as warnings; they never
// fail the command.
func cmdCalc(args []string, stdout io.Writer) error {
	fs := pflag.NewFlagSet("calc", pflag.ContinueOnError)
	configPath := fs.String("config", "", "path to YAML config file (default: $"+config.EnvVar+")")
	bill := fs.String("bill", "", "bill amount")
	preset := fs.Int("preset", 0, "tip preset: 10, 15, 18 or 20 (default from config)")
	custom := fs.String("custom", "", "custom tip percentage, overrides --preset when non-empty")
	people := fs.String("people", "1", "number of people splitting the bill")
	round := fs.String("round", "", "rounding mode: none, tip or total (default from config)")
	format := fs.String("format", "text", "output format: text, json")
	logLevel := fs.String("log-level", "", "log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(config.ResolvePath(*configPath))
	if err != nil {
		return err
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logging.Setup(os.Stderr, level, true)

	defaults := cfg.FormDefaults()
	if fs.Changed("round") {
		if defaults.Rounding, err = calculator.ParseRounding(*round); err != nil {
			return err
		}
	}
	if *format != "text" && *format != "json" {
		return fmt.Errorf("unknown format %q (want text or json)", *format)
	}

	form := calculator.NewForm(defaults)
	form.SetBill(*bill)
	if fs.Changed("preset") {
		p, err := calculator.ParsePreset(*preset)
		if err != nil {
			return err
		}
		if err := form.SelectPreset(p); err != nil {
			return err
		}
	}
	form.SetCustomTip(*custom)
	form.SetPeople(*people)
	form.BlurPeople()

	results := form.Results()
	warnInvalid(results)

	if *format == "json" {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(calcOutput{Results: results, Display: results.Display()})
	}
	_, err = io.WriteString(stdout, formatText(results))
	return err
}

func warnInvalid(r calculator.Results) {
	if r.BillNegative {
		slog.Warn("bill amount is negative, calculating with 0")
	}
	if r.TipNegative {
		slog.Warn("tip percentage is negative, calculating with 0%")
	}
	if r.PeopleInvalid {
		slog.Warn("people count must be a whole number of at least 1, using 1")
	}
}

// formatText renders results as aligned label/value lines.
func formatText(r calculator.Results) string {
	d := r.Display()

	var b strings.Builder
	row := func(label, value string) {
		fmt.Fprintf(&b, "%-14s %s\n", label+":", value)
	}

	row("Tip", d.TipPercent)
	row("Rounding", r.Rounding.Label())
	row("Tip Amount", d.Tip)
	row("Total", d.Total)
	if r.ShowPerPerson {
		row("People", fmt.Sprintf("%d", r.People))
		row("Tip/person", d.TipPerPerson)
		row("Total/person", d.TotalPerPerson)
	}
	return b.String()
}
