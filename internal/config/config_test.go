package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Mr-Dark-debug/tipcalc/internal/calculator"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tipcalc.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("Load(\"\") = %+v, want defaults", cfg)
	}

	d := cfg.FormDefaults()
	if d.Preset != calculator.DefaultPreset || d.Rounding != calculator.RoundNone {
		t.Errorf("FormDefaults() = %+v", d)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, "default_preset: 20\nrounding: total\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DefaultPreset != 20 || cfg.Rounding != "total" {
		t.Errorf("got %+v", cfg)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("omitted log_level should keep default, got %q", cfg.LogLevel)
	}

	d := cfg.FormDefaults()
	if d.Preset != 20 || d.Rounding != calculator.RoundTotal {
		t.Errorf("FormDefaults() = %+v", d)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown preset", "default_preset: 12\n"},
		{"unknown rounding", "rounding: up\n"},
		{"unknown level", "log_level: loud\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Load error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load error = %v, want os.ErrNotExist", err)
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	if _, err := Load(writeConfig(t, "default_preset: [oops\n")); err == nil {
		t.Error("expected a parse error")
	}
}

func TestResolvePath(t *testing.T) {
	t.Setenv(EnvVar, "/etc/tipcalc.yaml")

	if got := ResolvePath("/tmp/flag.yaml"); got != "/tmp/flag.yaml" {
		t.Errorf("flag should win, got %q", got)
	}
	if got := ResolvePath(""); got != "/etc/tipcalc.yaml" {
		t.Errorf("env fallback = %q", got)
	}
}
