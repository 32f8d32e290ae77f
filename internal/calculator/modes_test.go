package calculator

import (
	"errors"
	"testing"
)

func TestParsePreset(t *testing.T) {
	for _, p := range Presets {
		got, err := ParsePreset(int(p))
		if err != nil || got != p {
			t.Errorf("ParsePreset(%d) = (%v, %v), want (%v, nil)", int(p), got, err, p)
		}
	}

	if _, err := ParsePreset(12); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("ParsePreset(12) error = %v, want ErrUnknownPreset", err)
	}
}

func TestParseRounding(t *testing.T) {
	tests := []struct {
		in      string
		want    RoundingMode
		wantErr bool
	}{
		{"", RoundNone, false},
		{"none", RoundNone, false},
		{"TIP", RoundTip, false},
		{" total ", RoundTotal, false},
		{"up", RoundNone, true},
	}

	for _, tt := range tests {
		got, err := ParseRounding(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseRounding(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if tt.wantErr && !errors.Is(err, ErrUnknownRounding) {
			t.Errorf("ParseRounding(%q) error = %v, want ErrUnknownRounding", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseRounding(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRoundingCycle(t *testing.T) {
	if got := RoundNone.Next(); got != RoundTip {
		t.Errorf("RoundNone.Next() = %v, want tip", got)
	}
	if got := RoundTotal.Next(); got != RoundNone {
		t.Errorf("RoundTotal.Next() = %v, want none", got)
	}
	if got := RoundNone.Prev(); got != RoundTotal {
		t.Errorf("RoundNone.Prev() = %v, want total", got)
	}

	for _, mode := range RoundingModes {
		var back RoundingMode
		text, _ := mode.MarshalText()
		if err := back.UnmarshalText(text); err != nil || back != mode {
			t.Errorf("text round trip of %v gave (%v, %v)", mode, back, err)
		}
	}
}
