package calculator

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownPreset is returned when a tip percentage outside the
	// preset set is selected as a preset.
	ErrUnknownPreset = errors.New("unknown tip preset")
	// ErrUnknownRounding is returned by ParseRounding for unrecognized names.
	ErrUnknownRounding = errors.New("unknown rounding mode")
)

// Preset is one of the fixed tip percentages offered as toggles.
type Preset int

// Presets lists the selectable tip percentages in display order.
var Presets = []Preset{10, 15, 18, 20}

// DefaultPreset is the preset selected on a fresh form.
const DefaultPreset Preset = 15

// ValidPreset reports whether p is one of Presets.
func ValidPreset(p Preset) bool {
	for _, candidate := range Presets {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePreset converts a percentage to a Preset, rejecting anything not in Presets.
func ParsePreset(percent int) (Preset, error) {
	p := Preset(percent)
	if !ValidPreset(p) {
		return 0, fmt.Errorf("%w: %d%%", ErrUnknownPreset, percent)
	}
	return p, nil
}

func (p Preset) String() string {
	return fmt.Sprintf("%d%%", int(p))
}

// RoundingMode controls whether the tip or the total is snapped to a
// whole currency unit.
type RoundingMode int

const (
	// RoundNone leaves tip and total unrounded.
	RoundNone RoundingMode = iota
	// RoundTip rounds the tip and adds it to the bill.
	RoundTip
	// RoundTotal rounds the total; the tip is whatever remains above the bill.
	RoundTotal
)

// RoundingModes lists the modes in selector order.
var RoundingModes = []RoundingMode{RoundNone, RoundTip, RoundTotal}

func (r RoundingMode) String() string {
	switch r {
	case RoundTip:
		return "tip"
	case RoundTotal:
		return "total"
	default:
		return "none"
	}
}

// Label is the human-readable name shown in the rounding selector.
func (r RoundingMode) Label() string {
	switch r {
	case RoundTip:
		return "Round tip"
	case RoundTotal:
		return "Round total"
	default:
		return "No rounding"
	}
}

// Next returns the following mode in selector order, wrapping around.
func (r RoundingMode) Next() RoundingMode {
	return RoundingModes[(int(r)+1)%len(RoundingModes)]
}

// Prev returns the preceding mode in selector order, wrapping around.
func (r RoundingMode) Prev() RoundingMode {
	n := len(RoundingModes)
	return RoundingModes[(int(r)+n-1)%n]
}

// ParseRounding accepts "none", "tip" or "total" (case-insensitive).
// The empty string means none.
func ParseRounding(s string) (RoundingMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return RoundNone, nil
	case "tip":
		return RoundTip, nil
	case "total":
		return RoundTotal, nil
	}
	return RoundNone, fmt.Errorf("%w: %q (want none, tip or total)", ErrUnknownRounding, s)
}

// MarshalText encodes the mode by its String name.
func (r RoundingMode) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText accepts the names understood by ParseRounding.
func (r *RoundingMode) UnmarshalText(text []byte) error {
	mode, err := ParseRounding(string(text))
	if err != nil {
		return err
	}
	*r = mode
	return nil
}
