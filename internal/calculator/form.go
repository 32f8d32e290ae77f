package calculator

import (
	"log/slog"
	"strconv"
)

// Defaults seeds a new Form and is what Reset returns to.
type Defaults struct {
	Preset   Preset
	Rounding RoundingMode
}

// Form is the calculator state machine. It owns the raw text of each
// field plus the last selected preset, and recomputes Results from
// scratch on every query.
//
// The zero value is not usable; create one with NewForm.
type Form struct {
	defaults Defaults

	bill       string
	lastPreset Preset
	customTip  string
	people     string
	rounding   RoundingMode

	// peopleClamped records that the most recent people edit had to be
	// forced up to 1, so the inline error survives the rewrite.
	peopleClamped bool
}

// NewForm returns a form with an empty bill and the given defaults.
// An invalid default preset falls back to DefaultPreset.
func NewForm(defaults Defaults) *Form {
	if !ValidPreset(defaults.Preset) {
		defaults.Preset = DefaultPreset
	}
	f := &Form{defaults: defaults}
	f.Reset()
	return f
}

// Reset clears every field back to the form's defaults.
func (f *Form) Reset() {
	f.bill = ""
	f.lastPreset = f.defaults.Preset
	f.customTip = ""
	f.people = "1"
	f.rounding = f.defaults.Rounding
	f.peopleClamped = false
	slog.Debug("form reset", "preset", f.lastPreset, "rounding", f.rounding)
}

// SetBill stores the bill text as typed.
func (f *Form) SetBill(text string) {
	f.bill = text
}

// SetCustomTip stores the custom percentage text. Non-blank text makes
// custom the active tip source; blank text hands control back to the
// last selected preset.
func (f *Form) SetCustomTip(text string) {
	wasActive := f.CustomActive()
	f.customTip = text
	if wasActive && !f.CustomActive() {
		slog.Debug("custom tip cleared, preset restored", "preset", f.lastPreset)
	}
}

// SelectPreset makes p the active tip source and clears the custom field.
func (f *Form) SelectPreset(p Preset) error {
	if !ValidPreset(p) {
		return ErrUnknownPreset
	}
	f.lastPreset = p
	f.customTip = ""
	slog.Debug("preset selected", "preset", p)
	return nil
}

// SetPeople normalizes the people text immediately and returns the
// stored value, which the caller should write back to its input.
func (f *Form) SetPeople(text string) string {
	normalized, clamped := NormalizePeople(text)
	f.people = normalized
	f.peopleClamped = clamped
	if clamped {
		slog.Debug("people count clamped", "input", text)
	}
	return normalized
}

// BlurPeople re-runs people normalization when the field loses focus.
// It never clears an error raised by the preceding edit.
func (f *Form) BlurPeople() string {
	normalized, clamped := NormalizePeople(f.people)
	f.people = normalized
	f.peopleClamped = f.peopleClamped || clamped
	return normalized
}

// StepPeople adds delta to the people count, stopping at 1.
func (f *Form) StepPeople(delta int) string {
	n := peopleCount(f.people) + delta
	if n < 1 {
		n = 1
	}
	f.people = strconv.Itoa(n)
	f.peopleClamped = false
	return f.people
}

// SetRounding selects the rounding mode.
func (f *Form) SetRounding(mode RoundingMode) {
	f.rounding = mode
}

// CycleRounding advances to the next rounding mode and returns it.
func (f *Form) CycleRounding() RoundingMode {
	f.rounding = f.rounding.Next()
	return f.rounding
}

func (f *Form) Bill() string { return f.bill }
func (f *Form) CustomTip() string { return f.customTip }
func (f *Form) People() string { return f.people }
func (f *Form) Rounding() RoundingMode { return f.rounding }

// LastPreset is the most recently selected preset, remembered even
// while a custom percentage is active.
func (f *Form) LastPreset() Preset { return f.lastPreset }

// CustomActive reports whether the custom field is the tip source.
func (f *Form) CustomActive() bool {
	return customActive(f.customTip)
}

// PresetActive reports whether p is the current tip source. At most one
// preset is active, and none is while CustomActive holds.
func (f *Form) PresetActive(p Preset) bool {
	return !f.CustomActive() && f.lastPreset == p
}

// Inputs snapshots the raw form state.
func (f *Form) Inputs() Inputs {
	return Inputs{
		Bill:      f.bill,
		Preset:    f.lastPreset,
		CustomTip: f.customTip,
		People:    f.people,
		Rounding:  f.rounding,
	}
}

// Results derives the current outputs.
func (f *Form) Results() Results {
	r := Derive(f.Inputs())
	r.PeopleInvalid = r.PeopleInvalid || f.peopleClamped
	return r
}
