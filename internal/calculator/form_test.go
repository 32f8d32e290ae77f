package calculator

import (
	"errors"
	"testing"
)

func newTestForm() *Form {
	return NewForm(Defaults{Preset: DefaultPreset})
}

func TestNewFormDefaults(t *testing.T) {
	f := newTestForm()

	if f.Bill() != "" || f.CustomTip() != "" {
		t.Errorf("expected empty bill and custom, got %q / %q", f.Bill(), f.CustomTip())
	}
	if f.People() != "1" {
		t.Errorf("People() = %q, want 1", f.People())
	}
	if !f.PresetActive(15) {
		t.Error("expected 15% preset active on a new form")
	}
	if f.Rounding() != RoundNone {
		t.Errorf("Rounding() = %v, want none", f.Rounding())
	}

	r := f.Results()
	if !r.Valid() {
		t.Errorf("fresh form should be valid, got %+v", r)
	}
}

func TestNewFormInvalidDefaultPreset(t *testing.T) {
	f := NewForm(Defaults{Preset: 13, Rounding: RoundTip})

	if f.LastPreset() != DefaultPreset {
		t.Errorf("LastPreset() = %v, want %v", f.LastPreset(), DefaultPreset)
	}
	if f.Rounding() != RoundTip {
		t.Errorf("Rounding() = %v, want tip", f.Rounding())
	}
}

func TestSelectPresetClearsCustom(t *testing.T) {
	f := newTestForm()
	f.SetBill("100")
	f.SetCustomTip("25")

	if !f.CustomActive() {
		t.Fatal("expected custom active after typing a custom tip")
	}
	for _, p := range Presets {
		if f.PresetActive(p) {
			t.Errorf("preset %v should not be active while custom is", p)
		}
	}

	if err := f.SelectPreset(20); err != nil {
		t.Fatalf("SelectPreset(20) failed: %v", err)
	}
	if f.CustomActive() || f.CustomTip() != "" {
		t.Errorf("custom should be cleared, got %q", f.CustomTip())
	}
	for _, p := range Presets {
		if f.PresetActive(p) != (p == 20) {
			t.Errorf("PresetActive(%v) = %v", p, f.PresetActive(p))
		}
	}
	if got := f.Results().Display().Tip; got != "$20.00" {
		t.Errorf("tip = %s, want $20.00", got)
	}
}

func TestClearingCustomRestoresLastPreset(t *testing.T) {
	f := newTestForm()
	f.SetBill("100")
	if err := f.SelectPreset(18); err != nil {
		t.Fatalf("SelectPreset failed: %v", err)
	}

	f.SetCustomTip("3")
	if got := f.Results().TipPercent; got != 3 {
		t.Errorf("TipPercent = %v, want 3 while custom active", got)
	}
	if f.LastPreset() != 18 {
		t.Errorf("LastPreset() = %v, want 18 while custom active", f.LastPreset())
	}

	f.SetCustomTip("")
	if !f.PresetActive(18) {
		t.Error("expected 18% restored after clearing custom")
	}
	if got := f.Results().TipPercent; got != 18 {
		t.Errorf("TipPercent = %v, want 18", got)
	}

	f.SetCustomTip("   ")
	if f.CustomActive() {
		t.Error("whitespace-only custom text should not be active")
	}
}

func TestSelectUnknownPreset(t *testing.T) {
	f := newTestForm()
	f.SetCustomTip("7")

	if err := f.SelectPreset(25); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("SelectPreset(25) error = %v, want ErrUnknownPreset", err)
	}
	if f.CustomTip() != "7" {
		t.Errorf("rejected preset must not touch custom, got %q", f.CustomTip())
	}
}

func TestSetPeopleClamps(t *testing.T) {
	f := newTestForm()

	for _, in := range []string{"0", "abc", "-4", ""} {
		if got := f.SetPeople(in); got != "1" {
			t.Errorf("SetPeople(%q) = %q, want 1", in, got)
		}
		if !f.Results().PeopleInvalid {
			t.Errorf("SetPeople(%q) should raise PeopleInvalid", in)
		}
	}

	if got := f.SetPeople("3.7"); got != "3" {
		t.Errorf("SetPeople(3.7) = %q, want 3", got)
	}
	if f.Results().PeopleInvalid {
		t.Error("valid people edit should clear PeopleInvalid")
	}
}

func TestBlurPeopleIdempotent(t *testing.T) {
	f := newTestForm()

	f.SetPeople("0")
	if got := f.BlurPeople(); got != "1" {
		t.Errorf("BlurPeople() = %q, want 1", got)
	}
	if !f.Results().PeopleInvalid {
		t.Error("blur must keep the error raised by the edit")
	}

	f.SetPeople("4")
	f.BlurPeople()
	f.BlurPeople()
	if f.People() != "4" || f.Results().PeopleInvalid {
		t.Errorf("people = %q invalid = %v, want 4 / false", f.People(), f.Results().PeopleInvalid)
	}
}

func TestFormSplitExample(t *testing.T) {
	f := newTestForm()
	f.SetBill("120")
	f.SetPeople("3")

	d := f.Results().Display()
	want := Display{
		TipPercent:     "15%",
		Tip:            "$18.00",
		Total:          "$138.00",
		TipPerPerson:   "$6.00",
		TotalPerPerson: "$46.00",
	}
	if d != want {
		t.Errorf("Display() = %+v, want %+v", d, want)
	}
}

func TestCycleRoundingAndReset(t *testing.T) {
	f := newTestForm()
	f.SetBill("33")

	if got := f.CycleRounding(); got != RoundTip {
		t.Errorf("CycleRounding() = %v, want tip", got)
	}
	if got := f.Results().Display().Total; got != "$38.00" {
		t.Errorf("total = %s, want $38.00", got)
	}

	f.SetRounding(RoundTotal)
	f.SetCustomTip("1")
	f.SetPeople("0")
	f.Reset()

	if f.Bill() != "" || f.CustomTip() != "" || f.People() != "1" {
		t.Errorf("Reset left bill=%q custom=%q people=%q", f.Bill(), f.CustomTip(), f.People())
	}
	if f.Rounding() != RoundNone || !f.PresetActive(DefaultPreset) {
		t.Errorf("Reset left rounding=%v preset=%v", f.Rounding(), f.LastPreset())
	}
	if f.Results().PeopleInvalid {
		t.Error("Reset should clear the people error")
	}
}

func TestStepPeople(t *testing.T) {
	f := newTestForm()

	if got := f.StepPeople(1); got != "2" {
		t.Errorf("StepPeople(1) = %q, want 2", got)
	}
	if got := f.StepPeople(-5); got != "1" {
		t.Errorf("StepPeople(-5) = %q, want 1", got)
	}

	f.SetPeople("0")
	f.StepPeople(2)
	if f.People() != "3" || f.Results().PeopleInvalid {
		t.Errorf("people = %q invalid = %v, want 3 / false", f.People(), f.Results().PeopleInvalid)
	}
}
