package calculator

import (
	"math"
	"strings"

	"github.com/Mr-Dark-debug/tipcalc/pkg/currency"
)

// Inputs is the raw state of the form.
type Inputs struct {
	Bill      string
	Preset    Preset
	CustomTip string
	People    string
	Rounding  RoundingMode
}

// Results holds every value derived from Inputs.
//
// Monetary fields are never negative. Per-person fields are only
// meaningful when ShowPerPerson is set.
type Results struct {
	Bill           float64      `json:"bill"`
	TipPercent     float64      `json:"tip_percent"`
	CustomActive   bool         `json:"custom_active"`
	Rounding       RoundingMode `json:"rounding"`
	Tip            float64      `json:"tip"`
	Total          float64      `json:"total"`
	People         int          `json:"people"`
	ShowPerPerson  bool         `json:"show_per_person"`
	TipPerPerson   float64      `json:"tip_per_person,omitempty"`
	TotalPerPerson float64      `json:"total_per_person,omitempty"`

	// Validation flags. None of them stop the calculation.
	BillNegative  bool `json:"bill_negative"`
	TipNegative   bool `json:"tip_negative"`
	PeopleInvalid bool `json:"people_invalid"`
}

// Display is Results rendered for the results panel.
type Display struct {
	TipPercent     string `json:"tip_percent"`
	Tip            string `json:"tip"`
	Total          string `json:"total"`
	TipPerPerson   string `json:"tip_per_person,omitempty"`
	TotalPerPerson string `json:"total_per_person,omitempty"`
}

// Valid reports whether no validation flag is raised.
func (r Results) Valid() bool {
	return !r.BillNegative && !r.TipNegative && !r.PeopleInvalid
}

// Display formats the monetary values as currency. Per-person strings
// are left empty when there is nobody to split with.
func (r Results) Display() Display {
	d := Display{
		TipPercent: currency.FormatPercent(r.TipPercent),
		Tip:        currency.Format(r.Tip),
		Total:      currency.Format(r.Total),
	}
	if r.ShowPerPerson {
		d.TipPerPerson = currency.Format(r.TipPerPerson)
		d.TotalPerPerson = currency.Format(r.TotalPerPerson)
	}
	return d
}

// customActive reports whether the custom field overrides the preset.
func customActive(text string) bool {
	return strings.TrimSpace(text) != ""
}

// Derive computes tip, total and the per-person split from raw inputs.
func Derive(in Inputs) Results {
	rawBill := CoerceNumber(in.Bill)

	custom := customActive(in.CustomTip)
	rawPercent := float64(in.Preset)
	if custom {
		rawPercent = CoerceNumber(in.CustomTip)
	}

	normalized, clamped := NormalizePeople(in.People)
	people := peopleCount(normalized)

	bill := math.Max(rawBill, 0)
	percent := math.Max(rawPercent, 0)

	baseTip := bill * percent / 100
	baseTotal := bill + baseTip

	var tip, total float64
	switch in.Rounding {
	case RoundTip:
		tip = roundUnit(baseTip)
		total = bill + tip
	case RoundTotal:
		total = roundUnit(baseTotal)
		// A total that rounds below the bill never yields a negative tip.
		tip = math.Max(0, total-bill)
	default:
		tip = baseTip
		total = baseTotal
	}

	r := Results{
		Bill:          bill,
		TipPercent:    percent,
		CustomActive:  custom,
		Rounding:      in.Rounding,
		Tip:           tip,
		Total:         total,
		People:        people,
		BillNegative:  rawBill < 0,
		TipNegative:   rawPercent < 0,
		PeopleInvalid: clamped,
	}
	if people > 1 {
		r.ShowPerPerson = true
		r.TipPerPerson = tip / float64(people)
		r.TotalPerPerson = total / float64(people)
	}
	return r
}

// roundUnit rounds half up to a whole currency unit. Inputs are never
// negative, so math.Round's half-away-from-zero is half up here.
func roundUnit(v float64) float64 {
	return math.Round(v)
}
