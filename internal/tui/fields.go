package tui

import (
	"strings"

	"github.com/Mr-Dark-debug/tipcalc/internal/calculator"
)

// renderFormPanel renders the input side of the screen.
func renderFormPanel(m *Model, results calculator.Results, width int) string {
	var lines []string

	lines = append(lines, panelTitleStyle.Render("Bill"))
	lines = append(lines, "")

	// ── Bill ──

	lines = append(lines, fieldLabel(m, FieldBill, "Bill amount"))
	lines = append(lines, "  "+m.bill.View())
	if results.BillNegative {
		lines = append(lines, helperError("Bill amount cannot be negative"))
	}
	lines = append(lines, "")

	// ── Presets ──

	lines = append(lines, fieldLabel(m, FieldPresets, "Tip"))
	lines = append(lines, "  "+renderPresets(m))
	lines = append(lines, "")

	// ── Custom ──

	lines = append(lines, fieldLabel(m, FieldCustom, "Custom tip %"))
	lines = append(lines, "  "+m.custom.View())
	switch {
	case results.TipNegative:
		lines = append(lines, helperError("Tip percentage cannot be negative"))
	case results.CustomActive:
		lines = append(lines, helperNote("Overrides presets. Clear to restore "+m.form.LastPreset().String()+"."))
	}
	lines = append(lines, "")

	// ── People ──

	lines = append(lines, fieldLabel(m, FieldPeople, "People"))
	lines = append(lines, "  "+m.people.View())
	if results.PeopleInvalid {
		lines = append(lines, helperError("People must be a whole number of at least 1"))
	}
	lines = append(lines, "")

	// ── Rounding ──

	lines = append(lines, fieldLabel(m, FieldRounding, "Rounding"))
	lines = append(lines, "  "+renderRounding(m))

	return panelActiveStyle.Width(width).Render(strings.Join(lines, "\n"))
}

// renderPresets draws the four preset toggles. The active preset is
// filled; the cursor is underlined while the row has focus.
func renderPresets(m *Model) string {
	var parts []string
	for i, p := range calculator.Presets {
		style := toggleStyle
		if m.form.PresetActive(p) {
			style = toggleActiveStyle
		}
		if m.focus == FieldPresets && i == m.presetCursor {
			style = style.Inherit(toggleCursorStyle)
		}
		parts = append(parts, style.Render(p.String()))
	}
	return strings.Join(parts, " ")
}

// renderRounding draws the three-way rounding selector.
func renderRounding(m *Model) string {
	var parts []string
	for _, mode := range calculator.RoundingModes {
		style := toggleStyle
		if mode == m.form.Rounding() {
			style = toggleActiveStyle
			if m.focus == FieldRounding {
				style = style.Inherit(toggleCursorStyle)
			}
		}
		parts = append(parts, style.Render(mode.Label()))
	}
	return strings.Join(parts, " ")
}

// ── helpers ──

func fieldLabel(m *Model, f Field, text string) string {
	if m.focus == f {
		return labelFocusedStyle.Render("▸ " + text)
	}
	return labelStyle.Render("  " + text)
}

func helperError(text string) string {
	return "  " + helperErrorStyle.Render("! "+text)
}

func helperNote(text string) string {
	return "  " + helperNoteStyle.Render(text)
}
