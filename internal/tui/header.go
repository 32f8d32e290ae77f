package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// renderHeader produces the top bar:
//
//	TIPCALC  |  Tip Calculator  |  Preset 15%  |  No rounding
func renderHeader(m *Model) string {
	brand := headerBrandStyle.Render("TIPCALC")
	sep := headerSepStyle.Render(" │ ")

	source := "Preset " + m.form.LastPreset().String()
	if m.form.CustomActive() {
		source = "Custom tip"
	}

	parts := []string{
		brand,
		sep, headerMetaStyle.Render("Tip Calculator"),
		sep, headerMetaStyle.Render(source),
		sep, headerMetaStyle.Render(m.form.Rounding().Label()),
	}

	return headerBarStyle.Width(m.width).Render(strings.Join(parts, ""))
}

// renderFooter produces the bottom status bar with keyboard hints for
// the focused field.
func renderFooter(m *Model) string {
	var left string
	if m.statusMsg != "" {
		left = statusStyle.Render(m.statusMsg)
	}

	bindings := []key.Binding{m.keys.Next, m.keys.Prev}
	switch m.focus {
	case FieldPresets:
		bindings = append(bindings, m.keys.Select, m.keys.PresetShortcut)
	case FieldRounding:
		bindings = append(bindings, m.keys.Right, m.keys.PresetShortcut)
	case FieldPeople:
		bindings = append(bindings, m.keys.Increment)
	}
	bindings = append(bindings, m.keys.Reset, m.keys.Quit)

	right := renderHints(bindings)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return lipgloss.NewStyle().
		Background(colorBgSurface).
		Width(m.width).
		Render(bar)
}

func renderHints(bindings []key.Binding) string {
	var parts []string
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts,
			hintKeyStyle.Render(h.Key)+" "+hintDescStyle.Render(h.Desc))
	}
	return strings.Join(parts, hintDescStyle.Render("  "))
}
