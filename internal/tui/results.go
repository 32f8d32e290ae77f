package tui

import (
	"fmt"
	"strings"

	"github.com/Mr-Dark-debug/tipcalc/internal/calculator"
)

// renderResultsPanel renders the derived values. Per-person rows only
// appear when the bill is split between more than one person.
func renderResultsPanel(r calculator.Results, width int, tall bool) string {
	d := r.Display()

	var lines []string
	lines = append(lines, panelTitleStyle.Render("Results"))
	lines = append(lines, "")

	lines = append(lines, resultRow("Tip %", resultValueStyle.Render(d.TipPercent)))
	lines = append(lines, resultRow("Tip Amount", resultValueStyle.Render(d.Tip)))
	lines = append(lines, resultRow("Total", resultTotalStyle.Render(d.Total)))

	if r.ShowPerPerson {
		lines = append(lines, "")
		lines = append(lines, resultDimStyle.Render(fmt.Sprintf("Split %d ways", r.People)))
		lines = append(lines, resultRow("Tip/person", resultValueStyle.Render(d.TipPerPerson)))
		lines = append(lines, resultRow("Total/person", resultTotalStyle.Render(d.TotalPerPerson)))
	}

	if !r.Valid() && tall {
		lines = append(lines, "")
		lines = append(lines, resultWarnStyle.Render("Some inputs were adjusted; see the form."))
	}

	return panelStyle.Width(width).Render(strings.Join(lines, "\n"))
}

func resultRow(label, value string) string {
	return resultLabelStyle.Render(fmt.Sprintf("%-13s", label)) + value
}
