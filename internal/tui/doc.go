// Package tui implements the tipcalc terminal form.
//
// Built with Charmbracelet's BubbleTea, Lipgloss and Bubbles. All
// arithmetic lives in internal/calculator; this package only turns
// key presses into Form calls and Form results into text.
//
// Component architecture:
//
//	model.go   — root model, focus handling, Init/Update/View
//	keys.go    — key bindings
//	theme.go   — centralized color + style definitions
//	header.go  — top bar and footer key hints
//	fields.go  — input fields, preset toggles, rounding selector
//	results.go — tip / total / per-person panel
package tui
