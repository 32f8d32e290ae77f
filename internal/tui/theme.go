package tui

import "github.com/charmbracelet/lipgloss"

// ────────────────────────────────────────────────────────────
// Color Palette — GitHub Dark aesthetic
// ────────────────────────────────────────────────────────────
//
// All colors are defined here. No ad-hoc color literals anywhere.

var (
	// Base
	colorBg        = lipgloss.Color("#0d1117")
	colorBgSurface = lipgloss.Color("#1c2128")

	// Text
	colorText      = lipgloss.Color("#e6edf3")
	colorTextDim   = lipgloss.Color("#8b949e")
	colorTextMuted = lipgloss.Color("#484f58")

	// Accents
	colorBlue   = lipgloss.Color("#58a6ff")
	colorGreen  = lipgloss.Color("#3fb950")
	colorRed    = lipgloss.Color("#f85149")
	colorYellow = lipgloss.Color("#d29922")

	// Structural
	colorDivider   = lipgloss.Color("#30363d")
	colorHighlight = lipgloss.Color("#1f6feb")
)

// ────────────────────────────────────────────────────────────
// Component Styles
// ────────────────────────────────────────────────────────────

// Header bar
var (
	headerBarStyle = lipgloss.NewStyle().
			Background(colorBgSurface).
			Foreground(colorText).
			Padding(0, 1)

	headerBrandStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorBlue)

	headerSepStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)

	headerMetaStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)
)

// Panel chrome
var (
	panelStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.Border{Top: "─"}).
			BorderForeground(colorDivider)

	panelActiveStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Border(lipgloss.Border{Top: "─"}).
				BorderForeground(colorBlue)

	panelTitleStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)
)

// Form fields
var (
	labelStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	labelFocusedStyle = lipgloss.NewStyle().
				Foreground(colorBlue).
				Bold(true)

	inputPromptStyle = lipgloss.NewStyle().
				Foreground(colorTextDim)

	helperErrorStyle = lipgloss.NewStyle().
				Foreground(colorRed)

	helperNoteStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)
)

// Toggles (presets and rounding options)
var (
	toggleStyle = lipgloss.NewStyle().
			Foreground(colorTextDim).
			Padding(0, 1)

	toggleActiveStyle = lipgloss.NewStyle().
				Background(colorHighlight).
				Foreground(colorText).
				Bold(true).
				Padding(0, 1)

	toggleCursorStyle = lipgloss.NewStyle().
				Underline(true)
)

// Results panel
var (
	resultLabelStyle = lipgloss.NewStyle().
				Foreground(colorBlue)

	resultValueStyle = lipgloss.NewStyle().
				Foreground(colorText)

	resultTotalStyle = lipgloss.NewStyle().
				Foreground(colorGreen).
				Bold(true)

	resultDimStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	resultWarnStyle = lipgloss.NewStyle().
			Foreground(colorYellow)
)

// Footer / status bar
var (
	statusStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorBgSurface).
			Padding(0, 1)

	hintKeyStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	hintDescStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)

	cursorStyle = lipgloss.NewStyle().
			Background(colorBlue).
			Foreground(colorBg)
)
