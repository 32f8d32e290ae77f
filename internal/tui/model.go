package tui

import (
	"fmt"
	"log/slog"

	"github.com/Mr-Dark-debug/tipcalc/internal/calculator"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ────────────────────────────────────────────────────────────
// Field focus
// ────────────────────────────────────────────────────────────

// Field identifies which form control has keyboard focus.
type Field int

const (
	FieldBill Field = iota
	FieldPresets
	FieldCustom
	FieldPeople
	FieldRounding

	fieldCount
)

// isText reports whether the field is backed by a text input.
func (f Field) isText() bool {
	return f == FieldBill || f == FieldCustom || f == FieldPeople
}

// ────────────────────────────────────────────────────────────
// Model
// ────────────────────────────────────────────────────────────

// Model is the root BubbleTea model for the tip form. The calculator
// Form is the single source of truth; the text inputs only hold what
// is on screen and are written back whenever the Form rewrites a value.
type Model struct {
	form *calculator.Form
	keys KeyMap

	// Inputs
	bill   textinput.Model
	custom textinput.Model
	people textinput.Model

	// UI state
	focus        Field
	presetCursor int
	width        int
	height       int

	// Status
	statusMsg string
}

// NewModel creates a form model driving the given calculator form.
func NewModel(form *calculator.Form) Model {
	m := Model{
		form:      form,
		keys:      DefaultKeyMap,
		bill:      newInput("0.00", 12, "$ "),
		custom:    newInput("e.g. 12.5", 8, ""),
		people:    newInput("1", 4, ""),
		statusMsg: "Enter a bill amount",
	}
	m.syncInputs()
	m.bill.Focus()
	return m
}

func newInput(placeholder string, limit int, prompt string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = limit + 1
	ti.Prompt = prompt
	ti.PromptStyle = inputPromptStyle
	ti.Cursor.Style = cursorStyle
	return ti
}

// syncInputs copies every field value from the Form into the inputs and
// puts the preset cursor on the remembered preset.
func (m *Model) syncInputs() {
	m.bill.SetValue(m.form.Bill())
	m.custom.SetValue(m.form.CustomTip())
	m.people.SetValue(m.form.People())
	for i, p := range calculator.Presets {
		if p == m.form.LastPreset() {
			m.presetCursor = i
		}
	}
}

// Results exposes the current derived values.
func (m Model) Results() calculator.Results {
	return m.form.Results()
}

// Focused returns the field that currently has keyboard focus.
func (m Model) Focused() Field {
	return m.focus
}

// ────────────────────────────────────────────────────────────
// Init
// ────────────────────────────────────────────────────────────

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// ────────────────────────────────────────────────────────────
// Update
// ────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Cursor blink and other input housekeeping.
	var cmd tea.Cmd
	switch m.focus {
	case FieldBill:
		m.bill, cmd = m.bill.Update(msg)
	case FieldCustom:
		m.custom, cmd = m.custom.Update(msg)
	case FieldPeople:
		m.people, cmd = m.people.Update(msg)
	}
	return m, cmd
}

// handleKey routes keyboard input based on the focused field.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {

	// ── Global ──

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		return m.setFocus((m.focus + 1) % fieldCount)

	case key.Matches(msg, m.keys.Prev):
		return m.setFocus((m.focus + fieldCount - 1) % fieldCount)

	case key.Matches(msg, m.keys.Reset):
		m.form.Reset()
		m.syncInputs()
		m.statusMsg = "Form reset"
		return m, nil
	}

	// ── Text fields ──

	if m.focus.isText() {
		return m.handleTextKey(msg)
	}

	// ── Toggles ──

	if key.Matches(msg, m.keys.PresetShortcut) {
		idx := int(msg.String()[0] - '1')
		if idx >= 0 && idx < len(calculator.Presets) {
			m.presetCursor = idx
			m.selectPreset(calculator.Presets[idx])
		}
		return m, nil
	}

	switch m.focus {
	case FieldPresets:
		switch {
		case key.Matches(msg, m.keys.Left):
			if m.presetCursor > 0 {
				m.presetCursor--
			}
		case key.Matches(msg, m.keys.Right):
			if m.presetCursor < len(calculator.Presets)-1 {
				m.presetCursor++
			}
		case key.Matches(msg, m.keys.Select):
			m.selectPreset(calculator.Presets[m.presetCursor])
		}

	case FieldRounding:
		switch {
		case key.Matches(msg, m.keys.Left):
			m.form.SetRounding(m.form.Rounding().Prev())
		case key.Matches(msg, m.keys.Right), key.Matches(msg, m.keys.Select):
			m.form.CycleRounding()
		default:
			return m, nil
		}
		m.statusMsg = m.form.Rounding().Label()
	}

	return m, nil
}

// handleTextKey forwards a key press to the focused text input and
// pushes the edited value into the Form.
func (m Model) handleTextKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.focus {
	case FieldBill:
		before := m.bill.Value()
		m.bill, cmd = m.bill.Update(msg)
		if v := m.bill.Value(); v != before {
			m.form.SetBill(v)
		}

	case FieldCustom:
		before := m.custom.Value()
		m.custom, cmd = m.custom.Update(msg)
		if v := m.custom.Value(); v != before {
			m.form.SetCustomTip(v)
			if !m.form.CustomActive() {
				m.statusMsg = fmt.Sprintf("Preset %s restored", m.form.LastPreset())
			}
		}

	case FieldPeople:
		switch {
		case key.Matches(msg, m.keys.Increment):
			m.setPeopleText(m.form.StepPeople(1))
			return m, nil
		case key.Matches(msg, m.keys.Decrement):
			m.setPeopleText(m.form.StepPeople(-1))
			return m, nil
		}

		before := m.people.Value()
		m.people, cmd = m.people.Update(msg)
		if v := m.people.Value(); v != before {
			m.setPeopleText(m.form.SetPeople(v))
		}
	}

	return m, cmd
}

// setPeopleText writes a normalized people count back to the input.
func (m *Model) setPeopleText(text string) {
	if m.people.Value() != text {
		m.people.SetValue(text)
		m.people.CursorEnd()
	}
}

func (m *Model) selectPreset(p calculator.Preset) {
	if err := m.form.SelectPreset(p); err != nil {
		slog.Warn("preset rejected", "preset", p, "error", err)
		return
	}
	m.custom.SetValue("")
	m.statusMsg = fmt.Sprintf("Tip %s", p)
}

// setFocus moves focus to f, blurring the previous field. Leaving the
// people field re-validates its value.
func (m Model) setFocus(f Field) (tea.Model, tea.Cmd) {
	if m.focus == FieldPeople && f != FieldPeople {
		m.setPeopleText(m.form.BlurPeople())
	}

	m.bill.Blur()
	m.custom.Blur()
	m.people.Blur()
	m.focus = f

	switch f {
	case FieldBill:
		return m, m.bill.Focus()
	case FieldCustom:
		return m, m.custom.Focus()
	case FieldPeople:
		return m, m.people.Focus()
	}
	return m, nil
}

// ────────────────────────────────────────────────────────────
// View
// ────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	header := renderHeader(&m)
	footer := renderFooter(&m)

	bodyHeight := m.height - 2 // header + footer

	return lipgloss.JoinVertical(lipgloss.Left, header, m.renderBody(bodyHeight), footer)
}

// renderBody places the form and results side by side, or stacked on
// narrow terminals (< 60 cols).
func (m Model) renderBody(height int) string {
	results := m.form.Results()

	if m.width < 60 {
		form := renderFormPanel(&m, results, m.width)
		res := renderResultsPanel(results, m.width, false)
		return lipgloss.NewStyle().Height(height).Render(
			lipgloss.JoinVertical(lipgloss.Left, form, res))
	}

	leftWidth := m.width * 55 / 100
	rightWidth := m.width - leftWidth

	form := renderFormPanel(&m, results, leftWidth)
	res := renderResultsPanel(results, rightWidth, true)

	return lipgloss.NewStyle().Height(height).Render(
		lipgloss.JoinHorizontal(lipgloss.Top, form, res))
}
