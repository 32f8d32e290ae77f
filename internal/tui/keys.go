package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the tip form.
type KeyMap struct {
	// Focus movement between fields.
	Next key.Binding
	Prev key.Binding

	// Movement inside the preset row and rounding selector.
	Left  key.Binding
	Right key.Binding

	// Select the option under the cursor.
	Select key.Binding

	// Pick a preset by position without moving focus. Ignored while a
	// text field has focus so digits can be typed.
	PresetShortcut key.Binding

	// Step the people count while the people field has focus.
	Increment key.Binding
	Decrement key.Binding

	Reset key.Binding
	Quit  key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	Next: key.NewBinding(
		key.WithKeys("tab", "down"),
		key.WithHelp("tab", "next"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab", "up"),
		key.WithHelp("S-tab", "prev"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→", "right"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "select"),
	),
	PresetShortcut: key.NewBinding(
		key.WithKeys("1", "2", "3", "4"),
		key.WithHelp("1-4", "preset"),
	),
	Increment: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+/-", "people"),
	),
	Decrement: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "fewer people"),
	),
	Reset: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("C-r", "reset"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("esc", "quit"),
	),
}
