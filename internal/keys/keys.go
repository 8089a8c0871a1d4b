package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings for the application
type KeyMap struct {
	// Windows
	NextWin key.Binding
	PrevWin key.Binding
	Win     []key.Binding // Win[i] jumps to slot i

	// Scrolling
	PageUp   key.Binding
	PageDown key.Binding

	// Actions
	Submit key.Binding
	Yank   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default keybindings
var DefaultKeyMap = KeyMap{
	NextWin: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next window"),
	),
	PrevWin: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("S-tab", "prev window"),
	),
	Win: winBindings(),
	PageUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "scroll up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdown", "scroll down"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "send"),
	),
	Yank: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("C-y", "copy console"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("C-c", "quit"),
	),
}

// alt+1 .. alt+9 select slots 0..8, alt+0 selects slot 9
func winBindings() []key.Binding {
	digits := "1234567890"
	bindings := make([]key.Binding, len(digits))
	for i, d := range digits {
		k := "alt+" + string(d)
		bindings[i] = key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, "window "+string(d)),
		)
	}
	return bindings
}

// HelpBindings returns the keybindings to display in help
func HelpBindings() []key.Binding {
	return []key.Binding{
		DefaultKeyMap.NextWin,
		DefaultKeyMap.PrevWin,
		DefaultKeyMap.Win[0],
		DefaultKeyMap.PageUp,
		DefaultKeyMap.PageDown,
		DefaultKeyMap.Yank,
		DefaultKeyMap.Quit,
	}
}
