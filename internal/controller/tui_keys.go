package controller

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Load         key.Binding
	ToggleClear  key.Binding
	Scroll       key.Binding
	Quit         key.Binding
	ForceQuit    key.Binding
	Cancel       key.Binding
	ToggleFilter key.Binding
	Choose       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Load: key.NewBinding(
			key.WithKeys("l", "o", "enter"),
			key.WithHelp("l/enter", "load json"),
		),
		ToggleClear: key.NewBinding(
			key.WithKeys(" ", "c"),
			key.WithHelp("space/c", "toggle clear"),
		),
		// help only; scrolling is handled by the viewport key map
		Scroll: key.NewBinding(
			key.WithKeys("up", "down", "pgup", "pgdown"),
			key.WithHelp("↑/↓/pgup/pgdn", "scroll"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		ToggleFilter: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "json/all files"),
		),
		Choose: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
	}
}

func (k keyMap) idleHelp() []key.Binding {
	return []key.Binding{k.Load, k.ToggleClear, k.Scroll, k.Quit}
}

func (k keyMap) pickerHelp() []key.Binding {
	return []key.Binding{k.Choose, k.ToggleFilter, k.Cancel}
}
