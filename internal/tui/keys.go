package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	Enter    key.Binding
	Back     key.Binding
	HalfUp   key.Binding
	HalfDown key.Binding
	Home     key.Binding
	End      key.Binding

	// Actions
	Quit         key.Binding
	Help         key.Binding
	Escape       key.Binding
	Filter       key.Binding
	Sort         key.Binding
	Refresh      key.Binding
	Play         key.Binding
	PlayFrontend key.Binding
	Restart      key.Binding
	Mute         key.Binding
	Unmute       key.Binding
	Hooks        key.Binding
	Emulator     key.Binding
	Server       key.Binding
	Language     key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		Back: key.NewBinding(
			key.WithKeys("h", "left", "backspace"),
			key.WithHelp("h/←", "back"),
		),
		HalfUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("C-u", "half page up"),
		),
		HalfDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("C-d", "half page down"),
		),
		Home: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "go to top"),
		),
		End: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "go to bottom"),
		),

		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel/clear"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "cycle sort"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Play: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "play via emulator"),
		),
		PlayFrontend: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "play via frontend"),
		),
		Restart: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "restart frontend"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		Unmute: key.NewBinding(
			key.WithKeys("M"),
			key.WithHelp("M", "unmute"),
		),
		Hooks: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "run hook"),
		),
		Emulator: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "switch emulator"),
		),
		Server: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "change backend address"),
		),
		Language: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "toggle language"),
		),
	}
}

// Keys is the global key bindings instance
var Keys = DefaultKeyMap()
