package controls

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	togglePlay key.Binding
	reset      key.Binding
	focus      key.Binding
	shortBreak key.Binding
	longBreak  key.Binding
	fullscreen key.Binding
	settings   key.Binding
	mute       key.Binding
	esc        key.Binding
	quit       key.Binding
}

var defaultKeymap = keymap{
	togglePlay: key.NewBinding(
		key.WithKeys("s", " "),
		key.WithHelp("space", "start/pause"),
	),
	reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	focus: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "focus"),
	),
	shortBreak: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "short break"),
	),
	longBreak: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "long break"),
	),
	fullscreen: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "fullscreen"),
	),
	settings: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "settings"),
	),
	mute: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "mute"),
	),
	esc: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close settings"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keymap) shortHelp() []key.Binding {
	return []key.Binding{
		k.togglePlay,
		k.reset,
		k.focus,
		k.shortBreak,
		k.longBreak,
		k.fullscreen,
		k.settings,
		k.mute,
		k.quit,
	}
}
