package picker

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	up      key.Binding
	down    key.Binding
	left    key.Binding
	right   key.Binding
	toggle  key.Binding
	esc     key.Binding
	scheme  key.Binding
	confirm key.Binding
	quit    key.Binding
	abort   key.Binding
}

var defaultKeymap = keymap{
	up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "earlier"),
	),
	down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "later"),
	),
	left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "prev day"),
	),
	right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next day"),
	),
	toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "start/end drag"),
	),
	esc: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "end drag"),
	),
	scheme: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "scheme"),
	),
	confirm: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "done"),
	),
	quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "save & quit"),
	),
	abort: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "discard"),
	),
}

func (k keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.toggle, k.esc, k.scheme, k.confirm, k.abort}
}

func (k keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.left, k.right},
		{k.toggle, k.esc, k.scheme},
		{k.confirm, k.quit, k.abort},
	}
}

func (k keymap) dragHelp() []key.Binding {
	return []key.Binding{k.toggle, k.esc, k.scheme, k.abort}
}
