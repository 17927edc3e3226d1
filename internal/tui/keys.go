package tui

import "github.com/charmbracelet/bubbles/key"

// navKeyMap holds the bindings active in navigation mode.
type navKeyMap struct {
	Down        key.Binding
	Up          key.Binding
	Top         key.Binding
	Bottom      key.Binding
	PreviewDown key.Binding
	PreviewUp   key.Binding
	Filter      key.Binding
	Open        key.Binding
	Quit        key.Binding
}

// editKeyMap holds the bindings intercepted before keys reach the filter
// input in editing mode.
type editKeyMap struct {
	Done   key.Binding
	Accept key.Binding
	Next   key.Binding
	Prev   key.Binding
}

var navKeys = navKeyMap{
	Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j/↓", "down")),
	Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k/↑", "up")),
	Top:         key.NewBinding(key.WithKeys("g"), key.WithHelp("gg", "top")),
	Bottom:      key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "bottom")),
	PreviewDown: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "readme down")),
	PreviewUp:   key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "readme up")),
	Filter:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
	Open:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	Quit:        key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q/esc", "quit")),
}

var editKeys = editKeyMap{
	Done:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "done")),
	Accept: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "done")),
	Next:   key.NewBinding(key.WithKeys("ctrl+n", "down"), key.WithHelp("ctrl+n/↓", "down")),
	Prev:   key.NewBinding(key.WithKeys("ctrl+p", "up"), key.WithHelp("ctrl+p/↑", "up")),
}

// forceQuit works in both modes. Raw mode turns ctrl+c into a key press.
var forceQuit = key.NewBinding(key.WithKeys("ctrl+c"))

func (k navKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Filter, k.Open, k.Quit}
}

func (k navKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Up, k.Top, k.Bottom},
		{k.PreviewDown, k.PreviewUp},
		{k.Filter, k.Open, k.Quit},
	}
}

func (k editKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Done}
}

func (k editKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev}, {k.Done, k.Accept}}
}
