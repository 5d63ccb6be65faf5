package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	New       key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
	Up        key.Binding
	Down      key.Binding
	Filter    key.Binding

	Next     key.Binding
	Prev     key.Binding
	Activate key.Binding
	Save     key.Binding
	Cancel   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		New:       key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new entry")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Filter:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),

		Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Activate: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "press")),
		Save:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// helpKeys adapts a fixed binding set to help.KeyMap.
type helpKeys []key.Binding

func (h helpKeys) ShortHelp() []key.Binding  { return h }
func (h helpKeys) FullHelp() [][]key.Binding { return [][]key.Binding{h} }

func (k keyMap) overlayHelp() helpKeys {
	return helpKeys{k.Next, k.Activate, k.Save, k.Cancel}
}

func (k keyMap) listHelp() helpKeys {
	return helpKeys{k.New, k.Up, k.Down, k.Filter, k.Quit}
}
