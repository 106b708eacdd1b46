package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the list-mode bindings.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Add    key.Binding
	Edit   key.Binding
	Remove key.Binding
	Filter key.Binding
	Format key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle: key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "done/undo")),
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Remove: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Filter: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
		Format: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "storage")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k KeyMap) extra() []key.Binding {
	return []key.Binding{k.Toggle, k.Add, k.Edit, k.Remove, k.Filter, k.Format}
}
