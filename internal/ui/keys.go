package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// keyMap lists the bindings available while browsing cards
type keyMap struct {
	Quit      key.Binding
	Deselect  key.Binding
	Up        key.Binding
	Down      key.Binding
	EditFront key.Binding
	EditBack  key.Binding
	EditTags  key.Binding
	New       key.Binding
	Delete    key.Binding
	Export    key.Binding

	// Editing
	Done key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Deselect:  key.NewBinding(key.WithKeys("left")),
		Up:        key.NewBinding(key.WithKeys("up")),
		Down:      key.NewBinding(key.WithKeys("down")),
		EditFront: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "edit front")),
		EditBack:  key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "edit back")),
		EditTags:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "edit tags")),
		New:       key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
		Delete:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Export:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "export")),
		Done:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "finish editing")),
	}
}

// helpLine renders "[q] quit | [f] edit front | ..." for the info box
func (k keyMap) helpLine() string {
	bindings := []key.Binding{k.Quit, k.EditFront, k.EditBack, k.EditTags, k.New, k.Delete, k.Export}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, "["+h.Key+"] "+h.Desc)
	}
	return strings.Join(parts, " | ")
}
