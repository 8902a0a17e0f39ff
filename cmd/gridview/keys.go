package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	grid "github.com/etsisk/cantal-sub000"
)

type keyMap struct {
	Up, Down, Left, Right                     key.Binding
	ShiftUp, ShiftDown, ShiftLeft, ShiftRight key.Binding
	Tab, ShiftTab, Enter, Escape              key.Binding
	Backspace, Delete, Edit, Clear            key.Binding
	PageUp, PageDown                          key.Binding
	Copy, Paste, Sort, Narrow, Widen          key.Binding
	Quit                                      key.Binding
}

var keys = keyMap{
	Up:         key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
	Down:       key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
	Left:       key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
	Right:      key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
	ShiftUp:    key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("⇧↑", "extend up")),
	ShiftDown:  key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("⇧↓", "extend down")),
	ShiftLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("⇧←", "extend left")),
	ShiftRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("⇧→", "extend right")),
	Tab:        key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next cell")),
	ShiftTab:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("⇧tab", "previous cell")),
	Enter:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "commit / down")),
	Escape:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	Backspace:  key.NewBinding(key.WithKeys("backspace")),
	Delete:     key.NewBinding(key.WithKeys("delete")),
	Edit:       key.NewBinding(key.WithKeys("f2"), key.WithHelp("f2", "edit")),
	Clear:      key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("^u", "edit")),
	PageUp:     key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
	PageDown:   key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
	Copy:       key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("^y", "copy")),
	Paste:      key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("^v", "paste")),
	Sort:       key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("^s", "sort")),
	Narrow:     key.NewBinding(key.WithKeys("ctrl+left"), key.WithHelp("^←", "narrow")),
	Widen:      key.NewBinding(key.WithKeys("ctrl+right"), key.WithHelp("^→", "widen")),
	Quit:       key.NewBinding(key.WithKeys("ctrl+c", "ctrl+q"), key.WithHelp("^q", "quit")),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Edit, k.Enter, k.Copy, k.Paste, k.Sort, k.Quit}
}

// gridKey translates a terminal key press into a grid key event.
func gridKey(msg tea.KeyMsg) (grid.KeyEvent, bool) {
	bindings := []struct {
		binding key.Binding
		event   grid.KeyEvent
	}{
		{keys.Up, grid.KeyEvent{Key: grid.KeyUp}},
		{keys.Down, grid.KeyEvent{Key: grid.KeyDown}},
		{keys.Left, grid.KeyEvent{Key: grid.KeyLeft}},
		{keys.Right, grid.KeyEvent{Key: grid.KeyRight}},
		{keys.ShiftUp, grid.KeyEvent{Key: grid.KeyUp, Shift: true}},
		{keys.ShiftDown, grid.KeyEvent{Key: grid.KeyDown, Shift: true}},
		{keys.ShiftLeft, grid.KeyEvent{Key: grid.KeyLeft, Shift: true}},
		{keys.ShiftRight, grid.KeyEvent{Key: grid.KeyRight, Shift: true}},
		{keys.Tab, grid.KeyEvent{Key: grid.KeyTab}},
		{keys.ShiftTab, grid.KeyEvent{Key: grid.KeyTab, Shift: true}},
		{keys.Enter, grid.KeyEvent{Key: grid.KeyEnter}},
		{keys.Escape, grid.KeyEvent{Key: grid.KeyEscape}},
		{keys.Backspace, grid.KeyEvent{Key: grid.KeyBackspace}},
		{keys.Delete, grid.KeyEvent{Key: grid.KeyDelete}},
		{keys.Edit, grid.KeyEvent{Key: grid.KeyF2}},
		{keys.Clear, grid.KeyEvent{Key: grid.KeyRune, Rune: 'u', Ctrl: true}},
	}
	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			return b.event, true
		}
	}
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 1 {
			return grid.KeyEvent{Key: grid.KeyRune, Rune: msg.Runes[0], Alt: msg.Alt}, true
		}
	case tea.KeySpace:
		return grid.KeyEvent{Key: grid.KeyRune, Rune: ' '}, true
	}
	return grid.KeyEvent{}, false
}
