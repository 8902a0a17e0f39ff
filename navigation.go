package grid

import "unicode"

// Key is a keyboard intent understood by the engine.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyTab
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyDelete
	KeyF2
	KeyRune // Rune carries the character
)

// KeyEvent is one key press with its modifiers.
type KeyEvent struct {
	Key   Key
	Rune  rune
	Shift bool
	Ctrl  bool
	Alt   bool
}

// PointerEvent describes a pointer interaction on a cell.
type PointerEvent struct {
	Cell   Cell
	Double bool
}

func (ev KeyEvent) printable() bool {
	return ev.Key == KeyRune && !ev.Ctrl && !ev.Alt && unicode.IsPrint(ev.Rune)
}

func (ev KeyEvent) direction() (Direction, bool) {
	switch ev.Key {
	case KeyUp:
		return Up, true
	case KeyDown:
		return Down, true
	case KeyLeft:
		return Left, true
	case KeyRight:
		return Right, true
	}
	return 0, false
}

// HandleKey applies a key press to st. handled is false when the key does
// nothing in the current state (for instance an arrow at the data edge),
// so the host may route it elsewhere. While a cell is being edited only
// Tab, Enter and Escape are handled; other keys belong to the editor.
func (g *Grid) HandleKey(st State, ev KeyEvent) (next State, handled bool, err error) {
	next, edits, handled, err := g.keyTransition(st, ev)
	if err != nil {
		return st, true, err
	}
	if handled {
		g.notify(st, next, edits, ev)
	}
	return next, handled, nil
}

func (g *Grid) keyTransition(st State, ev KeyEvent) (State, EditSet, bool, error) {
	if st.Edit != nil {
		switch ev.Key {
		case KeyEscape:
			next := st
			next.Edit = nil
			return next, nil, true, nil
		case KeyEnter, KeyTab:
			next, edits, err := g.commit(st)
			if err != nil {
				return st, nil, true, err
			}
			moved, _ := g.afterCommit(next, ev)
			return moved, edits, true, nil
		}
		return st, nil, false, nil
	}

	if st.Focus == nil || !g.inBounds(*st.Focus) {
		return st, nil, false, nil
	}
	focus := *st.Focus

	if dir, ok := ev.direction(); ok {
		if ev.Shift {
			next, ok := g.extend(st, dir)
			return next, nil, ok, nil
		}
		next, ok := g.move(st, dir, false)
		return next, nil, ok, nil
	}

	switch ev.Key {
	case KeyTab:
		dir := Right
		if ev.Shift {
			dir = Left
		}
		next, ok := g.move(st, dir, true)
		return next, nil, ok, nil
	case KeyEnter:
		dir := Down
		if ev.Shift {
			dir = Up
		}
		next, ok := g.move(st, dir, false)
		return next, nil, ok, nil
	case KeyBackspace, KeyDelete:
		next, ok := g.startEdit(st, focus, "", false)
		return next, nil, ok, nil
	case KeyF2:
		next, ok := g.startEdit(st, focus, g.currentText(focus), false)
		return next, nil, ok, nil
	case KeyRune:
		if ev.Ctrl && unicode.ToLower(ev.Rune) == 'u' {
			next, ok := g.startEdit(st, focus, g.currentText(focus), false)
			return next, nil, ok, nil
		}
		if ev.printable() {
			next, ok := g.startEdit(st, focus, string(ev.Rune), false)
			return next, nil, ok, nil
		}
	}
	return st, nil, false, nil
}

// afterCommit moves focus the way the committing key asks for.
func (g *Grid) afterCommit(st State, ev KeyEvent) (State, bool) {
	switch {
	case ev.Key == KeyTab && ev.Shift:
		return g.move(st, Left, true)
	case ev.Key == KeyTab:
		return g.move(st, Right, true)
	case ev.Shift:
		return g.move(st, Up, false)
	default:
		return g.move(st, Down, false)
	}
}

func (g *Grid) inBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < len(g.rows) && c.Column >= 0 && c.Column < len(g.columns)
}

// move focuses the anchor of the merged cell next to the focused one.
// Spans are crossed in one step. With wrap, moving past the last column
// continues on the next row (and before the first on the previous row).
func (g *Grid) move(st State, dir Direction, wrap bool) (State, bool) {
	if st.Focus == nil {
		return st, false
	}
	m := g.spans.Resolve(st.Focus.Row, st.Focus.Column)
	lastRow, lastCol := len(g.rows)-1, len(g.columns)-1

	var target Cell
	switch dir {
	case Up:
		if m.Anchor.Row == 0 {
			return st, false
		}
		target = Cell{m.Anchor.Row - 1, m.Anchor.Column}
	case Down:
		if m.LastRow >= lastRow {
			return st, false
		}
		target = Cell{m.LastRow + 1, m.Anchor.Column}
	case Left:
		switch {
		case m.Anchor.Column > 0:
			target = Cell{m.Anchor.Row, m.Anchor.Column - 1}
		case wrap && m.Anchor.Row > 0:
			target = Cell{m.Anchor.Row - 1, lastCol}
		default:
			return st, false
		}
	case Right:
		switch {
		case m.LastColumn < lastCol:
			target = Cell{m.Anchor.Row, m.LastColumn + 1}
		case wrap && m.Anchor.Row < lastRow:
			target = Cell{m.Anchor.Row + 1, 0}
		default:
			return st, false
		}
	}
	return g.focus(st, target), true
}

// focus moves focus to the anchor of the merged cell at target and
// selects it.
func (g *Grid) focus(st State, target Cell) State {
	m := g.spans.Resolve(target.Row, target.Column)
	anchor := m.Anchor
	st.Focus = &anchor
	st.Selection = Selection{m.Range()}
	return st
}

// extend applies Shift+Arrow to the most recent range.
func (g *Grid) extend(st State, dir Direction) (State, bool) {
	r, ok := st.Selection.Last()
	if !ok {
		r = CellRange(*st.Focus)
	}
	grown := ExtendRange(r, *st.Focus, dir, len(g.rows), len(g.columns))
	if ok && grown == r {
		return st, false
	}
	sel := make(Selection, 0, max(len(st.Selection), 1))
	if ok {
		sel = append(sel, st.Selection[:len(st.Selection)-1]...)
	}
	st.Selection = append(sel, grown)
	return st, true
}

// Focus focuses the anchor of the merged cell at cell. Any pending edit is
// left alone; hosts commit or cancel first.
func (g *Grid) Focus(st State, cell Cell, source any) State {
	if !g.inBounds(cell) {
		return st
	}
	next := g.focus(st, cell)
	g.notify(st, next, nil, source)
	return next
}

// PointerDown focuses the pressed cell's anchor and starts a drag from it.
// A pending edit elsewhere is committed first.
func (g *Grid) PointerDown(st State, drag Drag, ev PointerEvent) (State, Drag, error) {
	if !g.inBounds(ev.Cell) {
		return st, drag, nil
	}
	if ev.Double {
		next, _, err := g.DoubleActivate(st, ev.Cell, ev)
		if err != nil {
			return st, drag, err
		}
		return next, Drag{}, nil
	}
	next, edits, err := g.commit(st)
	if err != nil {
		return st, drag, err
	}
	next = g.focus(next, ev.Cell)
	g.notify(st, next, edits, ev)
	return next, drag.Begin(*next.Focus), nil
}

// PointerMove recomputes the drag selection from its origin to the cell
// under the pointer.
func (g *Grid) PointerMove(st State, drag Drag, ev PointerEvent) (State, Drag) {
	if !drag.Active || !g.inBounds(ev.Cell) {
		return st, drag
	}
	drag, r := drag.Move(ev.Cell)
	next := st
	next.Selection = Selection{r}
	g.notify(st, next, nil, ev)
	return next, drag
}

// PointerUp finalizes the drag selection and clears the drag origin.
func (g *Grid) PointerUp(st State, drag Drag) (State, Drag) {
	r, cleared, ok := drag.End()
	if !ok {
		return st, cleared
	}
	next := st
	next.Selection = Selection{r}
	g.notify(st, next, nil, nil)
	return next, cleared
}
