package grid

// EditCell is the cell being edited and the editor's current text.
type EditCell struct {
	Cell
	Value              string
	SelectInitialValue bool
}

// EditSet collects parsed values keyed by row identity, then field.
type EditSet map[any]map[string]any

// Add records value for field of the row identified by key.
func (e EditSet) Add(key any, field string, value any) {
	fields, ok := e[key]
	if !ok {
		fields = make(map[string]any)
		e[key] = fields
	}
	fields[field] = value
}

// Len counts the edited cells.
func (e EditSet) Len() int {
	n := 0
	for _, fields := range e {
		n += len(fields)
	}
	return n
}

// editTarget returns the merged cell at cell when it is an editable
// anchor. Continuation cells defer to their anchor and are never targets.
func (g *Grid) editTarget(cell Cell) (MergedCell, bool) {
	m := g.spans.Resolve(cell.Row, cell.Column)
	if m.Column == nil || m.Anchor != cell || g.shadowed[cell.Column] {
		return m, false
	}
	row := g.rows[cell.Row]
	ctx := CellContext{Row: row, RowIndex: cell.Row, Value: row.Value(m.Column.Field), Column: m.Column}
	return m, m.Column.Editable.Resolve(ctx)
}

// IsEditable reports whether the cell at (row, col) accepts edits.
func (g *Grid) IsEditable(row, col int) bool {
	_, ok := g.editTarget(Cell{row, col})
	return ok
}

// parseCell runs the column's parser over text for an edit target.
func (g *Grid) parseCell(m MergedCell, text string) (any, error) {
	if m.Column.ValueParser == nil {
		return text, nil
	}
	row := g.rows[m.Anchor.Row]
	ctx := CellContext{Row: row, RowIndex: m.Anchor.Row, Value: row.Value(m.Column.Field), Column: m.Column}
	v, err := m.Column.ValueParser(ctx, text)
	if err != nil {
		return nil, errParse(m.Anchor.Row, m.Column.Field, err)
	}
	return v, nil
}

// startEdit enters editing at cell. It is a no-op when cell is already
// being edited or is not editable.
func (g *Grid) startEdit(st State, cell Cell, value string, selectInitial bool) (State, bool) {
	if st.Edit != nil && st.Edit.Cell == cell {
		return st, false
	}
	m, ok := g.editTarget(cell)
	if !ok {
		return st, false
	}
	focus := cell
	st.Focus = &focus
	st.Selection = Selection{m.Range()}
	st.Edit = &EditCell{Cell: cell, Value: value, SelectInitialValue: selectInitial}
	return st, true
}

// currentText is the editable text of a cell's raw value.
func (g *Grid) currentText(cell Cell) string {
	m := g.spans.Resolve(cell.Row, cell.Column)
	if m.Column == nil {
		return ""
	}
	return DisplayText(g.rows[m.Anchor.Row].Value(m.Column.Field))
}

// commit parses the edit cell's value and clears the edit state.
func (g *Grid) commit(st State) (State, EditSet, error) {
	if st.Edit == nil {
		return st, nil, nil
	}
	m, ok := g.editTarget(st.Edit.Cell)
	if !ok {
		g.log.Debugf("dropping edit of %s: no longer editable", st.Edit.Cell)
		st.Edit = nil
		return st, nil, nil
	}
	v, err := g.parseCell(m, st.Edit.Value)
	if err != nil {
		return st, nil, err
	}
	edits := EditSet{}
	edits.Add(g.RowKey(m.Anchor.Row), m.Column.Field, v)
	st.Edit = nil
	return st, edits, nil
}

// StartEdit enters editing at cell, keeping its current value.
func (g *Grid) StartEdit(st State, cell Cell) (State, bool) {
	next, ok := g.startEdit(st, cell, g.currentText(cell), false)
	if ok {
		g.notify(st, next, nil, nil)
	}
	return next, ok
}

// SetEditValue replaces the editor text of the current edit cell.
func (g *Grid) SetEditValue(st State, value string) State {
	if st.Edit == nil {
		return st
	}
	edit := *st.Edit
	edit.Value = value
	next := st
	next.Edit = &edit
	g.notify(st, next, nil, nil)
	return next
}

// Commit parses and emits the pending edit, then clears the edit state.
// Parser errors are returned unchanged in meaning and leave st as is.
func (g *Grid) Commit(st State) (State, error) {
	next, edits, err := g.commit(st)
	if err != nil {
		return st, err
	}
	g.notify(st, next, edits, nil)
	return next, nil
}

// Cancel discards the pending edit without emitting it.
func (g *Grid) Cancel(st State) State {
	if st.Edit == nil {
		return st
	}
	next := st
	next.Edit = nil
	g.notify(st, next, nil, nil)
	return next
}

// DoubleActivate enters editing at the anchor of the activated cell with
// its current value selected. A pending edit in another cell is committed
// first; a parser error from that commit leaves st unchanged.
func (g *Grid) DoubleActivate(st State, cell Cell, source any) (State, bool, error) {
	m := g.spans.Resolve(cell.Row, cell.Column)
	if m.Column == nil || (st.Edit != nil && st.Edit.Cell == m.Anchor) {
		return st, false, nil
	}
	committed, edits, err := g.commit(st)
	if err != nil {
		return st, false, err
	}
	next, ok := g.startEdit(committed, m.Anchor, g.currentText(m.Anchor), true)
	if !ok && st.Edit == nil {
		return st, false, nil
	}
	g.notify(st, next, edits, source)
	return next, ok, nil
}
