package grid

import "slices"

// Callbacks receive the engine's outputs. Every field is optional. source
// is the KeyEvent, PointerEvent or other value that triggered the change.
type Callbacks struct {
	OnFocusedCellChange func(cell *Cell, source any)
	OnSelectionChange   func(ranges Selection)
	OnEditCellChange    func(edit *EditCell)
	OnEdit              func(edits EditSet, columns []*Column)
	OnSort              func(next SortState, source any)
	OnFilter            func(field string, value any)
	OnResize            func(field string, width int, columns []ColumnDef)
}

// State is the interaction state owned by the caller.
type State struct {
	Focus     *Cell
	Edit      *EditCell
	Selection Selection
}

func sameCell(a, b *Cell) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func sameEdit(a, b *EditCell) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// notify fires the callbacks for whatever changed between prev and next.
func (g *Grid) notify(prev, next State, edits EditSet, source any) {
	if len(edits) > 0 && g.cb.OnEdit != nil {
		g.cb.OnEdit(edits, g.columns)
	}
	if !sameEdit(prev.Edit, next.Edit) && g.cb.OnEditCellChange != nil {
		g.cb.OnEditCellChange(next.Edit)
	}
	if !sameCell(prev.Focus, next.Focus) && g.cb.OnFocusedCellChange != nil {
		g.cb.OnFocusedCellChange(next.Focus, source)
	}
	if !slices.Equal(prev.Selection, next.Selection) && g.cb.OnSelectionChange != nil {
		g.cb.OnSelectionChange(next.Selection)
	}
}
