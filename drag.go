package grid

// Drag tracks a pointer drag selection. It is a value owned by the caller.
// Every move recomputes the range from the fixed origin, so dropped or
// reordered pointer events cannot corrupt the selection.
type Drag struct {
	Active  bool
	Origin  Cell
	Current Cell
}

// Begin starts a drag at cell.
func (d Drag) Begin(cell Cell) Drag {
	return Drag{Active: true, Origin: cell, Current: cell}
}

// Move returns the drag with its pointer at cell and the range it spans.
// An inactive drag stays inactive and yields the single-cell range.
func (d Drag) Move(cell Cell) (Drag, Range) {
	if !d.Active {
		return d, CellRange(cell)
	}
	d.Current = cell
	return d, SpanRange(d.Origin, cell)
}

// End finalizes the drag. Releasing the pointer and losing capture both
// end up here; ok is false if no drag was active.
func (d Drag) End() (Range, Drag, bool) {
	if !d.Active {
		return Range{}, Drag{}, false
	}
	return SpanRange(d.Origin, d.Current), Drag{}, true
}
