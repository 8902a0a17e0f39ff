package grid

import "maps"

// SortDirection is the label stored in a SortState.
type SortDirection string

const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

// SortState maps fields to their sort direction. The engine only cycles
// this metadata; sorting the rows is up to the caller.
type SortState map[string]SortDirection

// NextSort returns the state after activating field's header: unsorted,
// then ascending, then descending, then unsorted again. Without multi the
// other fields are dropped.
func NextSort(current SortState, field string, multi bool) SortState {
	next := SortState{}
	if multi {
		next = maps.Clone(current)
		if next == nil {
			next = SortState{}
		}
	}
	switch current[field] {
	case "":
		next[field] = SortAscending
	case SortAscending:
		next[field] = SortDescending
	default:
		delete(next, field)
	}
	return next
}

// headerContext is the context column flags are resolved against outside
// of any particular row.
func headerContext(c *Column) CellContext {
	return CellContext{RowIndex: -1, Column: c}
}

// Sort cycles field's sort direction and reports the new state through
// OnSort. It does nothing for unknown or unsortable columns.
func (g *Grid) Sort(current SortState, field string, multi bool, source any) (SortState, bool) {
	c, _, ok := g.ColumnByField(field)
	if !ok || !c.Sortable.Resolve(headerContext(c)) {
		return current, false
	}
	next := NextSort(current, field, multi)
	if g.cb.OnSort != nil {
		g.cb.OnSort(next, source)
	}
	return next, true
}

// Filter reports a filter value for a filterable column through OnFilter.
func (g *Grid) Filter(field string, value any) bool {
	c, _, ok := g.ColumnByField(field)
	if !ok || !c.Filterable.Resolve(headerContext(c)) {
		return false
	}
	if g.cb.OnFilter != nil {
		g.cb.OnFilter(field, value)
	}
	return true
}

// Resize returns the column tree with field resized and reports it
// through OnResize. The grid itself is unchanged; rebuild it from the
// returned tree.
func (g *Grid) Resize(field string, width int) ([]ColumnDef, bool) {
	c, _, ok := g.ColumnByField(field)
	if !ok || !c.Resizable.Resolve(headerContext(c)) {
		return g.tree, false
	}
	tree, applied, ok := ResizeColumn(g.tree, field, width)
	if !ok {
		return g.tree, false
	}
	if g.cb.OnResize != nil {
		g.cb.OnResize(field, applied, tree)
	}
	return tree, true
}
