package grid

import "reflect"

// ColumnSpan merges the leaf columns [From, To] of one row into a single
// cell anchored at From. Field names the value shown in the merged cell;
// Overrides, when set, is laid over the column definition used for it.
type ColumnSpan struct {
	Field     string
	From      int
	To        int
	Overrides *ColumnDef
}

// Boundary selects which edge of a column span ColumnIndex returns.
type Boundary int

const (
	SpanStart Boundary = iota
	SpanEnd
)

// MergedCell is the full extent of the visual cell covering a coordinate.
// LastRow and LastColumn are inclusive. Column is the definition that
// governs the cell, synthesized when a column span shows a foreign field.
type MergedCell struct {
	Anchor     Cell
	LastRow    int
	LastColumn int
	Column     *Column
}

// Range returns the cells covered by m.
func (m MergedCell) Range() Range {
	return NewRange(m.Anchor.Row, m.Anchor.Column, m.LastRow, m.LastColumn)
}

// RowSpan is the number of rows covered.
func (m MergedCell) RowSpan() int { return m.LastRow - m.Anchor.Row + 1 }

// ColumnSpan is the number of columns covered.
func (m MergedCell) ColumnSpan() int { return m.LastColumn - m.Anchor.Column + 1 }

// SpanResolver answers "which merged cell is at (row, col)" for a dataset
// and its ordered leaf columns. Rendering, focus, navigation and editing
// all go through it so they agree on cell identity.
type SpanResolver struct {
	rows     []Row
	cols     []*Column
	key      string
	defaults Defaults

	// groupEnd[i] is the exclusive end index of column i's pin group.
	groupEnd []int
}

// NewSpanResolver builds a resolver. key is the row field holding
// []ColumnSpan declarations; defaults back the columns synthesized for
// spans of foreign fields.
func NewSpanResolver(rows []Row, cols []*Column, key string, defaults Defaults) *SpanResolver {
	s := &SpanResolver{rows: rows, cols: cols, key: key, defaults: defaults}
	s.groupEnd = make([]int, len(cols))
	end := len(cols)
	for i := len(cols) - 1; i >= 0; i-- {
		if i < len(cols)-1 && cols[i].Pinned != cols[i+1].Pinned {
			end = i + 1
		}
		s.groupEnd[i] = end
	}
	return s
}

func (s *SpanResolver) valid(r, c int) bool {
	return r >= 0 && r < len(s.rows) && c >= 0 && c < len(s.cols)
}

// ColumnSpans returns the column-span declarations of row r.
func (s *SpanResolver) ColumnSpans(r int) []ColumnSpan {
	if r < 0 || r >= len(s.rows) || s.key == "" {
		return nil
	}
	spans, _ := s.rows[r][s.key].([]ColumnSpan)
	return spans
}

// ColumnSpanAt returns the span of row r covering column c. Spans are
// truncated at the pin boundary of their anchor; malformed spans are
// ignored.
func (s *SpanResolver) ColumnSpanAt(r, c int) (ColumnSpan, bool) {
	if !s.valid(r, c) {
		return ColumnSpan{}, false
	}
	for _, sp := range s.ColumnSpans(r) {
		if sp.From < 0 || sp.From >= len(s.cols) || sp.To < sp.From {
			continue
		}
		sp.To = min(sp.To, s.groupEnd[sp.From]-1)
		if c >= sp.From && c <= sp.To {
			return sp, true
		}
	}
	return ColumnSpan{}, false
}

// ColumnIndex returns the start or end column of the span covering (r, c),
// or c when no span covers it.
func (s *SpanResolver) ColumnIndex(c, r int, b Boundary) int {
	sp, ok := s.ColumnSpanAt(r, c)
	if !ok {
		return c
	}
	if b == SpanEnd {
		return sp.To
	}
	return sp.From
}

// SpanColumn synthesizes the definition governing a column-spanned cell.
// A span over the column's own field reuses the column; a foreign field
// is laid over the leaf defaults.
func (s *SpanResolver) SpanColumn(sp ColumnSpan, col *Column) *Column {
	if (sp.Field == "" || sp.Field == col.Field) && sp.Overrides == nil {
		return col
	}
	def := col.ColumnDef
	if sp.Field != "" && sp.Field != col.Field {
		def = overlay(s.defaults.Leaf, ColumnDef{ID: sp.Field, Field: sp.Field})
	}
	if sp.Overrides != nil {
		def = overlay(def, *sp.Overrides)
	}
	return &Column{ColumnDef: def, Ancestors: col.Ancestors, subIndex: col.subIndex}
}

// effective returns the column governing (r, c) and its anchor column.
func (s *SpanResolver) effective(r, c int) (*Column, int) {
	if sp, ok := s.ColumnSpanAt(r, c); ok {
		return s.SpanColumn(sp, s.cols[sp.From]), sp.From
	}
	return s.cols[c], c
}

// sameSpan reports whether rows a and b have identical column-span
// membership at column c.
func (s *SpanResolver) sameSpan(a, b, c int) bool {
	sa, oka := s.ColumnSpanAt(a, c)
	sb, okb := s.ColumnSpanAt(b, c)
	if oka != okb {
		return false
	}
	return !oka || (sa.From == sb.From && sa.To == sb.To && sa.Field == sb.Field)
}

// continues reports whether row r is merged into row r-1 at column c.
// A change of column-span membership between the two rows stops the
// row span.
func (s *SpanResolver) continues(r, c int) bool {
	if r <= 0 || !s.valid(r, c) || !s.sameSpan(r-1, r, c) {
		return false
	}
	col, _ := s.effective(r, c)
	ctx := CellContext{Row: s.rows[r], RowIndex: r, Value: s.rows[r].Value(col.Field), Column: col}
	if !col.RowSpanning.Resolve(ctx) {
		return false
	}
	prevCol, _ := s.effective(r-1, c)
	a := renderedValue(s.rows[r-1], r-1, prevCol)
	b := renderedValue(s.rows[r], r, col)
	if col.RowSpanCompare != nil {
		return col.RowSpanCompare(a, b)
	}
	return reflect.DeepEqual(a, b)
}

// RowIndex walks up from r to the top row of the vertical span at c.
// A column-span continuation defers to its anchor column.
func (s *SpanResolver) RowIndex(r, c int) int {
	if !s.valid(r, c) {
		return r
	}
	c = s.ColumnIndex(c, r, SpanStart)
	for s.continues(r, c) {
		r--
	}
	return r
}

// LastRowIndex walks down from r to the bottom row of the vertical span at c.
func (s *SpanResolver) LastRowIndex(r, c int) int {
	if !s.valid(r, c) {
		return r
	}
	c = s.ColumnIndex(c, r, SpanStart)
	for r+1 < len(s.rows) && s.continues(r+1, c) {
		r++
	}
	return r
}

// Resolve returns the merged cell covering (r, c). Coordinates outside
// the data yield a one-cell result with a nil Column.
func (s *SpanResolver) Resolve(r, c int) MergedCell {
	if !s.valid(r, c) {
		return MergedCell{Anchor: Cell{r, c}, LastRow: r, LastColumn: c}
	}
	ac := s.ColumnIndex(c, r, SpanStart)
	ar := s.RowIndex(r, ac)
	col, _ := s.effective(ar, ac)
	return MergedCell{
		Anchor:     Cell{ar, ac},
		LastRow:    s.LastRowIndex(ar, ac),
		LastColumn: s.ColumnIndex(ac, ar, SpanEnd),
		Column:     col,
	}
}

// IsContinuation reports whether (r, c) is covered by a merged cell
// anchored elsewhere.
func (s *SpanResolver) IsContinuation(r, c int) bool {
	return s.Resolve(r, c).Anchor != Cell{r, c}
}
