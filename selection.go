package grid

import "fmt"

// Cell is a 0-based logical coordinate into the rows and ordered leaf
// columns.
type Cell struct {
	Row    int
	Column int
}

func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Column) }

// Range is an immutable rectangle of cells with inclusive bounds,
// always normalized so from <= to on both axes.
type Range struct {
	fromRow, fromColumn int
	toRow, toColumn     int
}

// NewRange builds a normalized range from two corners given in any order.
func NewRange(r0, c0, r1, c1 int) Range {
	return Range{
		fromRow:    min(r0, r1),
		fromColumn: min(c0, c1),
		toRow:      max(r0, r1),
		toColumn:   max(c0, c1),
	}
}

// CellRange returns the single-cell range at c.
func CellRange(c Cell) Range { return NewRange(c.Row, c.Column, c.Row, c.Column) }

// SpanRange returns a range spanning two cells.
func SpanRange(a, b Cell) Range { return NewRange(a.Row, a.Column, b.Row, b.Column) }

func (r Range) FromRow() int    { return r.fromRow }
func (r Range) FromColumn() int { return r.fromColumn }
func (r Range) ToRow() int      { return r.toRow }
func (r Range) ToColumn() int   { return r.toColumn }

// From returns the top-left cell.
func (r Range) From() Cell { return Cell{r.fromRow, r.fromColumn} }

// To returns the bottom-right cell.
func (r Range) To() Cell { return Cell{r.toRow, r.toColumn} }

// Contains reports whether (row, col) lies inside the range.
func (r Range) Contains(row, col int) bool {
	return row >= r.fromRow && row <= r.toRow && col >= r.fromColumn && col <= r.toColumn
}

// Equals reports whether both ranges cover the same cells.
func (r Range) Equals(o Range) bool { return r == o }

// Merge returns the bounding range of r and o.
func (r Range) Merge(o Range) Range {
	return Range{
		fromRow:    min(r.fromRow, o.fromRow),
		fromColumn: min(r.fromColumn, o.fromColumn),
		toRow:      max(r.toRow, o.toRow),
		toColumn:   max(r.toColumn, o.toColumn),
	}
}

// Shape returns the number of rows and columns covered.
func (r Range) Shape() (rows, cols int) {
	return r.toRow - r.fromRow + 1, r.toColumn - r.fromColumn + 1
}

// ContainsMultipleCells reports whether the range is larger than one cell.
func (r Range) ContainsMultipleCells() bool {
	return r.fromRow != r.toRow || r.fromColumn != r.toColumn
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d..%d,%d]", r.fromRow, r.fromColumn, r.toRow, r.toColumn)
}

// Selection is a list of ranges. The default interaction produces one
// range per gesture, but several disjoint ranges are representable.
type Selection []Range

// Contains reports whether any range contains (row, col).
func (s Selection) Contains(row, col int) bool {
	for _, r := range s {
		if r.Contains(row, col) {
			return true
		}
	}
	return false
}

// Bounds returns the merge of every range; ok is false for an empty selection.
func (s Selection) Bounds() (Range, bool) {
	if len(s) == 0 {
		return Range{}, false
	}
	b := s[0]
	for _, r := range s[1:] {
		b = b.Merge(r)
	}
	return b, true
}

// Last returns the most recent range.
func (s Selection) Last() (Range, bool) {
	if len(s) == 0 {
		return Range{}, false
	}
	return s[len(s)-1], true
}

// Direction is a keyboard movement direction.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// ExtendRange grows or shrinks r by one step the way Shift+Arrow does.
// The focused cell is the anchor; the edge away from it moves. When the
// range has collapsed onto the focused row (or column) the edge in the
// direction of travel moves. Edges are clamped to the data bounds.
func ExtendRange(r Range, focus Cell, dir Direction, rowCount, colCount int) Range {
	fr, fc, tr, tc := r.fromRow, r.fromColumn, r.toRow, r.toColumn
	switch dir {
	case Up:
		if tr > focus.Row {
			tr--
		} else {
			fr = max(fr-1, 0)
		}
	case Down:
		if fr < focus.Row {
			fr++
		} else {
			tr = min(tr+1, rowCount-1)
		}
	case Left:
		if tc > focus.Column {
			tc--
		} else {
			fc = max(fc-1, 0)
		}
	case Right:
		if fc < focus.Column {
			fc++
		} else {
			tc = min(tc+1, colCount-1)
		}
	}
	return NewRange(fr, fc, tr, tc)
}
