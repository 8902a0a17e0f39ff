package grid

import "strings"

// CopyMatrix returns the values of sel within its bounding range. Cells of
// the bounding range not covered by any selected range stay nil.
// Rendered values are used unless the renderer yields something other
// than a primitive, in which case the raw value is copied.
func (g *Grid) CopyMatrix(sel Selection) [][]any {
	bounds, ok := sel.Bounds()
	if !ok || len(g.rows) == 0 || len(g.columns) == 0 {
		return nil
	}
	bounds = NewRange(
		clamp(bounds.FromRow(), 0, len(g.rows)-1), clamp(bounds.FromColumn(), 0, len(g.columns)-1),
		clamp(bounds.ToRow(), 0, len(g.rows)-1), clamp(bounds.ToColumn(), 0, len(g.columns)-1),
	)
	rows, cols := bounds.Shape()
	matrix := make([][]any, rows)
	for i := range matrix {
		matrix[i] = make([]any, cols)
		r := bounds.FromRow() + i
		for j := range matrix[i] {
			c := bounds.FromColumn() + j
			if !sel.Contains(r, c) {
				continue
			}
			col := g.columns[c]
			v := renderedValue(g.rows[r], r, col)
			if !isPrimitive(v) {
				v = g.rows[r].Value(col.Field)
			}
			matrix[i][j] = v
		}
	}
	return matrix
}

// SerializeTSV joins cells with tabs and rows with newlines. nil cells
// become empty strings. Tabs and newlines inside values are not escaped.
func SerializeTSV(matrix [][]any) string {
	var b strings.Builder
	for i, row := range matrix {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, v := range row {
			if j > 0 {
				b.WriteByte('\t')
			}
			b.WriteString(DisplayText(v))
		}
	}
	return b.String()
}

// ParseTSV splits clipboard text into rows and cells. CRLF line endings
// and a single trailing newline are tolerated.
func ParseTSV(text string) [][]string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	out := make([][]string, len(lines))
	for i, line := range lines {
		out[i] = strings.Split(line, "\t")
	}
	return out
}

// Copy serializes the selection, or the focused cell when nothing is
// selected.
func (g *Grid) Copy(st State) string {
	sel := st.Selection
	if len(sel) == 0 && st.Focus != nil {
		sel = Selection{CellRange(*st.Focus)}
	}
	return SerializeTSV(g.CopyMatrix(sel))
}

// Paste turns clipboard text into edits and reports them through OnEdit.
//
// A single value pasted over a multi-cell selection fills every editable
// anchor cell of the selection; an empty single value does nothing.
// Anything else is pasted as a block anchored at the focused cell,
// truncated at the data edges. Read-only and span-continuation cells are
// skipped in both modes.
func (g *Grid) Paste(st State, text string) (EditSet, error) {
	edits, err := g.pasteEdits(st, ParseTSV(text))
	if err != nil {
		return nil, err
	}
	if len(edits) > 0 {
		g.notify(st, st, edits, nil)
	}
	return edits, nil
}

func (g *Grid) pasteEdits(st State, matrix [][]string) (EditSet, error) {
	edits := EditSet{}
	if len(matrix) == 0 {
		return edits, nil
	}

	bounds, hasSel := st.Selection.Bounds()
	if len(matrix) == 1 && len(matrix[0]) == 1 && hasSel && bounds.ContainsMultipleCells() {
		value := matrix[0][0]
		if value == "" {
			return edits, nil
		}
		for r := bounds.FromRow(); r <= bounds.ToRow(); r++ {
			for c := bounds.FromColumn(); c <= bounds.ToColumn(); c++ {
				if !st.Selection.Contains(r, c) {
					continue
				}
				if err := g.pasteCell(edits, Cell{r, c}, value); err != nil {
					return nil, err
				}
			}
		}
		return edits, nil
	}

	var anchor Cell
	switch {
	case st.Focus != nil:
		anchor = *st.Focus
	case hasSel:
		anchor = bounds.From()
	default:
		return edits, nil
	}
	for i, line := range matrix {
		r := anchor.Row + i
		if r >= len(g.rows) {
			break
		}
		for j, value := range line {
			c := anchor.Column + j
			if c >= len(g.columns) {
				break
			}
			if err := g.pasteCell(edits, Cell{r, c}, value); err != nil {
				return nil, err
			}
		}
	}
	return edits, nil
}

func (g *Grid) pasteCell(edits EditSet, cell Cell, text string) error {
	if !g.inBounds(cell) {
		return nil
	}
	m, ok := g.editTarget(cell)
	if !ok {
		return nil
	}
	v, err := g.parseCell(m, text)
	if err != nil {
		return err
	}
	edits.Add(g.RowKey(cell.Row), m.Column.Field, v)
	return nil
}
