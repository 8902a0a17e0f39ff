package grid

// Viewport is the caller's scroll position and visible area, in the same
// units as widths and row heights.
type Viewport struct {
	ScrollTop  int
	ScrollLeft int
	Width      int
	Height     int
}

// ColumnGroup is the slice of one pin region materialized by a View.
// Window holds absolute column indices.
type ColumnGroup struct {
	Pin     Pin
	Columns []*Column
	Window  Window
	Offset  int
}

// VisibleCell is a merged cell to render. Anchors above or left of the
// window appear when part of their span is visible.
type VisibleCell struct {
	MergedCell
	Position Position
	Value    any
	Text     string
}

// View is everything a renderer needs for one frame.
type View struct {
	Rows        Window
	Groups      [3]ColumnGroup
	Header      [][]HeaderCell
	Cells       []VisibleCell
	CanvasWidth int
	AutoCanvas  bool
}

// Columns returns the absolute indices of every visible column in order.
func (v View) Columns() []int {
	var out []int
	for _, grp := range v.Groups {
		for c := grp.Window.Start; c < grp.Window.End; c++ {
			out = append(out, c)
		}
	}
	return out
}

// View computes the visible rows, the visible columns of each pin region,
// the header cells over them and the merged cells to render. It is a pure
// function of the grid and vp.
func (g *Grid) View(vp Viewport) View {
	cfg := g.cfg
	bodyHeight := vp.Height - g.positions.Depth()*cfg.HeaderRowHeight
	v := View{Rows: RowWindow(cfg, vp.ScrollTop, max(bodyHeight, 0), len(g.rows))}

	v.CanvasWidth, v.AutoCanvas = CanvasWidth(g.columns, cfg.ColumnGap, cfg.DefaultWidth)
	v.AutoCanvas = !v.AutoCanvas

	start, middle, end := g.groups[0], g.groups[1], g.groups[2]
	startW := PinnedOffset(g.columns[start.Start:start.End], cfg.ColumnGap, cfg.DefaultWidth)
	endW := PinnedOffset(g.columns[end.Start:end.End], cfg.ColumnGap, cfg.DefaultWidth)
	scrollW := vp.Width - startW - endW
	if startW > 0 {
		scrollW -= cfg.ColumnGap
	}
	if endW > 0 {
		scrollW -= cfg.ColumnGap
	}

	scrollable := g.columns[middle.Start:middle.End]
	rel := ColumnWindow(
		Boundaries(scrollable, cfg.ColumnGap, cfg.DefaultWidth),
		vp.ScrollLeft, max(scrollW, 0), cfg.OverscanColumns, cfg.VirtualizeColumns,
	)

	seen := make(map[Cell]bool)
	for i, pin := range [3]Pin{PinStart, PinNone, PinEnd} {
		grp := g.groups[i]
		cols := g.columns[grp.Start:grp.End]
		win := full(len(cols))
		if pin == PinNone {
			win = rel
		}
		v.Groups[i] = ColumnGroup{
			Pin:     pin,
			Columns: cols,
			Window:  Window{grp.Start + win.Start, grp.Start + win.End},
			Offset:  grp.Start,
		}
		v.Cells = append(v.Cells, g.cellGroup(cols, grp.Start, win, v.Rows, seen)...)
	}

	v.Header = g.visibleHeader(v.Groups)
	return v
}

// cellGroup resolves the merged cells of one pin region. offset is the
// absolute index of cols[0]; win is relative to cols.
func (g *Grid) cellGroup(cols []*Column, offset int, win, rows Window, seen map[Cell]bool) []VisibleCell {
	var out []VisibleCell
	for r := rows.Start; r < rows.End; r++ {
		for i := win.Start; i < win.End; i++ {
			m := g.spans.Resolve(r, offset+i)
			if seen[m.Anchor] {
				continue
			}
			seen[m.Anchor] = true
			if m.Column == nil {
				g.log.Errorf("no column for positioned cell %s", m.Anchor)
				continue
			}
			if g.shadowed[m.Anchor.Column] {
				continue
			}
			pos, ok := g.Position(g.columns[m.Anchor.Column])
			if !ok {
				continue
			}
			val := renderedValue(g.rows[m.Anchor.Row], m.Anchor.Row, m.Column)
			out = append(out, VisibleCell{MergedCell: m, Position: pos, Value: val, Text: DisplayText(val)})
		}
	}
	return out
}

// visibleHeader keeps the header cells overlapping a visible column.
func (g *Grid) visibleHeader(groups [3]ColumnGroup) [][]HeaderCell {
	all := g.positions.HeaderRows()
	out := make([][]HeaderCell, len(all))
	for level, row := range all {
		for _, hc := range row {
			for _, grp := range groups {
				if hc.Position.ColumnIndex < grp.Window.End && hc.Position.ColumnIndexEnd > grp.Window.Start {
					out[level] = append(out[level], hc)
					break
				}
			}
		}
	}
	return out
}
