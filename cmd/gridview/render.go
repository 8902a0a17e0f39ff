package main

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	grid "github.com/etsisk/cantal-sub000"
)

type styles struct {
	header   lipgloss.Style
	cell     lipgloss.Style
	pinned   lipgloss.Style
	selected lipgloss.Style
	focus    lipgloss.Style
	editing  lipgloss.Style
	status   lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")).Background(lipgloss.Color("238")),
		cell:     lipgloss.NewStyle(),
		pinned:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		selected: lipgloss.NewStyle().Background(lipgloss.Color("24")),
		focus:    lipgloss.NewStyle().Reverse(true),
		editing:  lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("229")),
		status:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// regions splits the terminal width into the start pins, the scrolling
// middle and the end pins.
type regions struct {
	startW, endW     int
	scrollX, scrollW int
}

func (m model) regions() regions {
	cfg := m.grid.Config()
	cols := m.grid.Columns()
	s, e := m.grid.PinGroup(grid.PinStart), m.grid.PinGroup(grid.PinEnd)
	r := regions{
		startW: grid.PinnedOffset(cols[s.Start:s.End], cfg.ColumnGap, cfg.DefaultWidth),
		endW:   grid.PinnedOffset(cols[e.Start:e.End], cfg.ColumnGap, cfg.DefaultWidth),
	}
	r.scrollW = m.vp.Width - r.startW - r.endW
	if r.startW > 0 {
		r.scrollW -= cfg.ColumnGap
		r.scrollX = r.startW + cfg.ColumnGap
	}
	if r.endW > 0 {
		r.scrollW -= cfg.ColumnGap
	}
	r.scrollW = max(r.scrollW, 0)
	return r
}

func (m model) View() string {
	if m.vp.Width <= 0 || m.grid == nil {
		return ""
	}
	v := m.grid.View(m.vp)
	cfg := m.grid.Config()

	var b strings.Builder
	for level := range m.grid.Positions().Depth() {
		b.WriteString(m.line(v, func(grp grid.ColumnGroup) string { return m.headerStrip(v, grp, level) }))
		b.WriteByte('\n')
	}

	cells := make(map[grid.Cell]grid.VisibleCell, len(v.Cells))
	for _, c := range v.Cells {
		cells[c.Anchor] = c
	}
	stride := cfg.RowHeight + cfg.RowGap
	body := m.bodyHeight()
	top := -1
	for r := v.Rows.Start; r < v.Rows.End; r++ {
		y := r*stride - m.vp.ScrollTop
		if y < 0 || y >= body {
			continue
		}
		if top < 0 {
			top = r
		} else {
			b.WriteString(strings.Repeat("\n", cfg.RowGap))
		}
		b.WriteString(m.line(v, func(grp grid.ColumnGroup) string { return m.rowStrip(grp, cells, r, top) }))
		b.WriteByte('\n')
	}
	b.WriteString(m.statusLine())
	return b.String()
}

// line joins the three pin strips of one terminal line. The middle strip
// is cut to the scroll position.
func (m model) line(v grid.View, strip func(grid.ColumnGroup) string) string {
	r := m.regions()
	gap := strings.Repeat(" ", m.grid.Config().ColumnGap)
	var b strings.Builder
	if r.startW > 0 {
		b.WriteString(strip(v.Groups[0]))
		b.WriteString(gap)
	}
	left := max(m.vp.ScrollLeft-m.stripOrigin(v.Groups[1]), 0)
	b.WriteString(pad(ansi.Cut(strip(v.Groups[1]), left, left+r.scrollW), r.scrollW))
	if r.endW > 0 {
		b.WriteString(gap)
		b.WriteString(strip(v.Groups[2]))
	}
	return b.String()
}

// stripOrigin is the offset of the first windowed column inside its
// region.
func (m model) stripOrigin(grp grid.ColumnGroup) int {
	rel := grp.Window.Start - grp.Offset
	if rel <= 0 {
		return 0
	}
	cfg := m.grid.Config()
	return grid.Boundaries(grp.Columns, cfg.ColumnGap, cfg.DefaultWidth)[rel-1] + cfg.ColumnGap
}

func (m model) spanWidth(from, to int) int {
	cfg := m.grid.Config()
	cols := m.grid.Columns()
	w := cfg.ColumnGap * (to - from)
	for c := from; c <= to; c++ {
		px, _ := grid.WidthOf(cols[c], cfg.DefaultWidth)
		w += px
	}
	return w
}

func (m model) headerStrip(v grid.View, grp grid.ColumnGroup, level int) string {
	var segs []string
	for c := grp.Window.Start; c < grp.Window.End; c++ {
		hc, ok := headerAt(v, level, c)
		if !ok {
			segs = append(segs, m.styles.header.Render(pad("", m.spanWidth(c, c))))
			continue
		}
		if hc.Position.ColumnIndex < c && c > grp.Window.Start {
			continue
		}
		last := min(hc.Position.ColumnIndexEnd, grp.Window.End) - 1
		text := ""
		if hc.Position.Level == level {
			text = m.label(hc.Column)
		}
		w := m.spanWidth(c, last)
		segs = append(segs, m.styles.header.Render(pad(ansi.Truncate(text, w, "…"), w)))
	}
	return strings.Join(segs, strings.Repeat(" ", m.grid.Config().ColumnGap))
}

// headerAt finds the deepest header cell at or above level covering c.
func headerAt(v grid.View, level, c int) (grid.HeaderCell, bool) {
	for l := min(level, len(v.Header)-1); l >= 0; l-- {
		for _, hc := range v.Header[l] {
			if c >= hc.Position.ColumnIndex && c < hc.Position.ColumnIndexEnd {
				return hc, true
			}
		}
	}
	return grid.HeaderCell{}, false
}

func (m model) label(c *grid.Column) string {
	text := cmp.Or(c.Label, c.Field)
	if !c.IsLeaf() {
		return text
	}
	switch m.sort[c.Field] {
	case grid.SortAscending:
		text += " ▲"
	case grid.SortDescending:
		text += " ▼"
	}
	return text
}

func (m model) rowStrip(grp grid.ColumnGroup, cells map[grid.Cell]grid.VisibleCell, r, top int) string {
	var segs []string
	for c := grp.Window.Start; c < grp.Window.End; c++ {
		mc := m.grid.Resolve(r, c)
		if mc.Anchor.Column < c && c > grp.Window.Start {
			continue
		}
		last := min(mc.LastColumn, grp.Window.End-1)
		w := m.spanWidth(c, last)

		text := ""
		if vc, ok := cells[mc.Anchor]; ok && (mc.Anchor.Row == r || r == top) {
			text = vc.Text
		}
		style := m.cellStyle(mc, grp.Pin)
		if edit := m.st.Edit; edit != nil && edit.Cell == mc.Anchor {
			text = edit.Value + "▏"
			style = m.styles.editing
		}
		segs = append(segs, style.Render(pad(ansi.Truncate(text, w, "…"), w)))
	}
	return strings.Join(segs, strings.Repeat(" ", m.grid.Config().ColumnGap))
}

func (m model) cellStyle(mc grid.MergedCell, pin grid.Pin) lipgloss.Style {
	switch {
	case m.st.Focus != nil && m.grid.Resolve(m.st.Focus.Row, m.st.Focus.Column).Anchor == mc.Anchor:
		return m.styles.focus
	case m.st.Selection.Contains(mc.Anchor.Row, mc.Anchor.Column):
		return m.styles.selected
	case pin != grid.PinNone:
		return m.styles.pinned
	}
	return m.styles.cell
}

func (m model) statusLine() string {
	var parts []string
	if f := m.st.Focus; f != nil {
		parts = append(parts, fmt.Sprintf("%d/%d", f.Row+1, m.grid.RowCount()))
		if bounds, ok := m.st.Selection.Bounds(); ok && bounds.ContainsMultipleCells() {
			rows, cols := bounds.Shape()
			parts = append(parts, fmt.Sprintf("%dx%d", rows, cols))
		}
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	for _, b := range keys.ShortHelp() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return m.styles.status.Render(ansi.Truncate(strings.Join(parts, "  "), m.vp.Width, "…"))
}

// pad truncates or right-pads s to exactly w cells.
func pad(s string, w int) string {
	s = ansi.Truncate(s, w, "")
	return s + strings.Repeat(" ", max(w-ansi.StringWidth(s), 0))
}
