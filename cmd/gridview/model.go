package main

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	grid "github.com/etsisk/cantal-sub000"
)

const doubleClick = 400 * time.Millisecond

// editSink collects what the grid reports through OnEdit until the model
// applies it to the rows.
type editSink struct {
	pending []grid.EditSet
}

type pasteMsg struct {
	text string
	err  error
}

func readClipboard() tea.Msg {
	text, err := clipboard.ReadAll()
	return pasteMsg{text: text, err: err}
}

type model struct {
	tree     []grid.ColumnDef
	rows     []grid.Row
	original []grid.Row
	opts     []grid.Option
	grid     *grid.Grid
	sink     *editSink

	st   grid.State
	drag grid.Drag
	sort grid.SortState
	vp   grid.Viewport

	lastClick time.Time
	lastCell  grid.Cell

	status string
	styles styles
}

func newModel(tree []grid.ColumnDef, rows []grid.Row, opts []grid.Option) (model, error) {
	m := model{
		tree:     tree,
		rows:     rows,
		original: slices.Clone(rows),
		opts:     opts,
		sink:     &editSink{},
		styles:   defaultStyles(),
	}
	if err := m.rebuild(); err != nil {
		return m, err
	}
	if len(rows) > 0 && m.grid.ColumnCount() > 0 {
		m.st = m.grid.Focus(grid.State{}, grid.Cell{}, nil)
	}
	return m, nil
}

func (m *model) rebuild() error {
	sink := m.sink
	opts := append(slices.Clone(m.opts), grid.WithCallbacks(grid.Callbacks{
		OnEdit: func(e grid.EditSet, _ []*grid.Column) { sink.pending = append(sink.pending, e) },
	}))
	g, err := grid.New(m.tree, m.rows, opts...)
	if err != nil {
		return err
	}
	m.grid = g
	return nil
}

// applyEdits writes pending edits into the rows and rebuilds the grid so
// spans follow the new values.
func (m *model) applyEdits() {
	if len(m.sink.pending) == 0 {
		return
	}
	n := 0
	for _, edits := range m.sink.pending {
		for rowKey, fields := range edits {
			row, ok := m.rowFor(rowKey)
			if !ok {
				continue
			}
			for field, v := range fields {
				row[field] = v
				n++
			}
		}
	}
	m.sink.pending = m.sink.pending[:0]
	if err := m.rebuild(); err != nil {
		m.status = err.Error()
		return
	}
	m.status = fmt.Sprintf("%d cell(s) updated", n)
}

func (m *model) rowFor(rowKey any) (grid.Row, bool) {
	if field := m.grid.Config().RowIDField; field != "" {
		for _, row := range m.rows {
			if row[field] == rowKey {
				return row, true
			}
		}
	}
	i, ok := rowKey.(int)
	if !ok || i < 0 || i >= len(m.rows) {
		return nil, false
	}
	return m.rows[i], true
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.vp.Width, m.vp.Height = msg.Width, msg.Height-1
		m.scrollToFocus()
	case pasteMsg:
		if msg.err != nil {
			m.status = "paste: " + msg.err.Error()
			return m, nil
		}
		if _, err := m.grid.Paste(m.st, msg.text); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.applyEdits()
	case tea.MouseMsg:
		m.mouse(msg)
	case tea.KeyMsg:
		return m.key(msg)
	}
	return m, nil
}

func (m model) key(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Copy):
		if err := clipboard.WriteAll(m.grid.Copy(m.st)); err != nil {
			m.status = "copy: " + err.Error()
		} else {
			m.status = "copied"
		}
		return m, nil
	case key.Matches(msg, keys.Paste):
		return m, readClipboard
	case key.Matches(msg, keys.Sort):
		m.sortFocused(msg)
		return m, nil
	case key.Matches(msg, keys.Narrow):
		m.resizeFocused(-2)
		return m, nil
	case key.Matches(msg, keys.Widen):
		m.resizeFocused(2)
		return m, nil
	case key.Matches(msg, keys.PageUp):
		m.page(-1)
		return m, nil
	case key.Matches(msg, keys.PageDown):
		m.page(1)
		return m, nil
	}

	ev, ok := gridKey(msg)
	if !ok {
		return m, nil
	}
	next, handled, err := m.grid.HandleKey(m.st, ev)
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	if !handled && m.st.Edit != nil {
		next = m.editText(msg)
	}
	m.st = next
	m.applyEdits()
	m.scrollToFocus()
	return m, nil
}

// editText applies a key the grid left to the editor.
func (m model) editText(msg tea.KeyMsg) grid.State {
	edit := m.st.Edit
	value := []rune(edit.Value)
	if edit.SelectInitialValue {
		value = nil
	}
	switch {
	case msg.Type == tea.KeyRunes:
		value = append(value, msg.Runes...)
	case msg.Type == tea.KeySpace:
		value = append(value, ' ')
	case key.Matches(msg, keys.Backspace):
		if len(value) > 0 {
			value = value[:len(value)-1]
		}
	case key.Matches(msg, keys.Clear):
		value = nil
	default:
		return m.st
	}
	next := m.grid.SetEditValue(m.st, string(value))
	next.Edit.SelectInitialValue = false
	return next
}

func (m *model) focusedColumn() (*grid.Column, bool) {
	if m.st.Focus == nil {
		return nil, false
	}
	return m.grid.Columns()[m.st.Focus.Column], true
}

func (m *model) sortFocused(source any) {
	col, ok := m.focusedColumn()
	if !ok {
		return
	}
	next, ok := m.grid.Sort(m.sort, col.Field, false, source)
	if !ok {
		m.status = cmp.Or(col.Label, col.Field) + " is not sortable"
		return
	}
	m.sort = next
	m.rows = sortedRows(m.original, m.sort)
	if err := m.rebuild(); err != nil {
		m.status = err.Error()
	}
}

func sortedRows(original []grid.Row, state grid.SortState) []grid.Row {
	rows := slices.Clone(original)
	for field, dir := range state {
		slices.SortStableFunc(rows, func(a, b grid.Row) int {
			c := compareValues(a.Value(field), b.Value(field))
			if dir == grid.SortDescending {
				return -c
			}
			return c
		})
	}
	return rows
}

func compareValues(a, b any) int {
	fa, aok := number(a)
	fb, bok := number(b)
	if aok && bok {
		return cmp.Compare(fa, fb)
	}
	return strings.Compare(grid.DisplayText(a), grid.DisplayText(b))
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func (m *model) resizeFocused(delta int) {
	col, ok := m.focusedColumn()
	if !ok {
		return
	}
	w, _ := grid.WidthOf(col, m.grid.Config().DefaultWidth)
	tree, ok := m.grid.Resize(col.Field, w+delta)
	if !ok {
		m.status = cmp.Or(col.Label, col.Field) + " is not resizable"
		return
	}
	m.tree = tree
	if err := m.rebuild(); err != nil {
		m.status = err.Error()
	}
	m.scrollToFocus()
}

func (m *model) page(dir int) {
	if m.st.Focus == nil || m.st.Edit != nil {
		return
	}
	step := max(m.bodyHeight(), 1) * dir
	row := min(max(m.st.Focus.Row+step, 0), m.grid.RowCount()-1)
	m.st = m.grid.Focus(m.st, grid.Cell{Row: row, Column: m.st.Focus.Column}, nil)
	m.scrollToFocus()
}

func (m model) bodyHeight() int {
	cfg := m.grid.Config()
	return m.vp.Height - m.grid.Positions().Depth()*cfg.HeaderRowHeight
}

// scrollToFocus moves the viewport the least amount that brings the
// focused cell into view.
func (m *model) scrollToFocus() {
	if m.st.Focus == nil || m.vp.Height <= 0 {
		return
	}
	cfg := m.grid.Config()
	body := m.bodyHeight()
	mc := m.grid.Resolve(m.st.Focus.Row, m.st.Focus.Column)

	top := mc.Anchor.Row * (cfg.RowHeight + cfg.RowGap)
	if top < m.vp.ScrollTop {
		m.vp.ScrollTop = top
	} else if bottom := top + cfg.RowHeight; bottom > m.vp.ScrollTop+body {
		m.vp.ScrollTop = bottom - body
	}

	mid := m.grid.PinGroup(grid.PinNone)
	c := mc.Anchor.Column
	if !mid.Contains(c) {
		return
	}
	cols := m.grid.Columns()[mid.Start:mid.End]
	right := grid.Boundaries(cols, cfg.ColumnGap, cfg.DefaultWidth)[c-mid.Start]
	w, _ := grid.WidthOf(cols[c-mid.Start], cfg.DefaultWidth)
	left := right - w
	view := m.regions().scrollW
	if left < m.vp.ScrollLeft {
		m.vp.ScrollLeft = left
	} else if right > m.vp.ScrollLeft+view {
		m.vp.ScrollLeft = right - view
	}
}

func (m *model) mouse(msg tea.MouseMsg) {
	cell, ok := m.cellAt(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.vp.ScrollTop = max(m.vp.ScrollTop-3, 0)
			return
		case tea.MouseButtonWheelDown:
			cfg := m.grid.Config()
			limit := max(m.grid.RowCount()*(cfg.RowHeight+cfg.RowGap)-m.bodyHeight(), 0)
			m.vp.ScrollTop = min(m.vp.ScrollTop+3, limit)
			return
		case tea.MouseButtonLeft:
		default:
			return
		}
		if !ok {
			return
		}
		double := cell == m.lastCell && time.Since(m.lastClick) < doubleClick
		m.lastCell, m.lastClick = cell, time.Now()
		st, drag, err := m.grid.PointerDown(m.st, m.drag, grid.PointerEvent{Cell: cell, Double: double})
		if err != nil {
			m.status = err.Error()
			return
		}
		m.st, m.drag = st, drag
		m.applyEdits()
	case tea.MouseActionMotion:
		if ok {
			m.st, m.drag = m.grid.PointerMove(m.st, m.drag, grid.PointerEvent{Cell: cell})
		}
	case tea.MouseActionRelease:
		m.st, m.drag = m.grid.PointerUp(m.st, m.drag)
	}
}

// cellAt maps a terminal position to the cell under it.
func (m model) cellAt(x, y int) (grid.Cell, bool) {
	cfg := m.grid.Config()
	header := m.grid.Positions().Depth() * cfg.HeaderRowHeight
	if y < header || m.grid.RowCount() == 0 {
		return grid.Cell{}, false
	}
	row := grid.RowAtOffset(cfg, y-header+m.vp.ScrollTop, m.grid.RowCount())

	r := m.regions()
	var grp grid.Window
	var offset int
	switch {
	case x < r.startW:
		grp, offset = m.grid.PinGroup(grid.PinStart), x
	case r.endW > 0 && x >= m.vp.Width-r.endW:
		grp, offset = m.grid.PinGroup(grid.PinEnd), x-(m.vp.Width-r.endW)
	default:
		grp, offset = m.grid.PinGroup(grid.PinNone), x-r.scrollX+m.vp.ScrollLeft
	}
	cols := m.grid.Columns()[grp.Start:grp.End]
	i := grid.ColumnAtOffset(grid.Boundaries(cols, cfg.ColumnGap, cfg.DefaultWidth), offset)
	if i < 0 {
		return grid.Cell{}, false
	}
	return grid.Cell{Row: row, Column: grp.Start + i}, true
}
