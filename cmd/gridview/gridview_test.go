package main

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	grid "github.com/etsisk/cantal-sub000"
)

func TestColumnTree(t *testing.T) {
	no := false
	tree, err := columnTree([]columnConfig{
		{Field: "id", Pin: "start", Width: "6"},
		{Label: "usage", Columns: []columnConfig{
			{Field: "cpu", Render: "percent"},
			{Field: "mem", Render: "bytes", Editable: &no},
		}},
		{Field: "ok", Pin: "end", Render: "bool"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if tree[0].Pinned != grid.PinStart || tree[2].Pinned != grid.PinEnd {
		t.Errorf("pins = %v, %v", tree[0].Pinned, tree[2].Pinned)
	}
	if len(tree[1].Subcolumns) != 2 || tree[1].Subcolumns[0].ValueRenderer == nil {
		t.Errorf("usage group = %+v", tree[1])
	}
	if tree[2].ValueParser != nil {
		t.Error("bool column got a parser")
	}
}

func TestColumnTreeErrors(t *testing.T) {
	tests := []columnConfig{
		{Field: "a", Pin: "middle"},
		{Field: "a", Render: "sparkline"},
		{Label: "g", Columns: []columnConfig{{Field: "b", Pin: "left"}}},
	}
	for _, c := range tests {
		if _, err := columnTree([]columnConfig{c}); err == nil {
			t.Errorf("columnTree(%+v) succeeded", c)
		}
	}
}

func TestLayoutOptions(t *testing.T) {
	gap, rows := 2, 7
	cfg := grid.NewLayout(layoutConfig{ColumnGap: &gap, OverscanRows: &rows, RowIDField: "ID"}.options()...)
	def := grid.DefaultLayout()
	if cfg.ColumnGap != 2 || cfg.OverscanRows != 7 || cfg.RowIDField != "ID" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.OverscanColumns != def.OverscanColumns || cfg.RowHeight != def.RowHeight {
		t.Errorf("unset values changed: %+v", cfg)
	}
}

func TestGridKey(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want grid.KeyEvent
		ok   bool
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, grid.KeyEvent{Key: grid.KeyUp}, true},
		{tea.KeyMsg{Type: tea.KeyShiftLeft}, grid.KeyEvent{Key: grid.KeyLeft, Shift: true}, true},
		{tea.KeyMsg{Type: tea.KeyShiftTab}, grid.KeyEvent{Key: grid.KeyTab, Shift: true}, true},
		{tea.KeyMsg{Type: tea.KeyF2}, grid.KeyEvent{Key: grid.KeyF2}, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, grid.KeyEvent{Key: grid.KeyRune, Rune: 'x'}, true},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, grid.KeyEvent{Key: grid.KeyRune, Rune: ' '}, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab")}, grid.KeyEvent{}, false},
		{tea.KeyMsg{Type: tea.KeyCtrlS}, grid.KeyEvent{}, false},
	}
	for _, tt := range tests {
		got, ok := gridKey(tt.msg)
		if ok != tt.ok || got != tt.want {
			t.Errorf("gridKey(%q) = %+v, %v; want %+v, %v", tt.msg.String(), got, ok, tt.want, tt.ok)
		}
	}
}

func TestSortedRows(t *testing.T) {
	original := []grid.Row{{"n": 3}, {"n": 1.5}, {"n": int64(2)}}
	tests := []struct {
		state grid.SortState
		want  []any
	}{
		{nil, []any{3, 1.5, int64(2)}},
		{grid.SortState{"n": grid.SortAscending}, []any{1.5, int64(2), 3}},
		{grid.SortState{"n": grid.SortDescending}, []any{3, int64(2), 1.5}},
	}
	for _, tt := range tests {
		got := sortedRows(original, tt.state)
		for i, row := range got {
			if row["n"] != tt.want[i] {
				t.Errorf("sortedRows(%v)[%d] = %v, want %v", tt.state, i, row["n"], tt.want[i])
			}
		}
	}
	if original[0]["n"] != 3 {
		t.Error("original order changed")
	}
}

func TestSyntheticRows(t *testing.T) {
	tree := defaultColumns()
	rows, err := syntheticRows(26, tree, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 26 {
		t.Fatalf("len = %d", len(rows))
	}
	if _, ok := rows[12][grid.DefaultLayout().ColumnSpanKey]; !ok {
		t.Error("row 12 has no note span")
	}
	if _, ok := rows[11][grid.DefaultLayout().ColumnSpanKey]; ok {
		t.Error("row 11 has a note span")
	}

	g, err := grid.New(tree, rows)
	if err != nil {
		t.Fatal(err)
	}
	_, cpu, _ := g.ColumnByField("CPU")
	mc := g.Resolve(12, cpu)
	if mc.ColumnSpan() != 3 {
		t.Errorf("note span covers %d columns, want 3", mc.ColumnSpan())
	}
}

func TestAutoSize(t *testing.T) {
	opts := []grid.Option{grid.WithDefaults(cellDefaults())}
	tree := defaultColumns()
	rows, err := syntheticRows(30, tree, 1)
	if err != nil {
		t.Fatal(err)
	}
	sized, err := autoSize(tree, rows, opts)
	if err != nil {
		t.Fatal(err)
	}
	g, err := grid.New(sized, rows, opts...)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		field string
		want  int
	}{
		{"Host", 8},  // "ap-000"
		{"Owner", 7}, // header "Owner"
		{"Region", 12},
	}
	for _, tt := range tests {
		c, _, ok := g.ColumnByField(tt.field)
		if !ok {
			t.Fatalf("no column %s", tt.field)
		}
		w, fixed := grid.WidthOf(c, g.Config().DefaultWidth)
		if w != tt.want || !fixed {
			t.Errorf("%s width = %d (fixed %v), want %d", tt.field, w, fixed, tt.want)
		}
	}
}

func TestClipboardKeysStayWithTheHost(t *testing.T) {
	tests := []struct {
		msg     tea.KeyMsg
		binding key.Binding
	}{
		{tea.KeyMsg{Type: tea.KeyCtrlY}, keys.Copy},
		{tea.KeyMsg{Type: tea.KeyCtrlV}, keys.Paste},
	}
	for _, tt := range tests {
		if !key.Matches(tt.msg, tt.binding) {
			t.Errorf("%q does not match its binding", tt.msg.String())
		}
		if ev, ok := gridKey(tt.msg); ok {
			t.Errorf("gridKey(%q) = %+v, want no grid event", tt.msg.String(), ev)
		}
	}
}
