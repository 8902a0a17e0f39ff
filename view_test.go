package grid

import (
	"fmt"
	"slices"
	"testing"
)

func pinnedGrid(t *testing.T, rows int) *Grid {
	t.Helper()
	tree := []ColumnDef{{Field: "id", Pinned: PinStart}}
	for i := range 5 {
		tree = append(tree, ColumnDef{Field: fmt.Sprintf("c%d", i), Width: Px(10)})
	}
	tree = append(tree, ColumnDef{Field: "total", Pinned: PinEnd})

	data := make([]Row, rows)
	for r := range data {
		data[r] = Row{"id": r, "total": r * 10}
	}
	g, err := New(tree, data, WithDefaults(DefaultsFrom(ColumnDef{})))
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestViewWindows(t *testing.T) {
	g := pinnedGrid(t, 100)
	v := g.View(Viewport{Width: 40, Height: 10})

	if v.Rows != (Window{0, 12}) {
		t.Errorf("rows = %v, want [0,12)", v.Rows)
	}
	wantGroups := []Window{{0, 1}, {1, 4}, {6, 7}}
	for i, want := range wantGroups {
		if v.Groups[i].Window != want {
			t.Errorf("group %s window = %v, want %v", v.Groups[i].Pin, v.Groups[i].Window, want)
		}
	}
	if got := v.Columns(); !slices.Equal(got, []int{0, 1, 2, 3, 6}) {
		t.Errorf("visible columns = %v", got)
	}
	if len(v.Cells) != 12*5 {
		t.Errorf("cells = %d, want 60", len(v.Cells))
	}
	if len(v.Header) != 1 || len(v.Header[0]) != 5 {
		t.Errorf("header = %v", v.Header)
	}
	if v.AutoCanvas || v.CanvasWidth != 12+5*10+12+6 {
		t.Errorf("canvas = %d auto %v", v.CanvasWidth, v.AutoCanvas)
	}
}

func TestViewScrolledKeepsPinnedColumns(t *testing.T) {
	g := pinnedGrid(t, 100)
	v := g.View(Viewport{ScrollTop: 90, ScrollLeft: 40, Width: 40, Height: 10})

	if v.Rows != (Window{88, 100}) {
		t.Errorf("rows = %v, want [88,100)", v.Rows)
	}
	cols := v.Columns()
	if cols[0] != 0 || cols[len(cols)-1] != 6 {
		t.Errorf("pinned columns scrolled away: %v", cols)
	}
	if v.Groups[1].Window != (Window{3, 6}) {
		t.Errorf("scrollable window = %v, want [3,6)", v.Groups[1].Window)
	}
	for _, c := range v.Cells {
		if c.Anchor.Column == 6 && c.Text != fmt.Sprint(c.Anchor.Row*10) {
			t.Errorf("total at row %d = %q", c.Anchor.Row, c.Text)
		}
	}
}

func TestViewIncludesSpanAnchorsAboveWindow(t *testing.T) {
	rows := make([]Row, 10)
	for i := range rows {
		rows[i] = Row{"g": "same", "v": i}
	}
	tree := []ColumnDef{
		{Field: "g", Width: Px(5), RowSpanning: Static(true)},
		{Field: "v", Width: Px(5)},
	}
	g, _ := New(tree, rows, WithLayout(Overscan(0, 0)))
	v := g.View(Viewport{ScrollTop: 5, Width: 100, Height: 4})

	if v.Rows != (Window{5, 9}) {
		t.Fatalf("rows = %v, want [5,9)", v.Rows)
	}
	if len(v.Cells) != 5 {
		t.Fatalf("cells = %d, want 5", len(v.Cells))
	}
	merged := v.Cells[0]
	if merged.Anchor != (Cell{0, 0}) || merged.LastRow != 9 || merged.Text != "same" {
		t.Errorf("merged cell = %+v", merged)
	}
	if merged.Position.ColumnIndex != 0 {
		t.Errorf("merged position = %+v", merged.Position)
	}
}

func TestViewNestedHeader(t *testing.T) {
	tree := []ColumnDef{
		{Field: "id", Width: Px(4)},
		{Label: "Metrics", Subcolumns: []ColumnDef{
			{Field: "cpu", Width: Px(4)},
			{Field: "mem", Width: Px(4)},
		}},
	}
	g, _ := New(tree, []Row{{}}, WithLayout(Virtualize(false, false)))
	v := g.View(Viewport{Width: 5, Height: 10})

	if len(v.Header) != 2 {
		t.Fatalf("header rows = %d, want 2", len(v.Header))
	}
	if len(v.Header[0]) != 2 || len(v.Header[1]) != 2 {
		t.Errorf("header = %d/%d cells, want 2/2", len(v.Header[0]), len(v.Header[1]))
	}
	group := v.Header[0][1]
	if group.Column.Label != "Metrics" || group.Position.ColumnIndexEnd-group.Position.ColumnIndex != 2 {
		t.Errorf("group header = %+v", group)
	}
	if v.Rows != (Window{0, 1}) || len(v.Cells) != 3 {
		t.Errorf("rows %v, cells %d", v.Rows, len(v.Cells))
	}
}

func TestViewEmptyGrid(t *testing.T) {
	g, _ := New([]ColumnDef{{Field: "a"}}, nil)
	v := g.View(Viewport{Width: 80, Height: 24})
	if v.Rows.Len() != 0 || len(v.Cells) != 0 {
		t.Errorf("empty grid view = %+v", v)
	}
}
