package grid

import (
	"slices"
	"testing"
)

func leafCols(defs ...ColumnDef) []*Column {
	out := make([]*Column, len(defs))
	for i, d := range defs {
		out[i] = &Column{ColumnDef: d}
	}
	return out
}

func TestWidthOf(t *testing.T) {
	tests := []struct {
		def   ColumnDef
		px    int
		fixed bool
	}{
		{ColumnDef{}, 12, true},
		{ColumnDef{MinWidth: 20}, 20, true},
		{ColumnDef{Width: Px(30)}, 30, true},
		{ColumnDef{Width: Px(10), MinWidth: 20}, 20, true},
		{ColumnDef{Width: Flex("1fr"), MinWidth: 8}, 8, false},
	}
	for _, tt := range tests {
		px, fixed := WidthOf(&Column{ColumnDef: tt.def}, 12)
		if px != tt.px || fixed != tt.fixed {
			t.Errorf("WidthOf(%v) = %d, %v; want %d, %v", tt.def.Width, px, fixed, tt.px, tt.fixed)
		}
	}
}

func TestBoundariesAndOffsets(t *testing.T) {
	cols := leafCols(ColumnDef{Width: Px(10)}, ColumnDef{Width: Px(5)}, ColumnDef{})
	b := Boundaries(cols, 1, 12)
	if !slices.Equal(b, []int{10, 16, 29}) {
		t.Fatalf("Boundaries = %v, want [10 16 29]", b)
	}

	w, ok := CanvasWidth(cols, 1, 12)
	if !ok || w != 29 {
		t.Errorf("CanvasWidth = %d, %v; want 29, true", w, ok)
	}
	if _, ok := CanvasWidth(leafCols(ColumnDef{Width: Flex("1fr")}), 1, 12); ok {
		t.Error("CanvasWidth with a flexible column should defer to the renderer")
	}
	if got := PinnedOffset(cols[:2], 1, 12); got != 16 {
		t.Errorf("PinnedOffset = %d, want 16", got)
	}
	if got := PinnedOffset(nil, 1, 12); got != 0 {
		t.Errorf("PinnedOffset(nil) = %d, want 0", got)
	}

	tests := []struct {
		x    int
		want int
	}{
		{-1, -1},
		{0, 0},
		{9, 0},
		{10, 1},
		{15, 1},
		{16, 2},
		{28, 2},
		{29, -1},
	}
	for _, tt := range tests {
		if got := ColumnAtOffset(b, tt.x); got != tt.want {
			t.Errorf("ColumnAtOffset(%d) = %d, want %d", tt.x, got, tt.want)
		}
	}
}

func TestRowAtOffset(t *testing.T) {
	cfg := NewLayout(RowHeight(1, 1))
	tests := []struct {
		y, count, want int
	}{
		{0, 10, 0},
		{5, 10, 2},
		{-3, 10, 0},
		{100, 10, 9},
		{0, 0, -1},
	}
	for _, tt := range tests {
		if got := RowAtOffset(cfg, tt.y, tt.count); got != tt.want {
			t.Errorf("RowAtOffset(%d, %d) = %d, want %d", tt.y, tt.count, got, tt.want)
		}
	}
}

func TestAutoWidth(t *testing.T) {
	c := &Column{ColumnDef: ColumnDef{Field: "name", Label: "Name"}}
	rows := []Row{{"name": "héllo"}, {"name": "日本"}, {"name": nil}}
	if got := AutoWidth(c, rows, 2); got != 7 {
		t.Errorf("AutoWidth = %d, want 7", got)
	}
	c.MinWidth = 20
	if got := AutoWidth(c, rows, 2); got != 20 {
		t.Errorf("AutoWidth with MinWidth = %d, want 20", got)
	}

	unlabeled := &Column{ColumnDef: ColumnDef{Field: "identifier"}}
	if got := AutoWidth(unlabeled, rows, 0); got != 10 {
		t.Errorf("AutoWidth without label = %d, want 10", got)
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct{ a, b, want int }{
		{7, 2, 3},
		{-1, 4, -1},
		{-4, 2, -2},
		{0, 3, 0},
	}
	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
