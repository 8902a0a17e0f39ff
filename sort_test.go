package grid

import (
	"maps"
	"testing"
)

func TestNextSort(t *testing.T) {
	tests := []struct {
		name    string
		current SortState
		field   string
		multi   bool
		want    SortState
	}{
		{"first click", nil, "a", false, SortState{"a": SortAscending}},
		{"second click", SortState{"a": SortAscending}, "a", false, SortState{"a": SortDescending}},
		{"third click", SortState{"a": SortDescending}, "a", false, SortState{}},
		{"single replaces", SortState{"a": SortAscending}, "b", false, SortState{"b": SortAscending}},
		{"multi keeps", SortState{"a": SortAscending}, "b", true, SortState{"a": SortAscending, "b": SortAscending}},
		{"multi clears one", SortState{"a": SortAscending, "b": SortDescending}, "b", true, SortState{"a": SortAscending}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := maps.Clone(tt.current)
			got := NextSort(tt.current, tt.field, tt.multi)
			if !maps.Equal(got, tt.want) {
				t.Errorf("NextSort = %v, want %v", got, tt.want)
			}
			if !maps.Equal(tt.current, before) {
				t.Error("NextSort modified its input")
			}
		})
	}
}

func TestSortFilterFlags(t *testing.T) {
	var sorted SortState
	var filtered string
	tree := []ColumnDef{
		{Field: "a", Sortable: Static(true), Filterable: Static(true)},
		{Field: "b"},
	}
	g, _ := New(tree, nil, WithCallbacks(Callbacks{
		OnSort:   func(next SortState, _ any) { sorted = next },
		OnFilter: func(field string, _ any) { filtered = field },
	}))

	next, ok := g.Sort(nil, "a", false, nil)
	if !ok || next["a"] != SortAscending || sorted["a"] != SortAscending {
		t.Errorf("Sort(a) = %v, %v; callback saw %v", next, ok, sorted)
	}
	if _, ok := g.Sort(next, "b", false, nil); ok {
		t.Error("Sort on an unsortable column reported ok")
	}
	if _, ok := g.Sort(next, "zzz", false, nil); ok {
		t.Error("Sort on an unknown column reported ok")
	}

	if !g.Filter("a", "x") || filtered != "a" {
		t.Errorf("Filter(a) not reported, got %q", filtered)
	}
	if g.Filter("b", "x") {
		t.Error("Filter on an unfilterable column reported ok")
	}
}

func TestResize(t *testing.T) {
	var gotField string
	var gotWidth int
	tree := []ColumnDef{
		{Field: "a"},
		{Field: "fixed", Resizable: Static(false)},
	}
	g, _ := New(tree, nil, WithCallbacks(Callbacks{
		OnResize: func(field string, width int, _ []ColumnDef) { gotField, gotWidth = field, width },
	}))

	out, ok := g.Resize("a", 10)
	if !ok || gotField != "a" || gotWidth != 24 {
		t.Fatalf("Resize = %v; callback %q %d", ok, gotField, gotWidth)
	}
	if w, _ := out[0].Width.Fixed(); w != 24 {
		t.Errorf("resized width = %d, want MinWidth 24", w)
	}

	rebuilt, err := New(out, nil)
	if err != nil {
		t.Fatal(err)
	}
	if px, _ := WidthOf(rebuilt.Columns()[0], 12); px != 24 {
		t.Errorf("rebuilt width = %d, want 24", px)
	}

	if _, ok := g.Resize("fixed", 50); ok {
		t.Error("Resize on a non-resizable column reported ok")
	}
}
