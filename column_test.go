package grid

import (
	"strings"
	"testing"
)

func fields(cols []*Column) string {
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Field
	}
	return strings.Join(names, ",")
}

func TestFlattenFlatTreeIsIdentity(t *testing.T) {
	tree := []ColumnDef{{Field: "a"}, {Field: "b"}, {Field: "c"}}
	leaves := Flatten(tree)
	if got := fields(leaves); got != "a,b,c" {
		t.Fatalf("Flatten = %q, want a,b,c", got)
	}
	for _, c := range leaves {
		if len(c.Ancestors) != 0 {
			t.Errorf("%s has %d ancestors, want 0", c.Field, len(c.Ancestors))
		}
		if c.ID != c.Field {
			t.Errorf("ID = %q, want %q", c.ID, c.Field)
		}
	}

	again := make([]ColumnDef, len(leaves))
	for i, c := range leaves {
		again[i] = c.ColumnDef
	}
	if got := fields(Flatten(again)); got != "a,b,c" {
		t.Errorf("Flatten(Flatten) = %q, want a,b,c", got)
	}
}

func TestFlattenAncestors(t *testing.T) {
	tree := []ColumnDef{
		{Field: "id"},
		{Label: "Name", Subcolumns: []ColumnDef{
			{Field: "first"},
			{Label: "Last", Subcolumns: []ColumnDef{{Field: "family"}, {Field: "suffix"}}},
		}},
	}
	leaves := Flatten(tree)
	if got := fields(leaves); got != "id,first,family,suffix" {
		t.Fatalf("Flatten = %q", got)
	}

	tests := []struct {
		field string
		chain []string
	}{
		{"id", nil},
		{"first", []string{"Name"}},
		{"family", []string{"Name", "Last"}},
		{"suffix", []string{"Name", "Last"}},
	}
	for i, tt := range tests {
		c := leaves[i]
		if len(c.Ancestors) != len(tt.chain) {
			t.Errorf("%s: %d ancestors, want %d", tt.field, len(c.Ancestors), len(tt.chain))
			continue
		}
		for j, label := range tt.chain {
			if c.Ancestors[j].Label != label {
				t.Errorf("%s: ancestor %d = %q, want %q", tt.field, j, c.Ancestors[j].Label, label)
			}
		}
	}

	if leaves[2].Ancestors[0] != leaves[1].Ancestors[0] {
		t.Error("leaves of one group should share the group record")
	}
	if got := leaves[1].Ancestors[0].LeafCount(); got != 3 {
		t.Errorf("Name leaf count = %d, want 3", got)
	}
}

func TestFlattenSplitsMixedPinGroups(t *testing.T) {
	tree := []ColumnDef{
		{ID: "g", Label: "G", Subcolumns: []ColumnDef{
			{Field: "a", Pinned: PinStart},
			{Field: "b"},
			{Field: "c"},
		}},
	}
	leaves := Flatten(tree)
	a, b, c := leaves[0], leaves[1], leaves[2]

	if a.Ancestors[0] == b.Ancestors[0] {
		t.Fatal("pinned and unpinned leaves share a group record")
	}
	if b.Ancestors[0] != c.Ancestors[0] {
		t.Error("same-pin siblings should share the split record")
	}
	if got := a.Ancestors[0].ID; got != "g@start" {
		t.Errorf("split id = %q, want g@start", got)
	}
	if got := b.Ancestors[0].LeafCount(); got != 2 {
		t.Errorf("unpinned split leaf count = %d, want 2", got)
	}
	if got := a.Ancestors[0].LeafCount(); got != 1 {
		t.Errorf("pinned split leaf count = %d, want 1", got)
	}
	if got := len(b.Ancestors[0].Subcolumns); got != 2 {
		t.Errorf("unpinned split keeps %d children, want 2", got)
	}
}

func TestReorder(t *testing.T) {
	tests := []struct {
		pins []Pin
		want string
	}{
		{[]Pin{PinNone, PinStart, PinNone}, "B,A,C"},
		{[]Pin{PinEnd, PinNone, PinStart}, "C,B,A"},
		{[]Pin{PinEnd, PinEnd, PinNone}, "C,A,B"},
		{[]Pin{PinStart, PinEnd, PinStart}, "A,C,B"},
		{[]Pin{PinNone, PinNone, PinNone}, "A,B,C"},
	}
	for _, tt := range tests {
		tree := []ColumnDef{
			{Field: "A", Pinned: tt.pins[0]},
			{Field: "B", Pinned: tt.pins[1]},
			{Field: "C", Pinned: tt.pins[2]},
		}
		if got := fields(Reorder(Flatten(tree))); got != tt.want {
			t.Errorf("Reorder(%v) = %q, want %q", tt.pins, got, tt.want)
		}
	}
}

func TestFlattenSuffixesRepeatedIDs(t *testing.T) {
	tree := []ColumnDef{
		{Field: "a"},
		{Label: "G", Subcolumns: []ColumnDef{{Field: "a"}, {Field: "b"}}},
		{Field: "a"},
	}
	var ids []string
	for _, c := range Flatten(tree) {
		ids = append(ids, c.ID)
	}
	if got := strings.Join(ids, ","); got != "a,a#2,b,a#3" {
		t.Errorf("ids = %s, want a,a#2,b,a#3", got)
	}
}

func TestValidateDuplicateFields(t *testing.T) {
	ok := []ColumnDef{{Field: "a"}, {Subcolumns: []ColumnDef{{Field: "b"}}}}
	if err := Validate(ok); err != nil {
		t.Errorf("Validate(unique) = %v", err)
	}

	bad := []ColumnDef{{Field: "a"}, {Subcolumns: []ColumnDef{{Field: "a"}, {Field: "b"}}}}
	err := Validate(bad)
	if err == nil {
		t.Fatal("Validate(duplicate) = nil, want error")
	}
	if !strings.Contains(err.Error(), "a") {
		t.Errorf("error %q does not name the field", err)
	}
}

func TestApplyDefaults(t *testing.T) {
	d := DefaultsFrom(ColumnDef{Width: Px(80), MinWidth: 10, Editable: Static(true)})
	tree := []ColumnDef{
		{Label: "G", Subcolumns: []ColumnDef{{Field: "a"}, {Field: "b", Width: Px(30), Editable: Static(false)}}},
	}
	out := ApplyDefaults(tree, d)

	if !out[0].Width.IsZero() || out[0].MinWidth != 0 {
		t.Errorf("group got width %v/%d, want none", out[0].Width, out[0].MinWidth)
	}
	if !out[0].Editable.Resolve(CellContext{}) {
		t.Error("group should still receive non-size defaults")
	}
	a, b := out[0].Subcolumns[0], out[0].Subcolumns[1]
	if w, _ := a.Width.Fixed(); w != 80 {
		t.Errorf("a width = %d, want 80", w)
	}
	if w, _ := b.Width.Fixed(); w != 30 {
		t.Errorf("b width = %d, want 30", w)
	}
	if b.Editable.Resolve(CellContext{}) {
		t.Error("explicit Editable(false) was overwritten")
	}
	if !tree[0].Subcolumns[0].Width.IsZero() {
		t.Error("ApplyDefaults modified its input")
	}
}

func TestPropDynamic(t *testing.T) {
	p := Dynamic(func(ctx CellContext) bool { return ctx.RowIndex%2 == 0 })
	if !p.Resolve(CellContext{RowIndex: 2}) || p.Resolve(CellContext{RowIndex: 3}) {
		t.Error("dynamic prop did not follow its predicate")
	}
	var unset Prop[bool]
	if unset.IsSet() || unset.Resolve(CellContext{}) {
		t.Error("zero prop should be unset and false")
	}
}

func TestResizeColumn(t *testing.T) {
	tree := []ColumnDef{
		{Field: "a"},
		{Label: "G", Subcolumns: []ColumnDef{{Field: "b", MinWidth: 20}, {Field: "c"}}},
	}
	out, applied, ok := ResizeColumn(tree, "b", 5)
	if !ok || applied != 20 {
		t.Fatalf("ResizeColumn = %d, %v; want 20, true", applied, ok)
	}
	if w, _ := out[1].Subcolumns[0].Width.Fixed(); w != 20 {
		t.Errorf("b width = %d, want 20", w)
	}
	if !tree[1].Subcolumns[0].Width.IsZero() {
		t.Error("ResizeColumn modified its input")
	}
	if _, _, ok := ResizeColumn(tree, "zzz", 5); ok {
		t.Error("ResizeColumn(unknown) reported ok")
	}
}

func TestParseWidth(t *testing.T) {
	tests := []struct {
		in    string
		px    int
		fixed bool
	}{
		{"120", 120, true},
		{" 8 ", 8, true},
		{"1fr", 0, false},
		{"25%", 0, false},
	}
	for _, tt := range tests {
		px, fixed := ParseWidth(tt.in).Fixed()
		if px != tt.px || fixed != tt.fixed {
			t.Errorf("ParseWidth(%q) = %d, %v; want %d, %v", tt.in, px, fixed, tt.px, tt.fixed)
		}
	}
	if !ParseWidth("").IsZero() {
		t.Error("ParseWidth(\"\") should be unset")
	}
}
