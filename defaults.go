package grid

import (
	"strconv"
	"strings"
)

// Width is a column width: either a fixed pixel count or a flexible
// expression ("1fr", "25%") whose resolution is left to the renderer.
type Width struct {
	px   int
	expr string
}

// Px returns a fixed width.
func Px(n int) Width { return Width{px: n} }

// Flex returns a width the engine cannot size on its own.
func Flex(expr string) Width { return Width{expr: expr} }

// ParseWidth reads "120" as Px(120) and anything else as Flex.
func ParseWidth(s string) Width {
	s = strings.TrimSpace(s)
	if s == "" {
		return Width{}
	}
	if n, err := strconv.Atoi(s); err == nil {
		return Px(n)
	}
	return Flex(s)
}

// IsZero reports whether the width was left unset.
func (w Width) IsZero() bool { return w.px == 0 && w.expr == "" }

// Fixed returns the pixel width and whether the width is fixed.
func (w Width) Fixed() (int, bool) { return w.px, w.expr == "" }

func (w Width) String() string {
	if w.expr != "" {
		return w.expr
	}
	return strconv.Itoa(w.px)
}

// Defaults holds the two default sets merged into the column tree.
// Group nodes are not sized on their own, so Group carries no width.
type Defaults struct {
	Leaf  ColumnDef
	Group ColumnDef
}

// DefaultsFrom derives both default sets from the leaf defaults.
func DefaultsFrom(leaf ColumnDef) Defaults {
	group := leaf
	group.Width = Width{}
	group.MinWidth = 0
	return Defaults{Leaf: leaf, Group: group}
}

// StandardDefaults are used when no defaults are configured.
func StandardDefaults() Defaults {
	return DefaultsFrom(ColumnDef{
		MinWidth:    24,
		Sortable:    Static(false),
		Filterable:  Static(false),
		Editable:    Static(false),
		Resizable:   Static(true),
		RowSpanning: Static(false),
	})
}

// ApplyDefaults returns a new tree where every node has its unset
// attributes filled from d. The input tree is not modified.
func ApplyDefaults(tree []ColumnDef, d Defaults) []ColumnDef {
	out := make([]ColumnDef, len(tree))
	for i, node := range tree {
		if node.IsGroup() {
			node = overlay(d.Group, node)
			node.Subcolumns = ApplyDefaults(node.Subcolumns, d)
		} else {
			node = overlay(d.Leaf, node)
		}
		out[i] = node
	}
	return out
}

// overlay returns base with every attribute set in over replacing it.
func overlay(base, over ColumnDef) ColumnDef {
	out := base
	out.Subcolumns = over.Subcolumns
	if over.ID != "" {
		out.ID = over.ID
	}
	if over.Field != "" {
		out.Field = over.Field
	}
	if over.Label != "" {
		out.Label = over.Label
	}
	if !over.Width.IsZero() {
		out.Width = over.Width
	}
	if over.MinWidth != 0 {
		out.MinWidth = over.MinWidth
	}
	if over.Pinned != PinNone {
		out.Pinned = over.Pinned
	}
	out.Sortable = over.Sortable.or(base.Sortable)
	out.Filterable = over.Filterable.or(base.Filterable)
	out.Editable = over.Editable.or(base.Editable)
	out.Resizable = over.Resizable.or(base.Resizable)
	out.RowSpanning = over.RowSpanning.or(base.RowSpanning)
	if over.RowSpanCompare != nil {
		out.RowSpanCompare = over.RowSpanCompare
	}
	if over.ValueRenderer != nil {
		out.ValueRenderer = over.ValueRenderer
	}
	if over.ValueParser != nil {
		out.ValueParser = over.ValueParser
	}
	return out
}
