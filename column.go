package grid

import (
	"slices"
	"strconv"
	"strings"

	"github.com/olekukonko/errors"
)

// Pin places a leaf column in one of the three column groups.
type Pin int

const (
	PinNone Pin = iota
	PinStart
	PinEnd
)

func (p Pin) String() string {
	switch p {
	case PinStart:
		return "start"
	case PinEnd:
		return "end"
	default:
		return "none"
	}
}

// rank orders pin groups left to right.
func (p Pin) rank() int {
	switch p {
	case PinStart:
		return 0
	case PinEnd:
		return 2
	default:
		return 1
	}
}

// CellContext is what column callbacks are evaluated against.
type CellContext struct {
	Row      Row
	RowIndex int
	Value    any
	Column   *Column
}

// Prop is either a constant or a predicate over a cell.
// The zero Prop is unset and resolves to the zero value of T.
type Prop[T any] struct {
	set   bool
	value T
	fn    func(CellContext) T
}

// Static returns a Prop that always resolves to v.
func Static[T any](v T) Prop[T] { return Prop[T]{set: true, value: v} }

// Dynamic returns a Prop evaluated per cell.
func Dynamic[T any](fn func(CellContext) T) Prop[T] { return Prop[T]{set: true, fn: fn} }

// IsSet reports whether the Prop was given a value or predicate.
func (p Prop[T]) IsSet() bool { return p.set }

// Resolve evaluates the Prop for ctx.
func (p Prop[T]) Resolve(ctx CellContext) T {
	if p.fn != nil {
		return p.fn(ctx)
	}
	return p.value
}

// or returns p when set, otherwise fallback.
func (p Prop[T]) or(fallback Prop[T]) Prop[T] {
	if p.set {
		return p
	}
	return fallback
}

// ValueRenderer converts a raw cell value into its display value.
type ValueRenderer func(ctx CellContext) any

// ValueParser converts edited text back into a cell value.
type ValueParser func(ctx CellContext, text string) (any, error)

// ColumnDef is one node of the column-definition tree.
type ColumnDef struct {
	ID         string
	Field      string
	Label      string
	Subcolumns []ColumnDef

	Width    Width
	MinWidth int
	Pinned   Pin

	Sortable    Prop[bool]
	Filterable  Prop[bool]
	Editable    Prop[bool]
	Resizable   Prop[bool]
	RowSpanning Prop[bool]

	// RowSpanCompare decides whether two vertically adjacent rendered values
	// merge. Nil means deep equality.
	RowSpanCompare func(a, b any) bool
	ValueRenderer  ValueRenderer
	ValueParser    ValueParser
}

// IsGroup reports whether the node has children.
func (d ColumnDef) IsGroup() bool { return len(d.Subcolumns) > 0 }

// Column is a flattened leaf column, or a group record referenced from a
// leaf's Ancestors.
type Column struct {
	ColumnDef

	// Ancestors lists group records from the root down to the parent.
	Ancestors []*Column

	leafCount int // group records only
	subIndex  int
}

// Key is the identity used by the position index.
func (c *Column) Key() string { return c.ID }

// IsLeaf reports whether c is a data-bearing column.
func (c *Column) IsLeaf() bool { return len(c.Subcolumns) == 0 }

// LeafCount returns the number of leaves under a group record, 1 for leaves.
func (c *Column) LeafCount() int {
	if c.IsLeaf() {
		return 1
	}
	return c.leafCount
}

// Flatten walks the column tree depth first and returns its leaves in tree
// order. Groups whose leaves are pinned differently are split into one
// record per pin group so no header crosses a pin boundary. A leaf whose
// id repeats an earlier one gets a "#n" suffix so every leaf keeps its
// own position.
func Flatten(tree []ColumnDef) []*Column {
	var leaves []*Column
	used := make(map[string]int)
	var walk func(nodes []ColumnDef, ancestors []*Column, path string)
	walk = func(nodes []ColumnDef, ancestors []*Column, path string) {
		for i, node := range nodes {
			id := node.ID
			p := path + strconv.Itoa(i)
			if node.IsGroup() {
				if id == "" {
					id = "group:" + p
				}
				node.ID = id
				g := &Column{ColumnDef: node, leafCount: countLeaves(node.Subcolumns), subIndex: i}
				walk(node.Subcolumns, append(slices.Clip(ancestors), g), p+".")
				continue
			}
			if id == "" {
				id = node.Field
			}
			if n := used[id]; n > 0 {
				used[id]++
				id += "#" + strconv.Itoa(n+1)
			} else {
				used[id] = 1
			}
			node.ID = id
			leaves = append(leaves, &Column{ColumnDef: node, Ancestors: ancestors, subIndex: i})
		}
	}
	walk(tree, nil, "")
	splitAncestors(leaves)
	return leaves
}

// splitAncestors replaces mixed-pin group records with filtered copies.
// All leaves sharing a group and a pin share the same copy.
func splitAncestors(leaves []*Column) {
	type splitKey struct {
		group *Column
		pin   Pin
	}
	copies := make(map[splitKey]*Column)
	for _, leaf := range leaves {
		if len(leaf.Ancestors) == 0 {
			continue
		}
		chain := make([]*Column, len(leaf.Ancestors))
		for i, g := range leaf.Ancestors {
			if !mixedPins(g.Subcolumns) {
				chain[i] = g
				continue
			}
			k := splitKey{g, leaf.Pinned}
			c, ok := copies[k]
			if !ok {
				def := g.ColumnDef
				def.ID = g.ID + "@" + leaf.Pinned.String()
				def.Pinned = leaf.Pinned
				def.Subcolumns = filterPinned(g.Subcolumns, leaf.Pinned)
				c = &Column{
					ColumnDef: def,
					leafCount: countLeaves(def.Subcolumns),
					subIndex:  g.subIndex,
				}
				copies[k] = c
			}
			chain[i] = c
		}
		leaf.Ancestors = chain
	}
}

func countLeaves(nodes []ColumnDef) int {
	n := 0
	for _, node := range nodes {
		if node.IsGroup() {
			n += countLeaves(node.Subcolumns)
		} else {
			n++
		}
	}
	return n
}

func collectPins(nodes []ColumnDef, seen map[Pin]bool) {
	for _, node := range nodes {
		if node.IsGroup() {
			collectPins(node.Subcolumns, seen)
		} else {
			seen[node.Pinned] = true
		}
	}
}

func mixedPins(nodes []ColumnDef) bool {
	seen := make(map[Pin]bool, 3)
	collectPins(nodes, seen)
	return len(seen) > 1
}

// filterPinned keeps the subtrees that contain leaves pinned to p.
func filterPinned(nodes []ColumnDef, p Pin) []ColumnDef {
	var out []ColumnDef
	for _, node := range nodes {
		if !node.IsGroup() {
			if node.Pinned == p {
				out = append(out, node)
			}
			continue
		}
		children := filterPinned(node.Subcolumns, p)
		if len(children) == 0 {
			continue
		}
		node.Subcolumns = children
		out = append(out, node)
	}
	return out
}

// Reorder returns the leaves with start-pinned first, then unpinned, then
// end-pinned. Relative order inside each group is preserved.
func Reorder(leaves []*Column) []*Column {
	out := slices.Clone(leaves)
	slices.SortStableFunc(out, func(a, b *Column) int {
		return a.Pinned.rank() - b.Pinned.rank()
	})
	return out
}

// Validate reports duplicate leaf fields.
func Validate(tree []ColumnDef) error {
	seen := make(map[string]int)
	var dupes []string
	var walk func(nodes []ColumnDef)
	walk = func(nodes []ColumnDef) {
		for _, node := range nodes {
			if node.IsGroup() {
				walk(node.Subcolumns)
				continue
			}
			seen[node.Field]++
			if seen[node.Field] == 2 {
				dupes = append(dupes, node.Field)
			}
		}
	}
	walk(tree)
	if len(dupes) > 0 {
		return errors.Newf("duplicate column field(s): %s", strings.Join(dupes, ", "))
	}
	return nil
}

// ResizeColumn returns a copy of tree with the leaf named field resized.
// The width is clamped to the column's MinWidth. ok is false when no leaf
// has that field.
func ResizeColumn(tree []ColumnDef, field string, width int) (out []ColumnDef, applied int, ok bool) {
	out = make([]ColumnDef, len(tree))
	for i, node := range tree {
		if node.IsGroup() {
			sub, w, found := ResizeColumn(node.Subcolumns, field, width)
			node.Subcolumns = sub
			if found && !ok {
				applied, ok = w, true
			}
		} else if node.Field == field && !ok {
			applied = max(width, node.MinWidth)
			node.Width = Px(applied)
			ok = true
		}
		out[i] = node
	}
	return out, applied, ok
}
