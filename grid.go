// Package grid is the layout and interaction engine of a virtualized,
// spreadsheet-like grid. It turns a column-definition tree and a row
// dataset into positioned leaf columns, visible windows and merged cells,
// and drives focus, selection, editing and clipboard transfer.
//
// The engine holds no interaction state. Focus, edit cell, selection and
// scroll position belong to the caller and are passed in on every call;
// each call returns the next state and reports changes through Callbacks.
//
//	g, err := grid.New(columns, rows, grid.WithLayout(grid.Overscan(3, 1)))
//	st := grid.State{}
//	st = g.Focus(st, grid.Cell{}, nil)
//	st, handled, err := g.HandleKey(st, grid.KeyEvent{Key: grid.KeyDown})
package grid

import (
	"sync"

	"github.com/olekukonko/ll"
)

// Grid is the geometry computed from one column tree and dataset. It is
// read-only once built; rebuild it with New when columns, widths, pins or
// rows change.
type Grid struct {
	cfg      LayoutConfig
	defaults Defaults
	cb       Callbacks
	log      *ll.Logger

	tree      []ColumnDef // defaults applied
	columns   []*Column   // leaves in pin order
	positions PositionIndex
	groups    [3]Window // column index ranges per pin group, in pin order
	rows      []Row
	spans     *SpanResolver
	byField   map[string]int
	shadowed  map[int]bool // leaves repeating an earlier field

	warnMu sync.Mutex
	warned map[string]bool
}

// Option configures New.
type Option func(*Grid)

// WithLayout applies layout options on top of DefaultLayout.
func WithLayout(opts ...LayoutOption) Option {
	return func(g *Grid) {
		for _, opt := range opts {
			opt(&g.cfg)
		}
	}
}

// WithConfig replaces the layout configuration.
func WithConfig(cfg LayoutConfig) Option {
	return func(g *Grid) { g.cfg = cfg }
}

// WithDefaults sets the column defaults.
func WithDefaults(d Defaults) Option {
	return func(g *Grid) { g.defaults = d }
}

// WithCallbacks sets the change callbacks.
func WithCallbacks(cb Callbacks) Option {
	return func(g *Grid) { g.cb = cb }
}

// WithLogger replaces the trace logger.
func WithLogger(l *ll.Logger) Option {
	return func(g *Grid) { g.log = l }
}

// New builds the grid geometry: defaults, validation, flattening, pin
// reordering, positions and pin groups. Configuration errors are logged;
// with Strict set they are returned instead.
func New(tree []ColumnDef, rows []Row, opts ...Option) (*Grid, error) {
	g := &Grid{
		cfg:      DefaultLayout(),
		defaults: StandardDefaults(),
		rows:     rows,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.log == nil {
		g.log = NewLogger(nil, g.cfg.Debug)
	}

	if err := Validate(tree); err != nil {
		if g.cfg.Strict {
			return nil, err
		}
		g.log.Errorf("column configuration: %v", err)
	}

	g.tree = ApplyDefaults(tree, g.defaults)
	g.columns = Reorder(Flatten(g.tree))
	g.positions = ComputePositions(g.columns)

	g.byField = make(map[string]int, len(g.columns))
	for i, c := range g.columns {
		if first, dup := g.byField[c.Field]; !dup {
			g.byField[c.Field] = i
		} else {
			if g.shadowed == nil {
				g.shadowed = make(map[int]bool)
			}
			g.shadowed[i] = true
			g.log.Errorf("column %q repeats field %q of column %q; its cells are not rendered", c.ID, c.Field, g.columns[first].ID)
		}
		g.groups[c.Pinned.rank()].End = i + 1
	}
	// empty groups collapse onto the end of the previous one
	prev := 0
	for i := range g.groups {
		if g.groups[i].End == 0 {
			g.groups[i].End = prev
		}
		g.groups[i].Start = prev
		prev = g.groups[i].End
	}

	g.spans = NewSpanResolver(rows, g.columns, g.cfg.ColumnSpanKey, g.defaults)
	if err := g.checkSpans(); err != nil && g.cfg.Strict {
		return nil, err
	}

	g.log.Debugf("grid built: %d leaves, %d header rows, %d rows", len(g.columns), g.positions.Depth(), len(rows))
	return g, nil
}

// Config returns the layout configuration.
func (g *Grid) Config() LayoutConfig { return g.cfg }

// Tree returns the column tree with defaults applied.
func (g *Grid) Tree() []ColumnDef { return g.tree }

// Columns returns the leaf columns in pin order.
func (g *Grid) Columns() []*Column { return g.columns }

// Positions returns the position index.
func (g *Grid) Positions() PositionIndex { return g.positions }

// Rows returns the dataset.
func (g *Grid) Rows() []Row { return g.rows }

// RowCount returns the number of rows.
func (g *Grid) RowCount() int { return len(g.rows) }

// ColumnCount returns the number of leaf columns.
func (g *Grid) ColumnCount() int { return len(g.columns) }

// Spans returns the span resolver.
func (g *Grid) Spans() *SpanResolver { return g.spans }

// Resolve returns the merged cell covering (row, col).
func (g *Grid) Resolve(row, col int) MergedCell { return g.spans.Resolve(row, col) }

// ColumnByField returns the first leaf with the given field.
func (g *Grid) ColumnByField(field string) (*Column, int, bool) {
	i, ok := g.byField[field]
	if !ok {
		return nil, -1, false
	}
	return g.columns[i], i, true
}

// Position returns a column's position. A miss is a state-consistency
// problem: it is logged once and the column is treated as unrenderable.
func (g *Grid) Position(c *Column) (Position, bool) {
	pos, ok := g.positions.Lookup(c)
	if !ok && c != nil {
		g.warnOnce("position:"+c.ID, "no position for column %q", c.ID)
	}
	return pos, ok
}

// PinGroup returns the column index range of a pin group.
func (g *Grid) PinGroup(p Pin) Window { return g.groups[p.rank()] }

// CellValue returns the rendered value of the merged cell at (row, col).
func (g *Grid) CellValue(row, col int) any {
	m := g.spans.Resolve(row, col)
	if m.Column == nil || g.shadowed[m.Anchor.Column] {
		return nil
	}
	return renderedValue(g.rows[m.Anchor.Row], m.Anchor.Row, m.Column)
}

// RowKey returns the identity edits for row are keyed by: the row id
// field when configured and present, otherwise the row index.
func (g *Grid) RowKey(row int) any {
	if g.cfg.RowIDField != "" && row >= 0 && row < len(g.rows) {
		if id, ok := g.rows[row][g.cfg.RowIDField]; ok && id != nil {
			return id
		}
	}
	return row
}

// checkSpans logs column spans that point outside the column set.
func (g *Grid) checkSpans() error {
	var first error
	for r := range g.rows {
		for _, sp := range g.spans.ColumnSpans(r) {
			if sp.From >= 0 && sp.From < len(g.columns) && sp.To >= sp.From {
				continue
			}
			err := errInvalidSpan(r, sp)
			g.log.Errorf("column configuration: %v", err)
			if first == nil {
				first = err
			}
		}
	}
	return first
}
