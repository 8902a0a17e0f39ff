package grid

// LayoutConfig carries the geometry and behavior settings shared by every
// computation of a grid. It is a value; nothing mutates it after New.
type LayoutConfig struct {
	RowHeight       int
	HeaderRowHeight int
	RowGap          int
	ColumnGap       int
	DefaultWidth    int

	OverscanRows    int
	OverscanColumns int

	VirtualizeRows    bool
	VirtualizeColumns bool

	// RowIDField names the row field used to key edits. Empty keys edits by
	// row index.
	RowIDField string

	// ColumnSpanKey is the row field holding []ColumnSpan declarations.
	ColumnSpanKey string

	// Strict turns configuration errors into errors returned from New.
	Strict bool
	Debug  bool
}

// DefaultLayout returns the settings used when no options are given.
func DefaultLayout() LayoutConfig {
	return LayoutConfig{
		RowHeight:         1,
		HeaderRowHeight:   1,
		RowGap:            0,
		ColumnGap:         1,
		DefaultWidth:      12,
		OverscanRows:      2,
		OverscanColumns:   1,
		VirtualizeRows:    true,
		VirtualizeColumns: true,
		ColumnSpanKey:     "columnSpans",
	}
}

// LayoutOption tweaks a LayoutConfig.
type LayoutOption func(*LayoutConfig)

// NewLayout builds a LayoutConfig from the defaults and opts.
func NewLayout(opts ...LayoutOption) LayoutConfig {
	cfg := DefaultLayout()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// RowHeight sets the fixed row height and the gap between rows.
func RowHeight(height, gap int) LayoutOption {
	return func(c *LayoutConfig) {
		c.RowHeight = height
		c.RowGap = gap
	}
}

// HeaderRowHeight sets the height of one header row.
func HeaderRowHeight(h int) LayoutOption {
	return func(c *LayoutConfig) { c.HeaderRowHeight = h }
}

// ColumnGap sets the spacing between columns.
func ColumnGap(gap int) LayoutOption {
	return func(c *LayoutConfig) { c.ColumnGap = gap }
}

// DefaultWidth sets the width of columns that do not declare one.
func DefaultWidth(w int) LayoutOption {
	return func(c *LayoutConfig) { c.DefaultWidth = w }
}

// Overscan sets how many extra rows and columns are materialized around
// the viewport.
func Overscan(rows, columns int) LayoutOption {
	return func(c *LayoutConfig) {
		c.OverscanRows = rows
		c.OverscanColumns = columns
	}
}

// Virtualize toggles virtualization per axis.
func Virtualize(rows, columns bool) LayoutOption {
	return func(c *LayoutConfig) {
		c.VirtualizeRows = rows
		c.VirtualizeColumns = columns
	}
}

// RowIDField keys edits by the named row field instead of the row index.
func RowIDField(field string) LayoutOption {
	return func(c *LayoutConfig) { c.RowIDField = field }
}

// ColumnSpanKey names the row field holding column-span declarations.
func ColumnSpanKey(key string) LayoutOption {
	return func(c *LayoutConfig) { c.ColumnSpanKey = key }
}

// Strict makes New fail on configuration errors instead of logging them.
func Strict(on bool) LayoutOption {
	return func(c *LayoutConfig) { c.Strict = on }
}

// Debug enables the engine's trace logger.
func Debug(on bool) LayoutOption {
	return func(c *LayoutConfig) { c.Debug = on }
}
