package main

import (
	"github.com/BurntSushi/toml"
	"github.com/olekukonko/errors"

	grid "github.com/etsisk/cantal-sub000"
)

// fileConfig is the shape of a -config TOML file.
//
//	[layout]
//	column_gap = 1
//	overscan_rows = 4
//
//	[[column]]
//	field = "Host"
//	pin = "start"
//	width = "auto"
//
// width is a number of cells or "auto" to fit the widest value.
type fileConfig struct {
	Layout  layoutConfig   `toml:"layout"`
	Columns []columnConfig `toml:"column"`
}

type layoutConfig struct {
	RowGap          *int   `toml:"row_gap"`
	ColumnGap       *int   `toml:"column_gap"`
	DefaultWidth    *int   `toml:"default_width"`
	OverscanRows    *int   `toml:"overscan_rows"`
	OverscanColumns *int   `toml:"overscan_columns"`
	RowIDField      string `toml:"row_id_field"`
	Strict          bool   `toml:"strict"`
}

type columnConfig struct {
	Field       string         `toml:"field"`
	Label       string         `toml:"label"`
	Width       string         `toml:"width"`
	MinWidth    int            `toml:"min_width"`
	Pin         string         `toml:"pin"`
	Render      string         `toml:"render"`
	Editable    *bool          `toml:"editable"`
	Sortable    *bool          `toml:"sortable"`
	RowSpanning *bool          `toml:"row_spanning"`
	Columns     []columnConfig `toml:"column"`
}

func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Newf("read %s", path).Wrap(err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return cfg, errors.Newf("%s: unknown keys %v", path, keys)
	}
	return cfg, nil
}

func (l layoutConfig) options() []grid.LayoutOption {
	cfg := grid.DefaultLayout()
	var opts []grid.LayoutOption
	if l.RowGap != nil {
		opts = append(opts, grid.RowHeight(cfg.RowHeight, *l.RowGap))
	}
	if l.ColumnGap != nil {
		opts = append(opts, grid.ColumnGap(*l.ColumnGap))
	}
	if l.DefaultWidth != nil {
		opts = append(opts, grid.DefaultWidth(*l.DefaultWidth))
	}
	rows, cols := cfg.OverscanRows, cfg.OverscanColumns
	if l.OverscanRows != nil {
		rows = *l.OverscanRows
	}
	if l.OverscanColumns != nil {
		cols = *l.OverscanColumns
	}
	opts = append(opts, grid.Overscan(rows, cols))
	if l.RowIDField != "" {
		opts = append(opts, grid.RowIDField(l.RowIDField))
	}
	return append(opts, grid.Strict(l.Strict))
}

func columnTree(cols []columnConfig) ([]grid.ColumnDef, error) {
	out := make([]grid.ColumnDef, 0, len(cols))
	for _, c := range cols {
		def := grid.ColumnDef{
			Field:    c.Field,
			Label:    c.Label,
			Width:    grid.ParseWidth(c.Width),
			MinWidth: c.MinWidth,
		}
		switch c.Pin {
		case "", "none":
		case "start":
			def.Pinned = grid.PinStart
		case "end":
			def.Pinned = grid.PinEnd
		default:
			return nil, errors.Newf("column %q: unknown pin %q", c.Field, c.Pin)
		}
		if c.Editable != nil {
			def.Editable = grid.Static(*c.Editable)
		}
		if c.Sortable != nil {
			def.Sortable = grid.Static(*c.Sortable)
		}
		if c.RowSpanning != nil {
			def.RowSpanning = grid.Static(*c.RowSpanning)
		}
		if c.Render != "" {
			r, p, err := renderer(c.Render)
			if err != nil {
				return nil, errors.Newf("column %q", c.Field).Wrap(err)
			}
			def.ValueRenderer, def.ValueParser = r, p
		}
		if len(c.Columns) > 0 {
			sub, err := columnTree(c.Columns)
			if err != nil {
				return nil, err
			}
			def.Subcolumns = sub
		}
		out = append(out, def)
	}
	return out, nil
}

func renderer(name string) (grid.ValueRenderer, grid.ValueParser, error) {
	switch name {
	case "number":
		return grid.Number(0), grid.ParseNumber, nil
	case "decimal":
		return grid.Number(2), grid.ParseNumber, nil
	case "currency":
		return grid.Currency("$", 2), grid.ParseNumber, nil
	case "percent":
		return grid.Percent(1), grid.ParseNumber, nil
	case "bytes":
		return grid.Bytes(), grid.ParseNumber, nil
	case "bool":
		return grid.Bool("yes", "no"), nil, nil
	}
	return nil, nil, errors.Newf("unknown renderer %q", name)
}
