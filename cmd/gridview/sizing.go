package main

import (
	grid "github.com/etsisk/cantal-sub000"
)

// autoWidth marks a column sized from its content.
var autoWidth = grid.Flex("auto")

const autoPadding = 2

// cellDefaults measures columns in terminal cells rather than pixels.
func cellDefaults() grid.Defaults {
	d := grid.StandardDefaults()
	d.Leaf.MinWidth = 3
	return d
}

// autoSize fixes the width of every auto-width leaf to its widest rendered
// value in rows.
func autoSize(tree []grid.ColumnDef, rows []grid.Row, opts []grid.Option) ([]grid.ColumnDef, error) {
	g, err := grid.New(tree, rows, opts...)
	if err != nil {
		return nil, err
	}
	for _, c := range g.Columns() {
		if c.Width != autoWidth {
			continue
		}
		tree, _, _ = grid.ResizeColumn(tree, c.Field, grid.AutoWidth(c, rows, autoPadding))
	}
	return tree, nil
}
