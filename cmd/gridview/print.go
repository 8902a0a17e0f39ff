package main

import (
	"cmp"
	"io"

	"github.com/olekukonko/tablewriter"

	grid "github.com/etsisk/cantal-sub000"
)

// printTable writes the cells visible in vp as a plain table. Span
// continuations print empty.
func printTable(w io.Writer, g *grid.Grid, vp grid.Viewport) error {
	v := g.View(vp)
	cols := v.Columns()
	table := tablewriter.NewTable(w)

	header := make([]any, len(cols))
	for i, c := range cols {
		col := g.Columns()[c]
		header[i] = cmp.Or(col.Label, col.Field)
	}
	table.Header(header...)

	for r := v.Rows.Start; r < v.Rows.End; r++ {
		line := make([]string, len(cols))
		for i, c := range cols {
			if g.Resolve(r, c).Anchor == (grid.Cell{Row: r, Column: c}) {
				line[i] = grid.DisplayText(g.CellValue(r, c))
			}
		}
		if err := table.Append(line); err != nil {
			return err
		}
	}
	return table.Render()
}
