package main

import (
	"fmt"
	"math/rand/v2"

	grid "github.com/etsisk/cantal-sub000"
)

type host struct {
	ID       int
	Region   string
	Host     string
	CPU      float64
	Mem      int64
	Requests int
	Healthy  bool
	Owner    string
}

var regionNames = []string{"ap-south", "eu-central", "eu-west", "us-east", "us-west"}

func defaultColumns() []grid.ColumnDef {
	return []grid.ColumnDef{
		{Field: "ID", Label: "#", Width: grid.Px(6), Pinned: grid.PinStart, Sortable: grid.Static(true)},
		{Field: "Region", Width: grid.Px(12), RowSpanning: grid.Static(true), Sortable: grid.Static(true)},
		{Field: "Host", Width: autoWidth, Editable: grid.Static(true)},
		{Label: "Usage", Subcolumns: []grid.ColumnDef{
			{Field: "CPU", Width: grid.Px(8), ValueRenderer: grid.Percent(1), ValueParser: grid.ParseNumber,
				Editable: grid.Static(true), Sortable: grid.Static(true)},
			{Field: "Mem", Width: grid.Px(10), ValueRenderer: grid.Bytes(), ValueParser: grid.ParseNumber,
				Editable: grid.Static(true), Sortable: grid.Static(true)},
			{Field: "Requests", Width: grid.Px(10), ValueRenderer: grid.Number(0), ValueParser: grid.ParseNumber,
				Editable: grid.Static(true), Sortable: grid.Static(true)},
		}},
		{Field: "Owner", Width: autoWidth, Editable: grid.Dynamic(func(ctx grid.CellContext) bool {
			return ctx.Row.Value("Healthy") == true
		})},
		{Field: "Healthy", Label: "OK", Width: grid.Px(4), Pinned: grid.PinEnd, ValueRenderer: grid.Bool("✓", "✗")},
	}
}

var owners = []string{"core", "edge", "data", "infra"}

// syntheticRows generates n hosts grouped by region. Every 13th host is
// drained and shows a note spanning the usage columns.
func syntheticRows(n int, tree []grid.ColumnDef, seed uint64) ([]grid.Row, error) {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	hosts := make([]host, n)
	for i := range hosts {
		region := regionNames[i*len(regionNames)/max(n, 1)]
		hosts[i] = host{
			ID:       i + 1,
			Region:   region,
			Host:     fmt.Sprintf("%s-%03d", region[:2], i),
			CPU:      rng.Float64() * 100,
			Mem:      rng.Int64N(64 << 30),
			Requests: rng.IntN(2_000_000),
			Healthy:  rng.IntN(10) > 0,
			Owner:    owners[rng.IntN(len(owners))],
		}
	}
	rows, err := grid.RowsFromStructs(hosts)
	if err != nil {
		return nil, err
	}

	from, to, ok := usageSpan(tree)
	if !ok {
		return rows, nil
	}
	for i, row := range rows {
		if i%13 != 12 {
			continue
		}
		row["Note"] = "drained for maintenance"
		row[grid.DefaultLayout().ColumnSpanKey] = []grid.ColumnSpan{{Field: "Note", From: from, To: to}}
	}
	return rows, nil
}

// usageSpan finds the ordered column range covering CPU through Requests.
func usageSpan(tree []grid.ColumnDef) (from, to int, ok bool) {
	from, to = -1, -1
	for i, c := range grid.Reorder(grid.Flatten(tree)) {
		switch c.Field {
		case "CPU":
			from = i
		case "Requests":
			to = i
		}
	}
	return from, to, from >= 0 && to >= from
}
