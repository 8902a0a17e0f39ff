// gridview browses a synthetic host inventory in a virtualized grid.
//
// Usage:
//
//	gridview [-config layout.toml] [-rows 500] [-seed 1] [-print] [-log trace.log]
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	grid "github.com/etsisk/cantal-sub000"
)

var (
	configPath = flag.String("config", "", "TOML file with layout and column definitions")
	rowCount   = flag.Int("rows", 500, "number of synthetic rows")
	seed       = flag.Uint64("seed", 1, "random seed for synthetic rows")
	printOnly  = flag.Bool("print", false, "print the first screen as a table and exit")
	logPath    = flag.String("log", "", "write engine trace logs to this file")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "gridview:", err)
		os.Exit(1)
	}
}

func run() error {
	tree := defaultColumns()
	var layout []grid.LayoutOption
	if *configPath != "" {
		cfg, err := loadConfig(*configPath)
		if err != nil {
			return err
		}
		if len(cfg.Columns) > 0 {
			if tree, err = columnTree(cfg.Columns); err != nil {
				return err
			}
		}
		layout = cfg.Layout.options()
	}

	opts := []grid.Option{grid.WithLayout(layout...), grid.WithDefaults(cellDefaults())}
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			return err
		}
		defer f.Close()
		opts = append(opts, grid.WithLogger(grid.NewLogger(f, true)))
	}

	rows, err := syntheticRows(*rowCount, tree, *seed)
	if err != nil {
		return err
	}
	if tree, err = autoSize(tree, rows, opts); err != nil {
		return err
	}

	m, err := newModel(tree, rows, opts)
	if err != nil {
		return err
	}

	if *printOnly {
		width, height := 120, 30
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		return printTable(os.Stdout, m.grid, grid.Viewport{Width: width, Height: height})
	}

	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}
