package grid

import (
	"cmp"
	"sort"

	"github.com/mattn/go-runewidth"
)

// WidthOf returns a column's pixel width, never below its MinWidth.
// fixed is false for flexible widths, in which case px is MinWidth.
func WidthOf(c *Column, defaultWidth int) (px int, fixed bool) {
	if c.Width.IsZero() {
		return max(defaultWidth, c.MinWidth), true
	}
	w, ok := c.Width.Fixed()
	if !ok {
		return c.MinWidth, false
	}
	return max(w, c.MinWidth), true
}

// CanvasWidth sums the column widths and the gaps between them. ok is
// false when any width is flexible; the renderer then sizes the canvas.
func CanvasWidth(cols []*Column, gap, defaultWidth int) (width int, ok bool) {
	for _, c := range cols {
		w, fixed := WidthOf(c, defaultWidth)
		if !fixed {
			return 0, false
		}
		width += w
	}
	if len(cols) > 1 {
		width += gap * (len(cols) - 1)
	}
	return width, true
}

// PinnedOffset is the width taken by a pinned region: its column widths
// plus the gaps inside it. Flexible widths count as their MinWidth.
func PinnedOffset(pinned []*Column, gap, defaultWidth int) int {
	if len(pinned) == 0 {
		return 0
	}
	total := gap * (len(pinned) - 1)
	for _, c := range pinned {
		w, _ := WidthOf(c, defaultWidth)
		total += w
	}
	return total
}

// Boundaries returns the cumulative right edge of every column, measured
// from the left edge of the first one.
func Boundaries(cols []*Column, gap, defaultWidth int) []int {
	out := make([]int, len(cols))
	x := 0
	for i, c := range cols {
		if i > 0 {
			x += gap
		}
		w, _ := WidthOf(c, defaultWidth)
		x += w
		out[i] = x
	}
	return out
}

// ColumnAtOffset returns the index of the column under x, or -1 when x lies
// outside [0, last boundary). Gaps belong to the column on their right.
func ColumnAtOffset(boundaries []int, x int) int {
	if x < 0 || len(boundaries) == 0 || x >= boundaries[len(boundaries)-1] {
		return -1
	}
	return sort.Search(len(boundaries), func(i int) bool { return boundaries[i] > x })
}

// RowAtOffset returns the row under y (measured from the top of the body),
// clamped to [0, count). It returns -1 when there are no rows.
func RowAtOffset(cfg LayoutConfig, y, count int) int {
	if count == 0 {
		return -1
	}
	stride := cfg.RowHeight + cfg.RowGap
	if stride <= 0 {
		return 0
	}
	return clamp(floorDiv(y, stride), 0, count-1)
}

// AutoWidth measures the display width of the header text (the label, or
// the field when unlabeled) and the rendered values of rows, and returns
// the widest plus padding, at least c.MinWidth.
func AutoWidth(c *Column, rows []Row, padding int) int {
	w := runewidth.StringWidth(cmp.Or(c.Label, c.Field))
	for i, row := range rows {
		w = max(w, runewidth.StringWidth(DisplayText(renderedValue(row, i, c))))
	}
	return max(w+padding, c.MinWidth)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
