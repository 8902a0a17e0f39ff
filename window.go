package grid

// Window is the half-open index range [Start, End) of rows or columns
// materialized for rendering.
type Window struct {
	Start int
	End   int
}

// Len returns the number of indices in the window.
func (w Window) Len() int { return w.End - w.Start }

// Contains reports whether i is inside the window.
func (w Window) Contains(i int) bool { return i >= w.Start && i < w.End }

// full returns [0, count).
func full(count int) Window { return Window{0, max(count, 0)} }

// RowWindow computes the visible rows for a vertical scroll offset.
// Rows have a fixed height; out-of-range scroll offsets are clamped so the
// result never leaves [0, count) and is non-empty whenever count > 0.
func RowWindow(cfg LayoutConfig, scrollTop, viewportHeight, count int) Window {
	stride := cfg.RowHeight + cfg.RowGap
	if !cfg.VirtualizeRows || count <= 0 || stride <= 0 {
		return full(count)
	}
	start := floorDiv(scrollTop+cfg.RowGap, stride) - cfg.OverscanRows
	end := min(count-1, floorDiv(scrollTop+viewportHeight, stride)+cfg.OverscanRows) + 1
	return clampWindow(start, end, count)
}

// ColumnWindow computes the visible columns of one scrollable region.
// boundaries are the cumulative right edges of the region's columns (see
// Boundaries), scrollLeft the horizontal offset inside the region and
// viewportWidth the width left for it once pinned regions are excluded.
func ColumnWindow(boundaries []int, scrollLeft, viewportWidth, overscan int, virtualize bool) Window {
	count := len(boundaries)
	if !virtualize || count == 0 {
		return full(count)
	}

	start := count - 1
	for i, b := range boundaries {
		if b > scrollLeft {
			start = i
			break
		}
	}
	// a column whose right edge meets the limit exactly is the last one
	end := count
	limit := scrollLeft + viewportWidth
	for i := start; i < count; i++ {
		if boundaries[i] >= limit {
			end = i + 1
			break
		}
	}
	return clampWindow(start-overscan, end+overscan, count)
}

func clampWindow(start, end, count int) Window {
	end = clamp(end, 1, count)
	start = clamp(start, 0, end-1)
	return Window{start, end}
}
