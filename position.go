package grid

// Position is a column's coordinate in the header grid.
//
// ColumnIndex is the 0-based leaf ordinal after pin reordering and
// ColumnIndexEnd is exclusive. PinnedIndex restarts at 1 in every pin
// group; PinnedIndexEnd is exclusive too. Level is the distance from the
// root (0 = top header row) and Depth the number of header rows overall,
// so a leaf header spans rows [Level, Depth).
type Position struct {
	ColumnIndex    int
	ColumnIndexEnd int
	PinnedIndex    int
	PinnedIndexEnd int
	Level          int
	Depth          int
	SubcolumnIndex int
}

// PositionIndex maps column ids (leaves and group records) to positions.
// It is built once per layout pass and only read afterwards.
type PositionIndex struct {
	byID   map[string]Position
	order  []*Column // leaves and groups in first-seen order
	depth  int
	leaves int
}

// ComputePositions assigns positions in one left-to-right pass over leaves
// that are already in pin order.
func ComputePositions(ordered []*Column) PositionIndex {
	depth := 1
	for _, c := range ordered {
		depth = max(depth, len(c.Ancestors)+1)
	}

	idx := PositionIndex{
		byID:   make(map[string]Position, len(ordered)),
		depth:  depth,
		leaves: len(ordered),
	}

	pinnedIndex := 0
	for i, leaf := range ordered {
		if i == 0 || leaf.Pinned != ordered[i-1].Pinned {
			pinnedIndex = 1
		} else {
			pinnedIndex++
		}

		for level, g := range leaf.Ancestors {
			if _, seen := idx.byID[g.Key()]; seen {
				continue
			}
			n := g.LeafCount()
			idx.byID[g.Key()] = Position{
				ColumnIndex:    i,
				ColumnIndexEnd: i + n,
				PinnedIndex:    pinnedIndex,
				PinnedIndexEnd: pinnedIndex + n,
				Level:          level,
				Depth:          depth,
				SubcolumnIndex: g.subIndex,
			}
			idx.order = append(idx.order, g)
		}

		idx.byID[leaf.Key()] = Position{
			ColumnIndex:    i,
			ColumnIndexEnd: i + 1,
			PinnedIndex:    pinnedIndex,
			PinnedIndexEnd: pinnedIndex + 1,
			Level:          len(leaf.Ancestors),
			Depth:          depth,
			SubcolumnIndex: leaf.subIndex,
		}
		idx.order = append(idx.order, leaf)
	}
	return idx
}

// Lookup returns the position recorded for a column.
func (p PositionIndex) Lookup(c *Column) (Position, bool) {
	if c == nil {
		return Position{}, false
	}
	pos, ok := p.byID[c.Key()]
	return pos, ok
}

// Depth is the number of header rows.
func (p PositionIndex) Depth() int { return p.depth }

// Len is the number of positioned leaves.
func (p PositionIndex) Len() int { return p.leaves }

// HeaderCell is one cell of the multi-row header.
type HeaderCell struct {
	Column   *Column
	Position Position
}

// HeaderRows groups header cells by the row they start on. A leaf with
// fewer ancestors than the deepest leaf starts higher and spans down to
// the last header row.
func (p PositionIndex) HeaderRows() [][]HeaderCell {
	rows := make([][]HeaderCell, p.depth)
	for _, c := range p.order {
		pos := p.byID[c.Key()]
		rows[pos.Level] = append(rows[pos.Level], HeaderCell{Column: c, Position: pos})
	}
	return rows
}
