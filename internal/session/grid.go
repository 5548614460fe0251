package session

import "github.com/DucPPhan/parknow/internal/api"

// Grid is the row-major layout of a lot's slots. Cells without a backing
// slot are nil and render as inert spacers, so the visual map stays stable
// even when the backend's row/column index space has gaps.
type Grid struct {
	Rows  int
	Cols  int
	Cells [][]*api.Slot
}

// BuildGrid places each slot at its [rowIndex][columnIndex] cell. The grid
// dimensions are (max row + 1) x (max column + 1) over the input; an empty
// input yields a zero-size grid.
func BuildGrid(slots []api.Slot) Grid {
	if len(slots) == 0 {
		return Grid{}
	}

	maxRow, maxCol := 0, 0
	for _, s := range slots {
		if s.RowIndex > maxRow {
			maxRow = s.RowIndex
		}
		if s.ColumnIndex > maxCol {
			maxCol = s.ColumnIndex
		}
	}

	g := Grid{
		Rows:  maxRow + 1,
		Cols:  maxCol + 1,
		Cells: make([][]*api.Slot, maxRow+1),
	}
	for i := range g.Cells {
		g.Cells[i] = make([]*api.Slot, maxCol+1)
	}
	for i := range slots {
		s := &slots[i]
		if s.RowIndex < 0 || s.ColumnIndex < 0 {
			continue
		}
		g.Cells[s.RowIndex][s.ColumnIndex] = s
	}
	return g
}

// At returns the slot at the given cell, or nil for gap cells and
// out-of-range positions.
func (g Grid) At(row, col int) *api.Slot {
	if row < 0 || row >= g.Rows || col < 0 || col >= g.Cols {
		return nil
	}
	return g.Cells[row][col]
}
