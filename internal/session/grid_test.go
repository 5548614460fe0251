package session

import (
	"testing"

	"github.com/DucPPhan/parknow/internal/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGrid_Dimensions(t *testing.T) {
	slots := []api.Slot{
		{ID: 1, RowIndex: 0, ColumnIndex: 0},
		{ID: 2, RowIndex: 2, ColumnIndex: 3},
	}

	g := BuildGrid(slots)
	assert.Equal(t, 3, g.Rows)
	assert.Equal(t, 4, g.Cols)
}

func TestBuildGrid_GapCells(t *testing.T) {
	// A driving lane between two slots leaves a hole in the grid.
	slots := []api.Slot{
		{ID: 1, Label: "A1", RowIndex: 0, ColumnIndex: 0, IsAvailable: true},
		{ID: 2, Label: "A2", RowIndex: 0, ColumnIndex: 2, IsAvailable: true},
	}

	g := BuildGrid(slots)
	require.Equal(t, 1, g.Rows)
	require.Equal(t, 3, g.Cols)

	require.NotNil(t, g.At(0, 0))
	assert.Equal(t, "A1", g.At(0, 0).Label)
	assert.Nil(t, g.At(0, 1))
	require.NotNil(t, g.At(0, 2))
	assert.Equal(t, "A2", g.At(0, 2).Label)
}

func TestBuildGrid_Empty(t *testing.T) {
	g := BuildGrid(nil)
	assert.Equal(t, 0, g.Rows)
	assert.Equal(t, 0, g.Cols)
	assert.Nil(t, g.At(0, 0))
}

func TestBuildGrid_NegativeIndicesSkipped(t *testing.T) {
	slots := []api.Slot{
		{ID: 1, RowIndex: -1, ColumnIndex: 0},
		{ID: 2, RowIndex: 0, ColumnIndex: 0},
	}

	g := BuildGrid(slots)
	assert.Equal(t, 1, g.Rows)
	assert.Equal(t, 1, g.Cols)
	require.NotNil(t, g.At(0, 0))
	assert.Equal(t, int64(2), g.At(0, 0).ID)
}

func TestGrid_AtOutOfRange(t *testing.T) {
	g := BuildGrid([]api.Slot{{ID: 1, RowIndex: 0, ColumnIndex: 0}})
	assert.Nil(t, g.At(-1, 0))
	assert.Nil(t, g.At(0, 5))
	assert.Nil(t, g.At(5, 0))
}
