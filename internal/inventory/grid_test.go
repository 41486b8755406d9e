package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	grid := NewGrid(4, 5, 100)

	require.Equal(t, 20, grid.Len())
	assert.Equal(t, 100, grid.Capacity())

	expected := []string{
		"A1", "A2", "A3", "A4", "A5",
		"B1", "B2", "B3", "B4", "B5",
		"C1", "C2", "C3", "C4", "C5",
		"D1", "D2", "D3", "D4", "D5",
	}
	for i, id := range expected {
		bin := grid.At(i)
		assert.Equal(t, id, bin.ID)
		assert.NotNil(t, bin.Items)
		assert.Empty(t, bin.Items)
	}
}

func TestNewGridIsDeterministic(t *testing.T) {
	assert.True(t, NewGrid(4, 5, 100).Equal(NewGrid(4, 5, 100)))
	assert.False(t, NewGrid(4, 5, 100).Equal(NewGrid(5, 4, 100)))
}

func TestBinID(t *testing.T) {
	assert.Equal(t, "A1", BinID(0, 0))
	assert.Equal(t, "B3", BinID(1, 2))
	assert.Equal(t, "D5", BinID(3, 4))
	assert.Equal(t, "A10", BinID(0, 9))
}
