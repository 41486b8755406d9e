package inventory

import (
	"strconv"

	"github.com/ytget/warehouse-bins/internal/model"
)

// FirstRackLetter is the letter of the first rack row
const FirstRackLetter = 'A'

// BinID builds the identifier for the bin at a zero-based row and column, e.g. (1, 2) -> "B3"
func BinID(row, col int) string {
	return string(rune(FirstRackLetter+row)) + strconv.Itoa(col+1)
}

// NewGrid generates rows*cols empty bins in row-major order
func NewGrid(rows, cols, capacity int) Collection {
	bins := make([]model.Bin, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			bins = append(bins, model.NewBin(BinID(r, c)))
		}
	}
	return Collection{bins: bins, capacity: capacity}
}
