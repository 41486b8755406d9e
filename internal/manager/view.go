package manager

import (
	"github.com/ytget/warehouse-bins/internal/model"
)

// BinView is the render model of one bin tile
type BinView struct {
	ID          string
	Total       int
	Capacity    int
	Status      model.BinStatus
	Percentage  float64
	Tier        model.FillTier
	Selected    bool
	Highlighted bool
}

// Views derives the render model of every bin in grid order
func (m *Manager) Views() []BinView {
	capacity := m.bins.Capacity()
	views := make([]BinView, 0, m.bins.Len())

	for i := 0; i < m.bins.Len(); i++ {
		views = append(views, newBinView(m.bins.At(i), capacity, m.selected, m.search))
	}
	return views
}

func newBinView(bin model.Bin, capacity int, selected, search string) BinView {
	percentage := bin.FillPercentage(capacity)
	return BinView{
		ID:          bin.ID,
		Total:       bin.TotalQty(),
		Capacity:    capacity,
		Status:      bin.Status(capacity),
		Percentage:  percentage,
		Tier:        model.TierFor(percentage),
		Selected:    bin.ID == selected,
		Highlighted: bin.MatchesSearch(search),
	}
}
