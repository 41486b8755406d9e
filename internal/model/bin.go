package model

import (
	"strings"
)

// Item is a named quantity stored in a bin. Names compare case-insensitively.
type Item struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

// Bin is a storage slot identified by rack letter and column number (e.g. "B3")
type Bin struct {
	ID    string `json:"id"`
	Items []Item `json:"items"`
}

// NewBin creates an empty bin
func NewBin(id string) Bin {
	return Bin{ID: id, Items: []Item{}}
}

// Clone returns a copy of the bin that shares no memory with the original
func (b Bin) Clone() Bin {
	items := make([]Item, len(b.Items))
	copy(items, b.Items)
	return Bin{ID: b.ID, Items: items}
}

// TotalQty returns the sum of all item quantities
func (b Bin) TotalQty() int {
	total := 0
	for _, item := range b.Items {
		total += item.Qty
	}
	return total
}

// IsEmpty returns true if the bin holds no items
func (b Bin) IsEmpty() bool {
	return len(b.Items) == 0
}

// Status classifies the bin against capacity. Exactly at capacity counts as full.
func (b Bin) Status(capacity int) BinStatus {
	total := b.TotalQty()
	switch {
	case total == 0:
		return BinStatusEmpty
	case total >= capacity:
		return BinStatusFull
	default:
		return BinStatusPartial
	}
}

// FillPercentage returns 100 * total / capacity. It is not clamped.
func (b Bin) FillPercentage(capacity int) float64 {
	if capacity <= 0 {
		return 0
	}
	return float64(b.TotalQty()) * 100 / float64(capacity)
}

// FillTier returns the visual tier for the bin's fill percentage
func (b Bin) FillTier(capacity int) FillTier {
	return TierFor(b.FillPercentage(capacity))
}

// IndexOf returns the position of the item whose name matches case-insensitively, or -1
func (b Bin) IndexOf(name string) int {
	for i, item := range b.Items {
		if strings.EqualFold(item.Name, name) {
			return i
		}
	}
	return -1
}

// MatchesSearch reports whether any item name contains query, ignoring case.
// An empty query matches nothing so highlighting stays off.
func (b Bin) MatchesSearch(query string) bool {
	if query == "" {
		return false
	}

	needle := strings.ToLower(query)
	for _, item := range b.Items {
		if strings.Contains(strings.ToLower(item.Name), needle) {
			return true
		}
	}
	return false
}
