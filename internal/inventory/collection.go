package inventory

import (
	"fmt"
	"reflect"

	"github.com/ytget/warehouse-bins/internal/model"
)

// Collection is an immutable, ordered set of bins with a shared per-bin capacity.
// Operations return a new Collection; bins they do not touch are shared with the receiver.
type Collection struct {
	bins     []model.Bin
	capacity int
}

// NewCollection wraps loaded bins. The shape is trusted as-is; nil item lists become empty.
func NewCollection(bins []model.Bin, capacity int) Collection {
	owned := make([]model.Bin, len(bins))
	for i, bin := range bins {
		owned[i] = bin.Clone()
	}
	return Collection{bins: owned, capacity: capacity}
}

// Capacity returns the per-bin capacity
func (c Collection) Capacity() int {
	return c.capacity
}

// Len returns the number of bins
func (c Collection) Len() int {
	return len(c.bins)
}

// At returns a copy of the bin at position i
func (c Collection) At(i int) model.Bin {
	return c.bins[i].Clone()
}

// Bin returns a copy of the bin with the given id
func (c Collection) Bin(id string) (model.Bin, bool) {
	idx := c.indexOf(id)
	if idx < 0 {
		return model.Bin{}, false
	}
	return c.bins[idx].Clone(), true
}

// Has reports whether a bin with the given id exists
func (c Collection) Has(id string) bool {
	return c.indexOf(id) >= 0
}

// Bins returns a deep copy of all bins in order
func (c Collection) Bins() []model.Bin {
	out := make([]model.Bin, len(c.bins))
	for i, bin := range c.bins {
		out[i] = bin.Clone()
	}
	return out
}

// Equal reports whether both collections hold the same bins and capacity
func (c Collection) Equal(other Collection) bool {
	return c.capacity == other.capacity && reflect.DeepEqual(c.bins, other.bins)
}

// AddItem adds qty of name to a bin. An existing item with the same name (ignoring case)
// is merged in place and keeps its original spelling; otherwise the item is appended.
func (c Collection) AddItem(binID, name string, qty int) (Collection, error) {
	if name == "" {
		return c, &ValidationError{Field: FieldName, Reason: "required"}
	}
	if qty <= 0 {
		return c, &ValidationError{Field: FieldQuantity, Reason: "must be positive"}
	}

	idx := c.indexOf(binID)
	if idx < 0 {
		return c, fmt.Errorf("%w: %s", ErrBinNotFound, binID)
	}

	bin := c.bins[idx]
	total := bin.TotalQty()
	if qty > c.capacity-total {
		return c, fmt.Errorf("%w: bin %s holds %d of %d, cannot add %d",
			ErrCapacityExceeded, binID, total, c.capacity, qty)
	}

	updated := bin.Clone()
	if existing := updated.IndexOf(name); existing >= 0 {
		updated.Items[existing].Qty += qty
	} else {
		updated.Items = append(updated.Items, model.Item{Name: name, Qty: qty})
	}

	return c.replace(idx, updated), nil
}

// DeleteItem removes the item at index; later items shift down by one
func (c Collection) DeleteItem(binID string, index int) (Collection, error) {
	idx := c.indexOf(binID)
	if idx < 0 {
		return c, fmt.Errorf("%w: %s", ErrBinNotFound, binID)
	}

	bin := c.bins[idx]
	if index < 0 || index >= len(bin.Items) {
		return c, fmt.Errorf("%w: index %d in bin %s", ErrItemNotFound, index, binID)
	}

	items := make([]model.Item, 0, len(bin.Items)-1)
	items = append(items, bin.Items[:index]...)
	items = append(items, bin.Items[index+1:]...)

	return c.replace(idx, model.Bin{ID: bin.ID, Items: items}), nil
}

// DeleteItemNamed removes the item whose name matches case-insensitively
func (c Collection) DeleteItemNamed(binID, name string) (Collection, error) {
	bin, ok := c.Bin(binID)
	if !ok {
		return c, fmt.Errorf("%w: %s", ErrBinNotFound, binID)
	}

	index := bin.IndexOf(name)
	if index < 0 {
		return c, fmt.Errorf("%w: %q in bin %s", ErrItemNotFound, name, binID)
	}
	return c.DeleteItem(binID, index)
}

// ClearBin empties a bin unconditionally
func (c Collection) ClearBin(binID string) (Collection, error) {
	idx := c.indexOf(binID)
	if idx < 0 {
		return c, fmt.Errorf("%w: %s", ErrBinNotFound, binID)
	}
	return c.replace(idx, model.NewBin(binID)), nil
}

// replace returns a new collection with the bin at idx swapped out
func (c Collection) replace(idx int, bin model.Bin) Collection {
	bins := make([]model.Bin, len(c.bins))
	copy(bins, c.bins)
	bins[idx] = bin
	return Collection{bins: bins, capacity: c.capacity}
}

func (c Collection) indexOf(id string) int {
	for i, bin := range c.bins {
		if bin.ID == id {
			return i
		}
	}
	return -1
}
