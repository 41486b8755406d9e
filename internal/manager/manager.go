package manager

import (
	"errors"
	"fmt"
	"log"

	"github.com/ytget/warehouse-bins/internal/config"
	"github.com/ytget/warehouse-bins/internal/inventory"
	"github.com/ytget/warehouse-bins/internal/model"
	"github.com/ytget/warehouse-bins/internal/storage"
)

// ErrNoBinSelected is returned by mutations when no bin has focus
var ErrNoBinSelected = errors.New("no bin selected")

// Saver persists a full bin snapshot
type Saver interface {
	Save(bins []model.Bin) error
}

// Loader reads a previously saved bin snapshot
type Loader interface {
	Load() ([]model.Bin, error)
}

// Manager drives bin selection, search and item mutations
type Manager struct {
	bins     inventory.Collection
	selected string
	search   string
	saver    Saver

	onUpdate       func()
	onPersistError func(error)
}

// New creates a manager over an initial collection
func New(bins inventory.Collection, saver Saver) *Manager {
	return &Manager{
		bins:  bins,
		saver: saver,
	}
}

// LoadOrInit returns the saved collection, or a fresh grid when nothing usable is stored.
// Corrupt or unreadable snapshots are logged and replaced by the fresh grid.
func LoadOrInit(loader Loader, layout config.Layout) inventory.Collection {
	bins, err := loader.Load()
	switch {
	case err == nil:
		log.Printf("Loaded %d bins from storage", len(bins))
		if len(bins) != layout.BinCount() {
			log.Printf("Saved snapshot has %d bins, layout defines %d; keeping the saved bins", len(bins), layout.BinCount())
		}
		return inventory.NewCollection(bins, layout.Capacity)
	case errors.Is(err, storage.ErrNotFound):
		log.Printf("No saved bins, generating %dx%d grid", layout.Rows, layout.Cols)
	default:
		log.Printf("Failed to load saved bins, starting from a fresh grid: %v", err)
	}
	return inventory.NewGrid(layout.Rows, layout.Cols, layout.Capacity)
}

// SetUpdateCallback sets the function called after any state change
func (m *Manager) SetUpdateCallback(callback func()) {
	m.onUpdate = callback
}

// SetPersistErrorHandler sets the function called when saving fails
func (m *Manager) SetPersistErrorHandler(handler func(error)) {
	m.onPersistError = handler
}

// Collection returns the current snapshot
func (m *Manager) Collection() inventory.Collection {
	return m.bins
}

// SelectBin focuses a bin. The collection is not modified.
func (m *Manager) SelectBin(binID string) error {
	if !m.bins.Has(binID) {
		return fmt.Errorf("%w: %s", inventory.ErrBinNotFound, binID)
	}
	if m.selected == binID {
		return nil
	}
	m.selected = binID
	m.notifyUpdate()
	return nil
}

// SelectedID returns the focused bin id, or ""
func (m *Manager) SelectedID() string {
	return m.selected
}

// Selected returns the focused bin
func (m *Manager) Selected() (model.Bin, bool) {
	if m.selected == "" {
		return model.Bin{}, false
	}
	return m.bins.Bin(m.selected)
}

// SetSearchQuery updates the live search filter
func (m *Manager) SetSearchQuery(query string) {
	if m.search == query {
		return
	}
	m.search = query
	m.notifyUpdate()
}

// SearchQuery returns the active search filter
func (m *Manager) SearchQuery() string {
	return m.search
}

// AddItem parses the name and quantity text and adds the item to the selected bin
func (m *Manager) AddItem(nameText, qtyText string) error {
	if m.selected == "" {
		return ErrNoBinSelected
	}

	name, err := inventory.NormalizeName(nameText)
	if err != nil {
		return err
	}
	qty, err := inventory.ParseQuantity(qtyText)
	if err != nil {
		return err
	}

	next, err := m.bins.AddItem(m.selected, name, qty)
	if err != nil {
		return err
	}

	log.Printf("Added %d x %q to bin %s", qty, name, m.selected)
	m.commit(next)
	return nil
}

// DeleteItem removes the item at index from the selected bin.
// When expectedName is set and the item at index no longer carries that name,
// the item is located by name instead.
func (m *Manager) DeleteItem(index int, expectedName string) error {
	if m.selected == "" {
		return ErrNoBinSelected
	}

	bin, ok := m.bins.Bin(m.selected)
	if !ok {
		return fmt.Errorf("%w: %s", inventory.ErrBinNotFound, m.selected)
	}

	var (
		next inventory.Collection
		err  error
	)
	removed := expectedName
	if expectedName != "" && (index < 0 || index >= len(bin.Items) || bin.Items[index].Name != expectedName) {
		next, err = m.bins.DeleteItemNamed(m.selected, expectedName)
	} else {
		next, err = m.bins.DeleteItem(m.selected, index)
		if err == nil {
			removed = bin.Items[index].Name
		}
	}
	if err != nil {
		return err
	}

	log.Printf("Deleted %q from bin %s", removed, m.selected)
	m.commit(next)
	return nil
}

// ClearBin empties the selected bin
func (m *Manager) ClearBin() error {
	if m.selected == "" {
		return ErrNoBinSelected
	}

	next, err := m.bins.ClearBin(m.selected)
	if err != nil {
		return err
	}

	log.Printf("Cleared bin %s", m.selected)
	m.commit(next)
	return nil
}

// commit installs the new snapshot and persists it. A failed save keeps the
// in-memory snapshot so the session continues.
func (m *Manager) commit(next inventory.Collection) {
	m.bins = next

	if m.saver != nil {
		if err := m.saver.Save(next.Bins()); err != nil {
			log.Printf("Error saving bins, continuing in memory: %v", err)
			if m.onPersistError != nil {
				m.onPersistError(err)
			}
		}
	}

	m.notifyUpdate()
}

// notifyUpdate calls the update callback if set
func (m *Manager) notifyUpdate() {
	if m.onUpdate != nil {
		m.onUpdate()
	}
}
