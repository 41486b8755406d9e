package manager

import (
	"bytes"
	"errors"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/warehouse-bins/internal/config"
	"github.com/ytget/warehouse-bins/internal/inventory"
	"github.com/ytget/warehouse-bins/internal/model"
	"github.com/ytget/warehouse-bins/internal/storage"
)

// recordingSaver keeps every snapshot it is asked to save
type recordingSaver struct {
	saves [][]model.Bin
	err   error
}

func (r *recordingSaver) Save(bins []model.Bin) error {
	if r.err != nil {
		return r.err
	}
	r.saves = append(r.saves, bins)
	return nil
}

func (r *recordingSaver) last() []model.Bin {
	if len(r.saves) == 0 {
		return nil
	}
	return r.saves[len(r.saves)-1]
}

// stubLoader returns a fixed result
type stubLoader struct {
	bins []model.Bin
	err  error
}

func (s stubLoader) Load() ([]model.Bin, error) {
	return s.bins, s.err
}

func newTestManager() (*Manager, *recordingSaver) {
	saver := &recordingSaver{}
	layout := config.DefaultLayout()
	return New(inventory.NewGrid(layout.Rows, layout.Cols, layout.Capacity), saver), saver
}

func selectedItems(t *testing.T, m *Manager) []model.Item {
	t.Helper()
	bin, ok := m.Selected()
	require.True(t, ok)
	return bin.Items
}

func TestMutationsRequireSelection(t *testing.T) {
	m, saver := newTestManager()

	assert.ErrorIs(t, m.AddItem("Widget", "5"), ErrNoBinSelected)
	assert.ErrorIs(t, m.DeleteItem(0, ""), ErrNoBinSelected)
	assert.ErrorIs(t, m.ClearBin(), ErrNoBinSelected)
	assert.Empty(t, saver.saves)
}

func TestSelectBin(t *testing.T) {
	m, saver := newTestManager()
	updates := 0
	m.SetUpdateCallback(func() { updates++ })

	require.NoError(t, m.SelectBin("B3"))
	assert.Equal(t, "B3", m.SelectedID())
	assert.Equal(t, 1, updates)

	// Reselecting is a no-op
	require.NoError(t, m.SelectBin("B3"))
	assert.Equal(t, 1, updates)

	assert.ErrorIs(t, m.SelectBin("Z1"), inventory.ErrBinNotFound)
	assert.Equal(t, "B3", m.SelectedID())

	assert.Empty(t, saver.saves, "selection never touches storage")
}

func TestAddItemSavesSnapshot(t *testing.T) {
	m, saver := newTestManager()
	require.NoError(t, m.SelectBin("A1"))

	require.NoError(t, m.AddItem(" Widget ", "5"))
	require.NoError(t, m.AddItem("widget", "3"))

	assert.Equal(t, []model.Item{{Name: "Widget", Qty: 8}}, selectedItems(t, m))
	require.Len(t, saver.saves, 2)
	assert.Equal(t, m.Collection().Bins(), saver.last())
}

func TestAddItemRejectsInvalidInput(t *testing.T) {
	m, saver := newTestManager()
	require.NoError(t, m.SelectBin("A1"))

	for _, input := range []struct{ name, qty string }{
		{"", "5"},
		{"   ", "5"},
		{"Widget", ""},
		{"Widget", "0"},
		{"Widget", "-2"},
		{"Widget", "abc"},
		{"Widget", "1.5"},
	} {
		err := m.AddItem(input.name, input.qty)
		assert.True(t, inventory.IsValidationError(err), "input %+v", input)
	}

	assert.Empty(t, selectedItems(t, m))
	assert.Empty(t, saver.saves)
}

func TestAddItemCapacityExceeded(t *testing.T) {
	m, saver := newTestManager()
	require.NoError(t, m.SelectBin("C2"))
	require.NoError(t, m.AddItem("Filler", "95"))
	before := m.Collection()

	err := m.AddItem("X", "10")
	assert.ErrorIs(t, err, inventory.ErrCapacityExceeded)
	assert.True(t, m.Collection().Equal(before))
	assert.Len(t, saver.saves, 1, "rejected add must not save")
}

func TestAddItemHugeQuantityIsRejected(t *testing.T) {
	m, saver := newTestManager()
	require.NoError(t, m.SelectBin("A1"))
	require.NoError(t, m.AddItem("Widget", "5"))

	err := m.AddItem("Gadget", "9223372036854775807")
	assert.ErrorIs(t, err, inventory.ErrCapacityExceeded)

	bin, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, []model.Item{{Name: "Widget", Qty: 5}}, bin.Items)
	assert.Equal(t, 5, bin.TotalQty())
	assert.Len(t, saver.saves, 1)
}

func TestDeleteItem(t *testing.T) {
	m, saver := newTestManager()
	require.NoError(t, m.SelectBin("D4"))
	require.NoError(t, m.AddItem("A", "1"))
	require.NoError(t, m.AddItem("B", "1"))
	require.NoError(t, m.AddItem("C", "1"))

	require.NoError(t, m.DeleteItem(1, ""))
	assert.Equal(t, []model.Item{{Name: "A", Qty: 1}, {Name: "C", Qty: 1}}, selectedItems(t, m))

	require.NoError(t, m.DeleteItem(1, "C"))
	assert.Equal(t, []model.Item{{Name: "A", Qty: 1}}, selectedItems(t, m))
	assert.Len(t, saver.saves, 5)

	// Out of range is rejected without a save
	assert.ErrorIs(t, m.DeleteItem(4, ""), inventory.ErrItemNotFound)
	assert.Len(t, saver.saves, 5)
}

func TestDeleteItemFallsBackToName(t *testing.T) {
	m, _ := newTestManager()
	require.NoError(t, m.SelectBin("D4"))
	require.NoError(t, m.AddItem("A", "1"))
	require.NoError(t, m.AddItem("B", "2"))

	var logs bytes.Buffer
	log.SetOutput(&logs)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	// Index 0 holds "A" but the row that was clicked showed "B"
	require.NoError(t, m.DeleteItem(0, "B"))
	assert.Equal(t, []model.Item{{Name: "A", Qty: 1}}, selectedItems(t, m))
	assert.Contains(t, logs.String(), `Deleted "B" from bin D4`)

	assert.ErrorIs(t, m.DeleteItem(0, "Z"), inventory.ErrItemNotFound)
}

func TestClearBin(t *testing.T) {
	m, saver := newTestManager()
	require.NoError(t, m.SelectBin("B2"))
	require.NoError(t, m.AddItem("Widget", "50"))

	require.NoError(t, m.ClearBin())
	require.NoError(t, m.ClearBin())

	assert.Empty(t, selectedItems(t, m))
	assert.Len(t, saver.saves, 3)
	assert.Equal(t, saver.saves[1], saver.saves[2])
}

func TestPersistErrorKeepsSessionAlive(t *testing.T) {
	m, saver := newTestManager()
	saver.err = storage.ErrQuotaExceeded

	var reported error
	m.SetPersistErrorHandler(func(err error) { reported = err })
	updates := 0
	m.SetUpdateCallback(func() { updates++ })

	require.NoError(t, m.SelectBin("A3"))
	require.NoError(t, m.AddItem("Widget", "4"))

	assert.ErrorIs(t, reported, storage.ErrQuotaExceeded)
	assert.Equal(t, []model.Item{{Name: "Widget", Qty: 4}}, selectedItems(t, m))
	assert.Equal(t, 2, updates)
}

func TestSearchQueryDoesNotMutate(t *testing.T) {
	m, saver := newTestManager()
	require.NoError(t, m.SelectBin("A2"))
	require.NoError(t, m.AddItem("Blue Widget", "10"))
	saves := len(saver.saves)

	m.SetSearchQuery("wid")
	assert.Equal(t, "wid", m.SearchQuery())
	assert.Len(t, saver.saves, saves)

	views := m.Views()
	assert.True(t, views[1].Highlighted, "A2 holds a match")
	assert.False(t, views[2].Highlighted, "A3 is empty")

	m.SetSearchQuery("")
	assert.False(t, m.Views()[1].Highlighted)
}

func TestViews(t *testing.T) {
	m, _ := newTestManager()
	require.NoError(t, m.SelectBin("A1"))
	require.NoError(t, m.AddItem("Widget", "100"))
	require.NoError(t, m.SelectBin("A2"))
	require.NoError(t, m.AddItem("Widget", "60"))

	views := m.Views()
	require.Len(t, views, 20)

	assert.Equal(t, BinView{
		ID: "A1", Total: 100, Capacity: 100, Status: model.BinStatusFull,
		Percentage: 100, Tier: model.FillTierHigh,
	}, views[0])
	assert.Equal(t, BinView{
		ID: "A2", Total: 60, Capacity: 100, Status: model.BinStatusPartial,
		Percentage: 60, Tier: model.FillTierMedium, Selected: true,
	}, views[1])
	assert.Equal(t, model.BinStatusEmpty, views[19].Status)
	assert.Equal(t, "D5", views[19].ID)
}

func TestLoadOrInit(t *testing.T) {
	layout := config.DefaultLayout()
	fresh := inventory.NewGrid(layout.Rows, layout.Cols, layout.Capacity)

	t.Run("nothing saved", func(t *testing.T) {
		c := LoadOrInit(stubLoader{err: storage.ErrNotFound}, layout)
		assert.True(t, c.Equal(fresh))
	})

	t.Run("corrupt snapshot", func(t *testing.T) {
		c := LoadOrInit(stubLoader{err: errors.Join(storage.ErrCorrupt, errors.New("bad json"))}, layout)
		assert.True(t, c.Equal(fresh))
	})

	t.Run("saved snapshot is trusted", func(t *testing.T) {
		var logs bytes.Buffer
		log.SetOutput(&logs)
		t.Cleanup(func() { log.SetOutput(os.Stderr) })

		saved := []model.Bin{{ID: "Z9", Items: []model.Item{{Name: "Crate", Qty: 2}}}}
		c := LoadOrInit(stubLoader{bins: saved}, layout)
		require.Equal(t, 1, c.Len())
		assert.Equal(t, saved[0], c.At(0))
		assert.Contains(t, logs.String(), "Saved snapshot has 1 bins, layout defines 20")
	})
}

func TestManagerWithBridgeRoundTrip(t *testing.T) {
	store := storage.NewMemoryStore()
	bridge := storage.NewBridge(store, config.StorageKey)
	layout := config.DefaultLayout()

	m := New(LoadOrInit(bridge, layout), bridge)
	require.NoError(t, m.SelectBin("C1"))
	require.NoError(t, m.AddItem("Widget", "5"))
	require.NoError(t, m.AddItem("Gadget", "7"))

	restarted := LoadOrInit(storage.NewBridge(store, config.StorageKey), layout)
	assert.True(t, restarted.Equal(m.Collection()))
}
