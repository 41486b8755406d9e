package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"github.com/ytget/warehouse-bins/internal/manager"
	"github.com/ytget/warehouse-bins/internal/model"
)

func TestBinTile_Tapped(t *testing.T) {
	test.NewApp()
	var tapped string
	tile := NewBinTile(manager.BinView{ID: "C1", Capacity: 100}, func(id string) { tapped = id })

	test.Tap(tile)

	if tapped != "C1" {
		t.Errorf("Expected tap callback with C1, got %q", tapped)
	}
}

func TestBinTile_Render(t *testing.T) {
	test.NewApp()
	tile := NewBinTile(manager.BinView{ID: "A1", Capacity: 100}, nil)
	tile.Resize(fyne.NewSize(TileMinWidth, TileMinHeight))

	r := test.WidgetRenderer(tile).(*binTileRenderer)
	if r.idText.Text != "A1" || r.qtyText.Text != "0/100" {
		t.Errorf("Unexpected texts %q %q", r.idText.Text, r.qtyText.Text)
	}
	if r.fill.Size().Width != 0 {
		t.Errorf("Empty bin should have no fill, got width %v", r.fill.Size().Width)
	}

	tile.SetView(manager.BinView{
		ID: "A1", Total: 90, Capacity: 100, Status: model.BinStatusPartial,
		Percentage: 90, Tier: model.FillTierHigh, Highlighted: true,
	})

	if r.qtyText.Text != "90/100" {
		t.Errorf("Expected 90/100, got %q", r.qtyText.Text)
	}
	if r.qtyText.TextStyle.Bold {
		t.Error("Quantity should be bold only for full bins")
	}
	if r.fill.FillColor != TierColor(model.FillTierHigh) {
		t.Error("Fill bar should use the high tier colour")
	}
	if r.background.FillColor != StatusColor(model.BinStatusPartial) {
		t.Error("Background should use the partial status colour")
	}
	if r.background.StrokeColor != colorHighlight {
		t.Error("Highlighted tile should use the highlight border")
	}
	if r.fill.Size().Width <= 0 || r.fill.Size().Width > r.track.Size().Width {
		t.Errorf("Fill width %v out of track width %v", r.fill.Size().Width, r.track.Size().Width)
	}
}

func TestBinTile_FullBin(t *testing.T) {
	test.NewApp()
	tile := NewBinTile(manager.BinView{
		ID: "D5", Total: 100, Capacity: 100, Status: model.BinStatusFull,
		Percentage: 100, Tier: model.FillTierHigh,
	}, nil)

	r := test.WidgetRenderer(tile).(*binTileRenderer)
	if !r.qtyText.TextStyle.Bold {
		t.Error("Full bin quantity should be bold")
	}
	if r.fillRatio() != 1 {
		t.Errorf("Expected full fill ratio, got %v", r.fillRatio())
	}
}

func TestStatusAndTierColors(t *testing.T) {
	if StatusColor(model.BinStatusEmpty) == StatusColor(model.BinStatusFull) {
		t.Error("Empty and full bins should be distinguishable")
	}
	if TierColor(model.FillTierLow) == TierColor(model.FillTierHigh) {
		t.Error("Low and high tiers should be distinguishable")
	}
}

func TestTexts_Get(t *testing.T) {
	texts := NewTexts()

	if texts.Get(KeyAddItem) != "Add Item" {
		t.Errorf("Unexpected text %q", texts.Get(KeyAddItem))
	}
	if texts.Get("missing_key") != "missing_key" {
		t.Error("Unknown keys should fall back to the key itself")
	}
}

func TestValidateQuantity(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"", true},
		{"12", true},
		{"0", false},
		{"-1", false},
		{"x", false},
	}

	for _, tc := range tests {
		err := validateQuantity(tc.input)
		if (err == nil) != tc.valid {
			t.Errorf("validateQuantity(%q) = %v, expected valid=%v", tc.input, err, tc.valid)
		}
	}
}
