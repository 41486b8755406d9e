package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/warehouse-bins/internal/manager"
)

// BinTile is a tappable grid cell showing one bin's id, fill bar and quantity
type BinTile struct {
	widget.BaseWidget

	view  manager.BinView
	onTap func(binID string)
}

// NewBinTile creates a tile for view
func NewBinTile(view manager.BinView, onTap func(binID string)) *BinTile {
	t := &BinTile{view: view, onTap: onTap}
	t.ExtendBaseWidget(t)
	return t
}

// View returns the render model currently shown
func (t *BinTile) View() manager.BinView {
	return t.view
}

// SetView updates the tile with a new render model
func (t *BinTile) SetView(view manager.BinView) {
	if t.view == view {
		return
	}
	t.view = view
	t.Refresh()
}

// Tapped selects the bin
func (t *BinTile) Tapped(*fyne.PointEvent) {
	if t.onTap != nil {
		t.onTap(t.view.ID)
	}
}

// CreateRenderer creates the widget renderer
func (t *BinTile) CreateRenderer() fyne.WidgetRenderer {
	r := &binTileRenderer{
		tile:       t,
		background: canvas.NewRectangle(color.Transparent),
		idText:     canvas.NewText("", colorBinText),
		track:      canvas.NewRectangle(colorBarTrack),
		fill:       canvas.NewRectangle(color.Transparent),
		qtyText:    canvas.NewText("", colorBinText),
	}
	r.background.CornerRadius = TileCornerRadius
	r.idText.TextSize = TileIDTextSize
	r.idText.TextStyle = fyne.TextStyle{Bold: true}
	r.idText.Alignment = fyne.TextAlignCenter
	r.qtyText.TextSize = TileQtyTextSize
	r.qtyText.Alignment = fyne.TextAlignCenter
	r.applyView()
	return r
}

// binTileRenderer draws the tile from its BinView
type binTileRenderer struct {
	tile       *BinTile
	background *canvas.Rectangle
	idText     *canvas.Text
	track      *canvas.Rectangle
	fill       *canvas.Rectangle
	qtyText    *canvas.Text
}

// Layout stacks id, fill bar and quantity vertically
func (r *binTileRenderer) Layout(size fyne.Size) {
	pad := theme.Padding() * 2

	r.background.Resize(size)
	r.background.Move(fyne.NewPos(0, 0))

	idSize := r.idText.MinSize()
	r.idText.Resize(fyne.NewSize(size.Width, idSize.Height))
	r.idText.Move(fyne.NewPos(0, pad))

	barWidth := size.Width - 2*pad
	if barWidth < 0 {
		barWidth = 0
	}
	barY := pad + idSize.Height + pad
	r.track.Resize(fyne.NewSize(barWidth, TileBarHeight))
	r.track.Move(fyne.NewPos(pad, barY))
	r.fill.Resize(fyne.NewSize(barWidth*r.fillRatio(), TileBarHeight))
	r.fill.Move(fyne.NewPos(pad, barY))

	qtySize := r.qtyText.MinSize()
	r.qtyText.Resize(fyne.NewSize(size.Width, qtySize.Height))
	r.qtyText.Move(fyne.NewPos(0, barY+TileBarHeight+pad))
}

// MinSize returns the minimum size
func (r *binTileRenderer) MinSize() fyne.Size {
	return fyne.NewSize(TileMinWidth, TileMinHeight)
}

// Refresh re-reads the tile's view
func (r *binTileRenderer) Refresh() {
	r.applyView()
	r.Layout(r.tile.Size())
	for _, obj := range r.Objects() {
		canvas.Refresh(obj)
	}
}

// Objects returns the drawn objects in paint order
func (r *binTileRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.track, r.fill, r.idText, r.qtyText}
}

// Destroy cleans up the renderer
func (r *binTileRenderer) Destroy() {}

func (r *binTileRenderer) applyView() {
	view := r.tile.view

	r.background.FillColor = StatusColor(view.Status)
	switch {
	case view.Selected:
		r.background.StrokeColor = colorSelected
		r.background.StrokeWidth = TileSelectedStrokeWidth
	case view.Highlighted:
		r.background.StrokeColor = colorHighlight
		r.background.StrokeWidth = TileSelectedStrokeWidth
	default:
		r.background.StrokeColor = colorBorder
		r.background.StrokeWidth = TileStrokeWidth
	}

	r.fill.FillColor = TierColor(view.Tier)
	r.idText.Text = view.ID
	r.qtyText.Text = fmt.Sprintf(QtyLabelFormat, view.Total, view.Capacity)
	r.qtyText.TextStyle = fyne.TextStyle{Bold: !view.Status.AcceptsMore()}
}

// fillRatio is the bar fill in [0, 1]
func (r *binTileRenderer) fillRatio() float32 {
	ratio := float32(r.tile.view.Percentage / 100)
	if ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}
