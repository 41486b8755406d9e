package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconError = "❌"
	IconOK    = "✓"
)

// Text fragments
const (
	QtyLabelFormat     = "%d/%d"
	ItemRowFormat      = "%s - %d"
	MiddleDotSeparator = " · "
)

// Bin tile sizing
const (
	TileMinWidth     float32 = 120
	TileMinHeight    float32 = 84
	TileIDTextSize   float32 = 18
	TileQtyTextSize  float32 = 12
	TileBarHeight    float32 = 8
	TileCornerRadius float32 = 6

	TileStrokeWidth         float32 = 1
	TileSelectedStrokeWidth float32 = 3
)

// Panel sizing
const (
	PanelMinWidth     float32 = 260
	ItemListMinHeight float32 = 180
)

// Notification behavior
const (
	NotificationAutoHide = 4 * time.Second
)
