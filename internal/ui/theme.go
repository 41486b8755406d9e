package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/warehouse-bins/internal/model"
)

// Bin palette
var (
	colorBinEmpty   = color.RGBA{R: 236, G: 239, B: 241, A: 255} // Light gray
	colorBinPartial = color.RGBA{R: 255, G: 243, B: 205, A: 255} // Pale amber
	colorBinFull    = color.RGBA{R: 255, G: 205, B: 210, A: 255} // Pale red

	colorTierLow    = color.RGBA{R: 46, G: 160, B: 67, A: 255}  // Green
	colorTierMedium = color.RGBA{R: 255, G: 193, B: 7, A: 255}  // Amber
	colorTierHigh   = color.RGBA{R: 183, G: 28, B: 28, A: 255}  // Red
	colorBarTrack   = color.RGBA{R: 207, G: 216, B: 220, A: 255} // Gray

	colorSelected  = color.RGBA{R: 25, G: 118, B: 210, A: 255} // Blue
	colorHighlight = color.RGBA{R: 255, G: 143, B: 0, A: 255}  // Orange
	colorBorder    = color.RGBA{R: 176, G: 190, B: 197, A: 255}
	colorBinText   = color.RGBA{R: 33, G: 33, B: 33, A: 255}
)

// StatusColor returns the tile background for a bin status
func StatusColor(status model.BinStatus) color.Color {
	switch status {
	case model.BinStatusFull:
		return colorBinFull
	case model.BinStatusPartial:
		return colorBinPartial
	default:
		return colorBinEmpty
	}
}

// TierColor returns the fill bar colour for a fill tier
func TierColor(tier model.FillTier) color.Color {
	switch tier {
	case model.FillTierHigh:
		return colorTierHigh
	case model.FillTierMedium:
		return colorTierMedium
	default:
		return colorTierLow
	}
}

// CompactTheme defines a compact theme for the UI with reduced padding and font sizes
type CompactTheme struct{}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{}
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return colorTierLow
	case theme.ColorNameError:
		return colorTierHigh
	case theme.ColorNameWarning:
		return colorTierMedium
	case theme.ColorNamePrimary:
		return colorSelected
	}
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 18
	case theme.SizeNameSubHeadingText:
		return 15
	case theme.SizeNameInputRadius:
		return 3
	}
	return theme.DefaultTheme().Size(name)
}
