package config

// Application identity
const (
	AppID   = "com.ytget.warehouse-bins"
	AppName = "Warehouse Bin Manager"
)

// Window sizing
const (
	WindowWidth  = 820
	WindowHeight = 640
)

// Warehouse layout, fixed at build time
const (
	Rows        = 4
	Cols        = 5
	BinCapacity = 100
)

// StorageKey is the preferences key holding the serialized bin collection
const StorageKey = "warehouseBins"

// Layout groups the grid dimensions and per-bin capacity
type Layout struct {
	Rows     int
	Cols     int
	Capacity int
}

// DefaultLayout returns the build-time warehouse layout
func DefaultLayout() Layout {
	return Layout{Rows: Rows, Cols: Cols, Capacity: BinCapacity}
}

// BinCount returns the number of bins in a freshly generated grid
func (l Layout) BinCount() int {
	return l.Rows * l.Cols
}
