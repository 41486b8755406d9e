package model

// BinStatus is the fill classification of a bin
type BinStatus string

const (
	// BinStatusEmpty means the bin holds nothing
	BinStatusEmpty BinStatus = "empty"

	// BinStatusPartial means the bin holds something but is below capacity
	BinStatusPartial BinStatus = "partial"

	// BinStatusFull means the bin is at (or above) capacity
	BinStatusFull BinStatus = "full"
)

// String returns the string representation of BinStatus
func (s BinStatus) String() string {
	return string(s)
}

// AcceptsMore returns true if the bin can take at least one more unit
func (s BinStatus) AcceptsMore() bool {
	return s != BinStatusFull
}

// FillTier is the visual bucket for a fill percentage
type FillTier string

const (
	FillTierLow    FillTier = "low"
	FillTierMedium FillTier = "medium"
	FillTierHigh   FillTier = "high"
)

// Fill tier boundaries in percent
const (
	LowTierMaxPercent    = 50
	MediumTierMaxPercent = 80
)

// String returns the string representation of FillTier
func (t FillTier) String() string {
	return string(t)
}

// TierFor classifies a fill percentage: low up to 50, medium up to 80, high above.
func TierFor(percentage float64) FillTier {
	switch {
	case percentage <= LowTierMaxPercent:
		return FillTierLow
	case percentage <= MediumTierMaxPercent:
		return FillTierMedium
	default:
		return FillTierHigh
	}
}
