package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLastSelectedBin = "last_selected_bin"
	KeyStorageQuota    = "storage_quota_bytes"
)

// Default values
const (
	DefaultStorageQuota = 5 * 1024 * 1024
	MinStorageQuota     = 64 * 1024
	MaxStorageQuota     = 64 * 1024 * 1024
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLastSelectedBin returns the bin selected when the app was last used, or ""
func (s *Settings) GetLastSelectedBin() string {
	return s.app.Preferences().String(KeyLastSelectedBin)
}

// SetLastSelectedBin remembers the selected bin; an empty id clears it
func (s *Settings) SetLastSelectedBin(binID string) {
	if binID == "" {
		s.app.Preferences().RemoveValue(KeyLastSelectedBin)
		return
	}
	s.app.Preferences().SetString(KeyLastSelectedBin, binID)
}

// GetStorageQuota returns the maximum size in bytes of the persisted bin snapshot
func (s *Settings) GetStorageQuota() int {
	value := s.app.Preferences().Int(KeyStorageQuota)
	if value <= 0 {
		s.SetStorageQuota(DefaultStorageQuota)
		return DefaultStorageQuota
	}
	return value
}

// SetStorageQuota sets the snapshot size quota
func (s *Settings) SetStorageQuota(bytes int) {
	if bytes < MinStorageQuota {
		bytes = MinStorageQuota
	}
	if bytes > MaxStorageQuota {
		bytes = MaxStorageQuota
	}
	s.app.Preferences().SetInt(KeyStorageQuota, bytes)
}
