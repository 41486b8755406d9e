package storage

import (
	"fmt"

	"fyne.io/fyne/v2"
)

// PreferencesStore implements Store on top of Fyne's application preferences,
// the desktop counterpart of browser local storage.
type PreferencesStore struct {
	prefs fyne.Preferences
	quota int
}

// NewPreferencesStore creates a store over prefs. A quota of zero or less disables the size check.
func NewPreferencesStore(prefs fyne.Preferences, quota int) *PreferencesStore {
	return &PreferencesStore{prefs: prefs, quota: quota}
}

// Get returns the stored value. An empty value is reported as missing.
func (p *PreferencesStore) Get(key string) ([]byte, error) {
	value := p.prefs.String(key)
	if value == "" {
		return nil, ErrKeyNotFound
	}
	return []byte(value), nil
}

// Put stores value, refusing values larger than the quota
func (p *PreferencesStore) Put(key string, value []byte) error {
	if p.quota > 0 && len(value) > p.quota {
		return fmt.Errorf("%w: %d bytes for %q, limit %d", ErrQuotaExceeded, len(value), key, p.quota)
	}
	p.prefs.SetString(key, string(value))
	return nil
}
