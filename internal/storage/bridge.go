package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/warehouse-bins/internal/model"
)

// SchemaVersion is the snapshot format written by Save
const SchemaVersion = 1

// legacySchemaVersion is the unversioned format: a bare JSON array of bins
const legacySchemaVersion = 0

// RevisionPrefix marks revisions generated without a UUID
const RevisionPrefix = "rev_"

var (
	// ErrNotFound is returned by Load when nothing has been saved yet
	ErrNotFound = errors.New("no saved bins")

	// ErrCorrupt is returned by Load when the stored snapshot cannot be decoded
	ErrCorrupt = errors.New("saved bins are corrupt")

	// ErrUnsupportedVersion is returned by Load for snapshots from a newer schema
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")
)

// snapshot is the persisted envelope around the bin collection
type snapshot struct {
	Version  int         `json:"version"`
	Revision string      `json:"revision,omitempty"`
	SavedAt  time.Time   `json:"saved_at"`
	Bins     []model.Bin `json:"bins"`
}

// Bridge loads and saves the full bin collection under one key
type Bridge struct {
	store    Store
	key      string
	revision string
	now      func() time.Time
}

// NewBridge creates a bridge that persists under key
func NewBridge(store Store, key string) *Bridge {
	return &Bridge{
		store: store,
		key:   key,
		now:   time.Now,
	}
}

// Key returns the storage key
func (b *Bridge) Key() string {
	return b.key
}

// Revision returns the revision of the snapshot last loaded or saved, or ""
func (b *Bridge) Revision() string {
	return b.revision
}

// Load reads the saved bins. It returns ErrNotFound when nothing is stored and
// wraps ErrCorrupt or ErrUnsupportedVersion when the blob can't be used.
func (b *Bridge) Load() ([]model.Bin, error) {
	data, err := b.store.Get(b.key)
	if errors.Is(err, ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", b.key, err)
	}

	snap, err := decodeSnapshot(data)
	if err != nil {
		return nil, err
	}

	b.revision = snap.Revision
	return normalizeBins(snap.Bins), nil
}

// Save overwrites the stored snapshot with bins
func (b *Bridge) Save(bins []model.Bin) error {
	snap := snapshot{
		Version:  SchemaVersion,
		Revision: generateRevision(),
		SavedAt:  b.now().UTC(),
		Bins:     normalizeBins(bins),
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode bins: %w", err)
	}

	if err := b.store.Put(b.key, data); err != nil {
		return fmt.Errorf("write %q: %w", b.key, err)
	}

	b.revision = snap.Revision
	return nil
}

// decodeSnapshot reads either the versioned envelope or the legacy bare array
func decodeSnapshot(data []byte) (snapshot, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return snapshot{}, fmt.Errorf("%w: empty value", ErrCorrupt)
	}

	if trimmed[0] == '[' {
		var bins []model.Bin
		if err := json.Unmarshal(trimmed, &bins); err != nil {
			return snapshot{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		return migrate(snapshot{Version: legacySchemaVersion, Bins: bins})
	}

	var snap snapshot
	if err := json.Unmarshal(trimmed, &snap); err != nil {
		return snapshot{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if snap.Bins == nil {
		return snapshot{}, fmt.Errorf("%w: missing bins", ErrCorrupt)
	}
	return migrate(snap)
}

// migrate upgrades an older snapshot to SchemaVersion
func migrate(snap snapshot) (snapshot, error) {
	switch {
	case snap.Version > SchemaVersion:
		return snapshot{}, fmt.Errorf("%w: %d (newest known is %d)", ErrUnsupportedVersion, snap.Version, SchemaVersion)
	case snap.Version < legacySchemaVersion:
		return snapshot{}, fmt.Errorf("%w: negative version %d", ErrCorrupt, snap.Version)
	}

	// Version 0 carries the same bin shape, only without an envelope
	snap.Version = SchemaVersion
	return snap, nil
}

// normalizeBins makes sure every bin has a non-nil item list
func normalizeBins(bins []model.Bin) []model.Bin {
	out := make([]model.Bin, len(bins))
	for i, bin := range bins {
		out[i] = bin.Clone()
	}
	return out
}

// generateRevision returns a time-ordered UUIDv7 revision id
func generateRevision() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(RevisionPrefix+"%d", time.Now().UnixNano())
	}
	return id.String()
}
