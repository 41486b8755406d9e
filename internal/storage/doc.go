package storage

// Package storage is the persistence bridge: a small key-value Store
// abstraction (in-memory or backed by Fyne preferences) and a Bridge that
// reads and writes the whole bin collection as one versioned JSON snapshot
// under a fixed key.
