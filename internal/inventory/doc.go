package inventory

// Package inventory holds the bin store: an immutable, ordered collection of
// bins and the operations that produce new snapshots from it (add, delete,
// clear), plus the grid initializer and text-input parsing used at the UI
// boundary. Every operation leaves its receiver untouched.
