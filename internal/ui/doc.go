package ui

// Package ui contains the Fyne-based desktop user interface for the bin
// manager. It renders the bin grid, the search field and the selected-bin
// panel, and forwards user interactions to the manager. All UI strings come
// from the Texts catalog.
