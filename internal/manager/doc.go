package manager

// Package manager is the headless interaction surface of the bin manager. It
// owns the current bin collection snapshot, the selected bin and the search
// query, turns user input into collection operations and persists every
// successful mutation explicitly. It is not safe for concurrent use; the UI
// drives it from the Fyne event goroutine.
