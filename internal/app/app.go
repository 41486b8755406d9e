package app

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"

	"github.com/ytget/warehouse-bins/internal/config"
	"github.com/ytget/warehouse-bins/internal/manager"
	"github.com/ytget/warehouse-bins/internal/storage"
	"github.com/ytget/warehouse-bins/internal/ui"
)

// Setup wires storage, the bin manager and the UI into window.
// It returns the manager so callers (and tests) can drive it directly.
func Setup(a fyne.App, window fyne.Window) *manager.Manager {
	settings := config.NewSettings(a)
	layout := config.DefaultLayout()

	bridge := storage.NewBridge(openStore(a, settings), config.StorageKey)

	bins := manager.LoadOrInit(bridge, layout)
	if rev := bridge.Revision(); rev != "" {
		log.Printf("Loaded snapshot revision %s from %q", rev, bridge.Key())
	}

	mgr := manager.New(bins, bridge)
	ui.NewRootUI(window, settings, mgr, layout.Cols)
	return mgr
}

// openStore returns the preferences-backed store, or an in-memory store when the
// app has no unique ID and Fyne cannot persist preferences for it
func openStore(a fyne.App, settings *config.Settings) storage.Store {
	if a.UniqueID() == "" {
		log.Printf("App has no unique ID, bins are kept in memory only")
		return storage.NewMemoryStore()
	}
	return storage.NewPreferencesStore(a.Preferences(), settings.GetStorageQuota())
}

// Run creates the main window, wires it and blocks until it is closed
func Run(a fyne.App, version string) {
	fmt.Printf("%s v%s starting...\n", config.AppName, version)

	a.Settings().SetTheme(ui.NewCompactTheme())

	window := a.NewWindow(fmt.Sprintf("%s v%s", config.AppName, version))
	window.Resize(fyne.NewSize(config.WindowWidth, config.WindowHeight))

	Setup(a, window)

	window.ShowAndRun()
}
