package ui

import (
	"errors"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/warehouse-bins/internal/config"
	"github.com/ytget/warehouse-bins/internal/inventory"
	"github.com/ytget/warehouse-bins/internal/manager"
)

// RootUI represents the main UI structure
type RootUI struct {
	window   fyne.Window
	manager  *manager.Manager
	settings *config.Settings
	texts    *Texts

	searchEntry *widget.Entry
	tiles       []*BinTile
	grid        *fyne.Container
	panel       *BinPanel

	// Notification line under the search field
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationTimeout   time.Duration
	notificationSeq       int

	// Bin id last written to settings
	rememberedBin string

	// Set when a save failed during the current action so its notice is not overwritten
	saveFailed bool
}

// NewRootUI creates and initializes the main UI. cols is the number of bins per rack row.
func NewRootUI(window fyne.Window, settings *config.Settings, mgr *manager.Manager, cols int) *RootUI {
	ui := &RootUI{
		window:   window,
		manager:  mgr,
		settings: settings,
		texts:    NewTexts(),

		notificationTimeout: NotificationAutoHide,
	}

	window.SetTitle(ui.texts.Get(KeyAppTitle))

	ui.manager.SetUpdateCallback(ui.refresh)
	ui.manager.SetPersistErrorHandler(ui.onPersistError)

	ui.setupUI(cols)
	ui.restoreSelection()
	ui.refresh()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI(cols int) {
	if cols < 1 {
		cols = 1
	}

	title := widget.NewLabel(ui.texts.Get(KeyAppTitle))
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.SizeName = theme.SizeNameHeadingText

	ui.searchEntry = widget.NewEntry()
	ui.searchEntry.SetPlaceHolder(ui.texts.Get(KeySearchPlaceholder))
	ui.searchEntry.OnChanged = ui.manager.SetSearchQuery

	var header *fyne.Container
	logo, err := LoadLogoResource()
	if err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		header = container.NewBorder(nil, nil, logoImage, nil, title)
	} else {
		header = container.NewVBox(title)
	}

	// Notification panel (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationContainer = container.NewHBox(ui.notificationLabel)
	ui.notificationContainer.Hide()

	top := container.NewVBox(header, ui.searchEntry, ui.notificationContainer)

	// One tile per bin; bins are never added or removed after startup
	views := ui.manager.Views()
	ui.tiles = make([]*BinTile, len(views))
	objects := make([]fyne.CanvasObject, len(views))
	for i, view := range views {
		ui.tiles[i] = NewBinTile(view, ui.onBinTapped)
		objects[i] = ui.tiles[i]
	}
	ui.grid = container.NewGridWithColumns(cols, objects...)

	ui.panel = NewBinPanel(ui.texts)
	ui.panel.SetCallbacks(ui.onAddItem, ui.onClearBin, ui.onDeleteItem)

	content := container.NewBorder(
		top,                           // top
		nil,                           // bottom
		nil,                           // left
		ui.panel.Container(),          // right
		container.NewVScroll(ui.grid), // center
	)

	ui.window.SetContent(content)
	log.Printf("UI setup completed with %d bins", len(ui.tiles))
}

// restoreSelection reselects the bin remembered in settings, if it still exists
func (ui *RootUI) restoreSelection() {
	binID := ui.settings.GetLastSelectedBin()
	if binID == "" {
		return
	}
	ui.rememberedBin = binID
	if err := ui.manager.SelectBin(binID); err != nil {
		log.Printf("Last selected bin %s is gone: %v", binID, err)
		ui.rememberedBin = ""
		ui.settings.SetLastSelectedBin("")
	}
}

// refresh redraws tiles and the panel from the manager state
func (ui *RootUI) refresh() {
	views := ui.manager.Views()
	for i, view := range views {
		if i < len(ui.tiles) {
			ui.tiles[i].SetView(view)
		}
	}

	if bin, ok := ui.manager.Selected(); ok {
		ui.panel.ShowBin(bin)
	} else {
		ui.panel.HidePanel()
	}

	if selected := ui.manager.SelectedID(); selected != ui.rememberedBin {
		ui.rememberedBin = selected
		ui.settings.SetLastSelectedBin(selected)
	}
}

// onBinTapped selects the tapped bin
func (ui *RootUI) onBinTapped(binID string) {
	if err := ui.manager.SelectBin(binID); err != nil {
		log.Printf("Error selecting bin %s: %v", binID, err)
	}
}

// onAddItem handles the Add Item button
func (ui *RootUI) onAddItem(name, qty string) {
	binID := ui.manager.SelectedID()
	err := ui.manager.AddItem(name, qty)
	switch {
	case err == nil:
		ui.panel.ClearInputs()
		ui.notifySuccess(KeyItemAdded, binID)
	case errors.Is(err, inventory.ErrCapacityExceeded):
		log.Printf("Rejected add: %v", err)
		ui.showNotification(IconError + " " + ui.texts.Get(KeyCapacityExceeded) + MiddleDotSeparator + binID)
		dialog.ShowInformation(ui.texts.Get(KeyCapacityTitle), ui.texts.Get(KeyCapacityExceeded), ui.window)
	case inventory.IsValidationError(err), errors.Is(err, manager.ErrNoBinSelected):
		// Missing name, quantity or selection: nothing to do
		log.Printf("Ignored add: %v", err)
	default:
		log.Printf("Error adding item to bin %s: %v", binID, err)
	}
}

// onDeleteItem handles a row's Delete button
func (ui *RootUI) onDeleteItem(index int, name string) {
	if err := ui.manager.DeleteItem(index, name); err != nil {
		log.Printf("Ignored delete: %v", err)
		return
	}
	ui.notifySuccess(KeyItemDeleted, name)
}

// onClearBin handles the Clear Bin button
func (ui *RootUI) onClearBin() {
	binID := ui.manager.SelectedID()
	if err := ui.manager.ClearBin(); err != nil {
		log.Printf("Ignored clear: %v", err)
		return
	}
	ui.notifySuccess(KeyBinCleared, binID)
}

// onPersistError reports a failed save; the in-memory state stays usable
func (ui *RootUI) onPersistError(err error) {
	ui.showNotification(IconError + " " + ui.texts.Get(KeySaveFailed) + ": " + err.Error())
	ui.saveFailed = true
}

// notifySuccess reports a completed action unless its save just failed
func (ui *RootUI) notifySuccess(key, subject string) {
	if ui.saveFailed {
		ui.saveFailed = false
		return
	}
	ui.showNotification(IconOK + " " + ui.texts.Get(key) + MiddleDotSeparator + subject)
}

// showNotification displays a message in the notification panel under the search field
func (ui *RootUI) showNotification(message string) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil {
		return
	}
	ui.notificationLabel.SetText(message)
	ui.notificationContainer.Show()
	ui.notificationContainer.Refresh()

	// Only the latest notification may hide the panel
	ui.notificationSeq++
	seq := ui.notificationSeq
	time.AfterFunc(ui.notificationTimeout, func() {
		fyne.Do(func() {
			if ui.notificationSeq == seq {
				ui.hideNotification()
			}
		})
	})
}

// hideNotification hides the notification panel
func (ui *RootUI) hideNotification() {
	if ui.notificationContainer == nil {
		return
	}
	ui.notificationContainer.Hide()
}
