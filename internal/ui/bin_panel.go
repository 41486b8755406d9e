package ui

import (
	"fmt"
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/warehouse-bins/internal/inventory"
	"github.com/ytget/warehouse-bins/internal/model"
)

// BinPanel shows the selected bin: item entry form, clear button and item list
type BinPanel struct {
	texts *Texts

	titleLabel *widget.Label
	nameEntry  *widget.Entry
	qtyEntry   *widget.Entry
	addBtn     *widget.Button
	clearBtn   *widget.Button
	itemList   *widget.List
	emptyLabel *widget.Label
	container  *fyne.Container

	binID string
	items []model.Item

	// Callbacks
	onAdd    func(name, qty string)
	onClear  func()
	onDelete func(index int, name string)
}

// NewBinPanel creates a hidden panel
func NewBinPanel(texts *Texts) *BinPanel {
	p := &BinPanel{texts: texts}
	p.createUI()
	p.container.Hide()
	return p
}

// SetCallbacks sets the action callbacks
func (p *BinPanel) SetCallbacks(onAdd func(name, qty string), onClear func(), onDelete func(index int, name string)) {
	p.onAdd = onAdd
	p.onClear = onClear
	p.onDelete = onDelete
}

// Container returns the panel's root object
func (p *BinPanel) Container() *fyne.Container {
	return p.container
}

// ShowBin displays bin and its items
func (p *BinPanel) ShowBin(bin model.Bin) {
	if p.binID != bin.ID {
		log.Printf("Showing bin %s with %d items", bin.ID, len(bin.Items))
	}
	p.binID = bin.ID
	p.items = bin.Items
	p.titleLabel.SetText(p.texts.Get(KeySelectedBin) + bin.ID)

	if bin.IsEmpty() {
		p.emptyLabel.Show()
	} else {
		p.emptyLabel.Hide()
	}
	p.itemList.Refresh()
	p.container.Show()
}

// HidePanel hides the panel when no bin is selected
func (p *BinPanel) HidePanel() {
	p.binID = ""
	p.items = nil
	p.container.Hide()
}

// ClearInputs empties the name and quantity entries
func (p *BinPanel) ClearInputs() {
	p.nameEntry.SetText("")
	p.qtyEntry.SetText("")
}

// createUI creates the panel widgets
func (p *BinPanel) createUI() {
	p.titleLabel = widget.NewLabel("")
	p.titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	p.nameEntry = widget.NewEntry()
	p.nameEntry.SetPlaceHolder(p.texts.Get(KeyItemName))
	p.nameEntry.OnSubmitted = func(string) { p.submitAdd() }

	p.qtyEntry = widget.NewEntry()
	p.qtyEntry.SetPlaceHolder(p.texts.Get(KeyQuantity))
	p.qtyEntry.Validator = validateQuantity
	p.qtyEntry.OnSubmitted = func(string) { p.submitAdd() }

	p.addBtn = widget.NewButton(p.texts.Get(KeyAddItem), p.submitAdd)
	p.addBtn.Importance = widget.HighImportance

	p.clearBtn = widget.NewButton(p.texts.Get(KeyClearBin), func() {
		if p.onClear != nil {
			p.onClear()
		}
	})
	p.clearBtn.Importance = widget.DangerImportance

	p.itemList = widget.NewList(
		func() int { return len(p.items) },
		p.createItemRow,
		p.updateItemRow,
	)

	p.emptyLabel = widget.NewLabel(p.texts.Get(KeyNoItems))
	p.emptyLabel.Importance = widget.LowImportance

	// Fixed width/height via transparent spacers underneath
	widthSpacer := canvas.NewRectangle(color.Transparent)
	widthSpacer.SetMinSize(fyne.NewSize(PanelMinWidth, 0))
	listSpacer := canvas.NewRectangle(color.Transparent)
	listSpacer.SetMinSize(fyne.NewSize(0, ItemListMinHeight))

	form := container.NewVBox(
		widthSpacer,
		p.titleLabel,
		p.nameEntry,
		p.qtyEntry,
		container.NewHBox(p.addBtn, p.clearBtn),
		widget.NewSeparator(),
		widget.NewLabel(p.texts.Get(KeyItems)),
		p.emptyLabel,
	)

	p.container = container.NewBorder(form, nil, nil, nil, container.NewStack(listSpacer, p.itemList))
}

func (p *BinPanel) submitAdd() {
	if p.onAdd != nil {
		p.onAdd(p.nameEntry.Text, p.qtyEntry.Text)
	}
}

// createItemRow creates an item row: "name - qty" and a delete button
func (p *BinPanel) createItemRow() fyne.CanvasObject {
	label := widget.NewLabel("")
	label.Truncation = fyne.TextTruncateEllipsis
	deleteBtn := widget.NewButton(p.texts.Get(KeyDelete), nil)
	deleteBtn.Importance = widget.LowImportance
	return container.NewBorder(nil, nil, nil, deleteBtn, label)
}

// updateItemRow binds row id to the current item
func (p *BinPanel) updateItemRow(id widget.ListItemID, obj fyne.CanvasObject) {
	if id < 0 || id >= len(p.items) {
		return
	}
	row, ok := obj.(*fyne.Container)
	if !ok || len(row.Objects) < 2 {
		return
	}

	item := p.items[id]
	index := id
	for _, child := range row.Objects {
		switch w := child.(type) {
		case *widget.Label:
			w.SetText(fmt.Sprintf(ItemRowFormat, item.Name, item.Qty))
		case *widget.Button:
			w.OnTapped = func() {
				if p.onDelete != nil {
					p.onDelete(index, item.Name)
				}
			}
		}
	}
}

// validateQuantity flags non-numeric or non-positive quantity text while typing
func validateQuantity(text string) error {
	if text == "" {
		return nil // Empty is allowed
	}
	_, err := inventory.ParseQuantity(text)
	return err
}
