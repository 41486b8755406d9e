package ui

// Texts is the catalog of user-facing strings
type Texts struct {
	texts map[string]string
}

// Text keys
const (
	KeyAppTitle          = "app_title"
	KeySearchPlaceholder = "search_placeholder"
	KeyItemName          = "item_name"
	KeyQuantity          = "quantity"
	KeyAddItem           = "add_item"
	KeyClearBin          = "clear_bin"
	KeyDelete            = "delete"
	KeyItems             = "items"
	KeyNoItems           = "no_items"
	KeySelectedBin       = "selected_bin"
	KeyCapacityTitle     = "capacity_title"
	KeyCapacityExceeded  = "capacity_exceeded"
	KeyItemAdded         = "item_added"
	KeyItemDeleted       = "item_deleted"
	KeyBinCleared        = "bin_cleared"
	KeySaveFailed        = "save_failed"
)

// NewTexts creates the text catalog
func NewTexts() *Texts {
	return &Texts{
		texts: map[string]string{
			KeyAppTitle:          "Warehouse Bin & Rack Manager",
			KeySearchPlaceholder: "Search item...",
			KeyItemName:          "Item name",
			KeyQuantity:          "Quantity",
			KeyAddItem:           "Add Item",
			KeyClearBin:          "Clear Bin",
			KeyDelete:            "Delete",
			KeyItems:             "Items:",
			KeyNoItems:           "No items",
			KeySelectedBin:       "Selected Bin: ",
			KeyCapacityTitle:     "Capacity",
			KeyCapacityExceeded:  "Bin capacity exceeded!",
			KeyItemAdded:         "Item added",
			KeyItemDeleted:       "Item deleted",
			KeyBinCleared:        "Bin cleared",
			KeySaveFailed:        "Changes could not be saved",
		},
	}
}

// Get returns the text for key, or the key itself when it is unknown
func (t *Texts) Get(key string) string {
	if text, found := t.texts[key]; found {
		return text
	}
	return key
}
