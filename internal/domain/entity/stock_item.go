package entity

// StockItem represents a warehouse item tracked against a minimum level.
type StockItem struct {
	ID          string  `json:"id"`           // Sequential identifier, "STK" + zero-padded number.
	Name        string  `json:"name"`         // Item name.
	Category    string  `json:"category"`     // Free-form category label.
	Quantity    int     `json:"quantity"`     // Units on hand.
	MinQuantity int     `json:"min_quantity"` // Reorder threshold.
	UnitPrice   float64 `json:"unit_price"`   // Price per unit.
	Supplier    string  `json:"supplier"`     // Supplier name.
}

// LowStock is a derived predicate, never a stored flag: an item is low when
// its quantity falls strictly below the configured minimum.
func (s *StockItem) LowStock() bool {
	return s.Quantity < s.MinQuantity
}
