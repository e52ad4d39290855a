package entity

// Statistics is a point-in-time snapshot of the collections. It is recomputed
// from the live collections on every call; nothing here is cached.
type Statistics struct {
	TotalInvoices    int `json:"total_invoices"`
	PendingDelivery  int `json:"pending_delivery"`
	Delivered        int `json:"delivered"`
	Returned         int `json:"returned"`
	ArchivedInvoices int `json:"archived_invoices"`
	Drivers          int `json:"drivers"`
	StockItems       int `json:"stock_items"`
	LowStockItems    int `json:"low_stock_items"`
	DelayedInvoices  int `json:"delayed_invoices"`
}
