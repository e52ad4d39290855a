// Package entity contains the core business objects of the project.
package entity

import "time"

// InvoiceStatus enumerates the delivery states of an invoice. The values keep
// the Arabic wording the business uses on printed invoices and in the UI.
type InvoiceStatus string

const (
	// StatusPendingDelivery marks an invoice still out with a driver.
	StatusPendingDelivery InvoiceStatus = "قيد التوصيل"
	// StatusDelivered marks an invoice handed to the customer.
	StatusDelivered InvoiceStatus = "مسلمة"
	// StatusReturned marks an invoice the customer refused or sent back.
	StatusReturned InvoiceStatus = "مرتجعة"
)

// Valid reports whether s is one of the known invoice statuses.
func (s InvoiceStatus) Valid() bool {
	switch s {
	case StatusPendingDelivery, StatusDelivered, StatusReturned:
		return true
	}

	return false
}

// Invoice represents a customer delivery order tracked by the system.
type Invoice struct {
	ID           string        `json:"id"`                   // Sequential identifier, "INV" + zero-padded number.
	CustomerName string        `json:"customer_name"`        // Name printed on the invoice.
	Phone        string        `json:"phone"`                // Customer contact number.
	Address      string        `json:"address"`              // Delivery address.
	Amount       float64       `json:"amount"`               // Total amount due on delivery.
	DriverID     string        `json:"driver_id"`            // Weak reference to the assigned driver; may be empty.
	Status       InvoiceStatus `json:"status"`               // Current delivery state.
	Date         string        `json:"date"`                 // Creation date, YYYY-MM-DD.
	UpdatedAt    time.Time     `json:"updated_at"`           // Timestamp of the last status change.
	ArchivedAt   time.Time     `json:"archived_at,omitzero"` // Set once when the invoice is moved to the archive.
}

// Delayed reports whether the invoice is still pending and its last status
// change is older than the given staleness window, measured against now.
func (inv *Invoice) Delayed(now time.Time, window time.Duration) bool {
	return inv.Status == StatusPendingDelivery && now.Sub(inv.UpdatedAt) > window
}
