// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"mandoob/internal/domain/entity"
	"mandoob/internal/errors"
)

// Domain-specific errors for invoice persistence.
var (
	// ErrInvoiceNotFound is returned when no active invoice carries the ID.
	ErrInvoiceNotFound = errors.New("invoice not found")
	// ErrInvalidStatus is returned when a status value is not one of the known states.
	ErrInvalidStatus = errors.New("invalid invoice status")
)

// InvoiceRepository defines invoice operations against the entity store.
type InvoiceRepository interface {
	// CreateInvoice assigns a fresh sequential ID and collection defaults,
	// stores the invoice and returns the stored record. Any caller-supplied
	// ID is overwritten.
	CreateInvoice(ctx context.Context, invoice *entity.Invoice) (*entity.Invoice, error)

	// ListInvoices returns all active invoices in insertion order.
	ListInvoices(ctx context.Context) ([]*entity.Invoice, error)

	// ListArchivedInvoices returns all archived invoices in archival order.
	ListArchivedInvoices(ctx context.Context) ([]*entity.Invoice, error)

	// FindInvoiceByID retrieves an active invoice by ID.
	FindInvoiceByID(ctx context.Context, id string) (*entity.Invoice, error)

	// FindArchivedInvoiceByID retrieves an archived invoice by ID.
	FindArchivedInvoiceByID(ctx context.Context, id string) (*entity.Invoice, error)

	// UpdateInvoiceStatus mutates the status and update timestamp in place.
	// Returns ErrInvoiceNotFound when the ID is not in the active collection.
	UpdateInvoiceStatus(ctx context.Context, id string, status entity.InvoiceStatus) (*entity.Invoice, error)

	// ArchiveInvoice moves an invoice from the active to the archived
	// collection, stamping the archival timestamp. A move, never a copy.
	ArchiveInvoice(ctx context.Context, id string) (*entity.Invoice, error)

	// SearchInvoices returns active invoices whose customer name, ID, phone
	// or address contains the query, case-insensitively. Order is preserved.
	SearchInvoices(ctx context.Context, query string) ([]*entity.Invoice, error)

	// FilterInvoicesByStatus returns active invoices with the given status.
	FilterInvoicesByStatus(ctx context.Context, status entity.InvoiceStatus) ([]*entity.Invoice, error)

	// FilterInvoicesByDriver returns active invoices assigned to the driver.
	FilterInvoicesByDriver(ctx context.Context, driverID string) ([]*entity.Invoice, error)

	// DelayedInvoices returns pending invoices whose last status change is
	// older than the staleness window, evaluated against wall-clock time.
	DelayedInvoices(ctx context.Context) ([]*entity.Invoice, error)
}
