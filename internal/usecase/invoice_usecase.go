// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"mandoob/internal/domain/entity"
)

// NewInvoice carries caller-supplied invoice fields. The ID is always
// generated by the store, never taken from the caller.
type NewInvoice struct {
	CustomerName string
	Phone        string
	Address      string
	Amount       float64
	DriverID     string
}

// InvoiceUsecase defines the interface for invoice management operations.
type InvoiceUsecase interface {
	// AddInvoice creates a pending invoice with a fresh sequential ID.
	AddInvoice(ctx context.Context, input NewInvoice) (*entity.Invoice, error)

	// ListInvoices returns active invoices, optionally narrowed by status,
	// driver and a free-text query. Empty filters match everything.
	ListInvoices(ctx context.Context, status entity.InvoiceStatus, driverID, query string) ([]*entity.Invoice, error)

	// ListArchivedInvoices returns the archive in archival order.
	ListArchivedInvoices(ctx context.Context) ([]*entity.Invoice, error)

	// UpdateStatus transitions an invoice and maintains the assigned
	// driver's delivery/return counters.
	UpdateStatus(ctx context.Context, id string, status entity.InvoiceStatus) (*entity.Invoice, error)

	// ArchiveInvoice moves an invoice into the archive.
	ArchiveInvoice(ctx context.Context, id string) (*entity.Invoice, error)

	// DelayedInvoices returns pending invoices stuck past the staleness window.
	DelayedInvoices(ctx context.Context) ([]*entity.Invoice, error)

	// Statistics returns a live snapshot across all collections.
	Statistics(ctx context.Context) (*entity.Statistics, error)
}
