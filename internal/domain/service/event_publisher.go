package service

import (
	"context"
	"time"

	"mandoob/internal/domain/entity"
)

// Invoice event types published on lifecycle transitions.
const (
	InvoiceEventStatusChanged = "invoice.status_changed"
	InvoiceEventArchived      = "invoice.archived"
)

// InvoiceEvent describes an invoice lifecycle transition for downstream
// consumers (reporting, driver apps). Publishing is best-effort: a publish
// failure never fails the mutation that produced it.
type InvoiceEvent struct {
	RequestID  string               `json:"request_id,omitempty"` // For distributed tracing
	Type       string               `json:"type"`
	InvoiceID  string               `json:"invoice_id"`
	DriverID   string               `json:"driver_id,omitempty"`
	Status     entity.InvoiceStatus `json:"status,omitempty"`
	OccurredAt time.Time            `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishInvoiceEvent publishes an invoice lifecycle event for async processing
	PublishInvoiceEvent(ctx context.Context, event *InvoiceEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
