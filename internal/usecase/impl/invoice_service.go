package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "mandoob/internal/delivery/context"
	"mandoob/internal/domain/entity"
	domainerrors "mandoob/internal/domain/errors"
	"mandoob/internal/domain/repository"
	"mandoob/internal/domain/service"
	"mandoob/internal/errors"
	"mandoob/internal/usecase"

	"go.uber.org/fx"
)

type invoiceService struct {
	invoiceRepo repository.InvoiceRepository
	driverRepo  repository.DriverRepository
	statsRepo   repository.StatisticsProvider
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// InvoiceServiceParams holds dependencies for InvoiceService, injected by Fx.
type InvoiceServiceParams struct {
	fx.In

	InvoiceRepo repository.InvoiceRepository
	DriverRepo  repository.DriverRepository
	StatsRepo   repository.StatisticsProvider
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewInvoiceService creates a new invoice service instance
func NewInvoiceService(params InvoiceServiceParams) usecase.InvoiceUsecase {
	return &invoiceService{
		invoiceRepo: params.InvoiceRepo,
		driverRepo:  params.DriverRepo,
		statsRepo:   params.StatsRepo,
		publisher:   params.Publisher,
		logger:      params.Logger,
	}
}

// AddInvoice creates a pending invoice. The store assigns the ID.
func (s *invoiceService) AddInvoice(ctx context.Context, input usecase.NewInvoice) (*entity.Invoice, error) {
	invoice := &entity.Invoice{
		CustomerName: input.CustomerName,
		Phone:        input.Phone,
		Address:      input.Address,
		Amount:       input.Amount,
		DriverID:     input.DriverID,
		Status:       entity.StatusPendingDelivery,
	}

	// Reject dangling driver references up front
	if input.DriverID != "" {
		if _, err := s.driverRepo.FindDriverByID(ctx, input.DriverID); err != nil {
			if errors.Is(err, repository.ErrDriverNotFound) {
				return nil, domainerrors.ErrDriverNotFound
			}

			return nil, errors.Wrap(err, "failed to find driver by ID")
		}
	}

	created, err := s.invoiceRepo.CreateInvoice(ctx, invoice)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create invoice")
	}

	return created, nil
}

// ListInvoices narrows the active collection by status, driver and free-text
// query. Empty filters match everything.
func (s *invoiceService) ListInvoices(ctx context.Context, status entity.InvoiceStatus, driverID, query string) ([]*entity.Invoice, error) {
	if status != "" && !status.Valid() {
		return nil, domainerrors.ErrInvalidInvoiceStatus
	}

	var (
		invoices []*entity.Invoice
		err      error
	)
	switch {
	case query != "":
		invoices, err = s.invoiceRepo.SearchInvoices(ctx, query)
	case status != "":
		invoices, err = s.invoiceRepo.FilterInvoicesByStatus(ctx, status)
	case driverID != "":
		invoices, err = s.invoiceRepo.FilterInvoicesByDriver(ctx, driverID)
	default:
		invoices, err = s.invoiceRepo.ListInvoices(ctx)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to list invoices")
	}

	filtered := make([]*entity.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if status != "" && inv.Status != status {
			continue
		}
		if driverID != "" && inv.DriverID != driverID {
			continue
		}
		filtered = append(filtered, inv)
	}

	return filtered, nil
}

// ListArchivedInvoices returns the archive in archival order.
func (s *invoiceService) ListArchivedInvoices(ctx context.Context) ([]*entity.Invoice, error) {
	invoices, err := s.invoiceRepo.ListArchivedInvoices(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list archived invoices")
	}

	return invoices, nil
}

// UpdateStatus transitions an invoice and maintains the assigned driver's
// cumulative counters: delivered bumps deliveries, returned bumps returns.
// Counters move only on an actual transition, not on a repeated status.
func (s *invoiceService) UpdateStatus(ctx context.Context, id string, status entity.InvoiceStatus) (*entity.Invoice, error) {
	if !status.Valid() {
		return nil, domainerrors.ErrInvalidInvoiceStatus
	}

	previous, err := s.invoiceRepo.FindInvoiceByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrInvoiceNotFound) {
			return nil, domainerrors.ErrInvoiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find invoice by ID")
	}
	previousStatus := previous.Status

	invoice, err := s.invoiceRepo.UpdateInvoiceStatus(ctx, id, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update invoice status")
	}

	if invoice.DriverID != "" && invoice.Status != previousStatus {
		s.bumpDriverCounter(ctx, invoice)
	}
	s.publishEvent(ctx, service.InvoiceEventStatusChanged, invoice)

	return invoice, nil
}

// ArchiveInvoice moves an invoice out of the active collection. Archiving an
// already archived invoice is a conflict, not a repeatable no-op.
func (s *invoiceService) ArchiveInvoice(ctx context.Context, id string) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.ArchiveInvoice(ctx, id)
	if err != nil {
		if !errors.Is(err, repository.ErrInvoiceNotFound) {
			return nil, errors.Wrap(err, "failed to archive invoice")
		}
		if _, archivedErr := s.invoiceRepo.FindArchivedInvoiceByID(ctx, id); archivedErr == nil {
			return nil, domainerrors.ErrInvoiceAlreadyArchived
		}

		return nil, domainerrors.ErrInvoiceNotFound
	}

	s.publishEvent(ctx, service.InvoiceEventArchived, invoice)

	return invoice, nil
}

// DelayedInvoices returns pending invoices stuck past the staleness window.
func (s *invoiceService) DelayedInvoices(ctx context.Context) ([]*entity.Invoice, error) {
	invoices, err := s.invoiceRepo.DelayedInvoices(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list delayed invoices")
	}

	return invoices, nil
}

// Statistics returns a live snapshot across all collections.
func (s *invoiceService) Statistics(ctx context.Context) (*entity.Statistics, error) {
	stats, err := s.statsRepo.Statistics(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute statistics")
	}

	return stats, nil
}

// bumpDriverCounter is best-effort: a missing driver is logged, never fails
// the status update that already applied.
func (s *invoiceService) bumpDriverCounter(ctx context.Context, invoice *entity.Invoice) {
	var err error
	switch invoice.Status {
	case entity.StatusDelivered:
		err = s.driverRepo.IncrementDriverDeliveries(ctx, invoice.DriverID)
	case entity.StatusReturned:
		err = s.driverRepo.IncrementDriverReturns(ctx, invoice.DriverID)
	default:
		return
	}

	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("failed to update driver counter",
			slog.String("invoice_id", invoice.ID),
			slog.String("driver_id", invoice.DriverID),
			slog.Any("error", err),
		)
	}
}

// publishEvent is best-effort: a publish failure is logged, never fails the
// mutation that produced it.
func (s *invoiceService) publishEvent(ctx context.Context, eventType string, invoice *entity.Invoice) {
	if s.publisher == nil {
		return
	}

	event := &service.InvoiceEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		InvoiceID:  invoice.ID,
		DriverID:   invoice.DriverID,
		Status:     invoice.Status,
		OccurredAt: time.Now(),
	}
	if err := s.publisher.PublishInvoiceEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("failed to publish invoice event",
			slog.String("type", eventType),
			slog.String("invoice_id", invoice.ID),
			slog.Any("error", err),
		)
	}
}
