package impl

import (
	"context"
	"testing"

	"mandoob/internal/domain/entity"
	domainerrors "mandoob/internal/domain/errors"
	"mandoob/internal/domain/service"
	"mandoob/internal/infra/persistence/memory"
	"mandoob/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInvoiceService(store *memory.Store, publisher service.EventPublisher) usecase.InvoiceUsecase {
	return NewInvoiceService(InvoiceServiceParams{
		InvoiceRepo: store,
		DriverRepo:  store,
		StatsRepo:   store,
		Publisher:   publisher,
		Logger:      discardLogger(),
	})
}

func TestInvoiceService_AddInvoice_AssignsSequentialIDs(t *testing.T) {
	store := newTestStore(t, testConfig())
	svc := newTestInvoiceService(store, nil)
	ctx := context.Background()

	first, err := svc.AddInvoice(ctx, usecase.NewInvoice{CustomerName: "أحمد علي", Amount: 150})
	require.NoError(t, err)
	second, err := svc.AddInvoice(ctx, usecase.NewInvoice{CustomerName: "سارة محمد", Amount: 80})
	require.NoError(t, err)

	assert.Equal(t, "INV001", first.ID)
	assert.Equal(t, "INV002", second.ID)
	assert.Equal(t, entity.StatusPendingDelivery, first.Status)
	assert.NotEmpty(t, first.Date)
}

func TestInvoiceService_AddInvoice_UnknownDriver(t *testing.T) {
	store := newTestStore(t, testConfig())
	svc := newTestInvoiceService(store, nil)

	_, err := svc.AddInvoice(context.Background(), usecase.NewInvoice{
		CustomerName: "أحمد علي",
		DriverID:     "DRV999",
	})
	require.ErrorIs(t, err, domainerrors.ErrDriverNotFound)
}

func TestInvoiceService_UpdateStatus_UnknownInvoice(t *testing.T) {
	store := newTestStore(t, testConfig())
	svc := newTestInvoiceService(store, nil)

	_, err := svc.UpdateStatus(context.Background(), "INV999", entity.StatusDelivered)
	require.ErrorIs(t, err, domainerrors.ErrInvoiceNotFound)

	invoices, listErr := svc.ListInvoices(context.Background(), "", "", "")
	require.NoError(t, listErr)
	assert.Empty(t, invoices)
}

func TestInvoiceService_UpdateStatus_InvalidStatus(t *testing.T) {
	store := newTestStore(t, testConfig())
	svc := newTestInvoiceService(store, nil)
	ctx := context.Background()

	invoice, err := svc.AddInvoice(ctx, usecase.NewInvoice{CustomerName: "أحمد علي"})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, invoice.ID, entity.InvoiceStatus("ملغاة"))
	require.ErrorIs(t, err, domainerrors.ErrInvalidInvoiceStatus)
}

func TestInvoiceService_UpdateStatus_BumpsDriverCounters(t *testing.T) {
	store := newTestStore(t, testConfig())
	invoiceSvc := newTestInvoiceService(store, nil)
	driverSvc := NewDriverService(DriverServiceParams{DriverRepo: store})
	ctx := context.Background()

	driver, err := driverSvc.AddDriver(ctx, usecase.NewDriver{Name: "خالد"})
	require.NoError(t, err)

	invoice, err := invoiceSvc.AddInvoice(ctx, usecase.NewInvoice{CustomerName: "أحمد علي", DriverID: driver.ID})
	require.NoError(t, err)

	_, err = invoiceSvc.UpdateStatus(ctx, invoice.ID, entity.StatusDelivered)
	require.NoError(t, err)

	// Repeating the same status is not a transition.
	_, err = invoiceSvc.UpdateStatus(ctx, invoice.ID, entity.StatusDelivered)
	require.NoError(t, err)

	_, err = invoiceSvc.UpdateStatus(ctx, invoice.ID, entity.StatusReturned)
	require.NoError(t, err)

	drivers, err := driverSvc.ListDrivers(ctx)
	require.NoError(t, err)
	require.Len(t, drivers, 1)
	assert.Equal(t, 1, drivers[0].Deliveries)
	assert.Equal(t, 1, drivers[0].Returns)
}

func TestInvoiceService_ArchiveInvoice_MovesAndConflicts(t *testing.T) {
	store := newTestStore(t, testConfig())
	publisher := &fakePublisher{}
	svc := newTestInvoiceService(store, publisher)
	ctx := context.Background()

	invoice, err := svc.AddInvoice(ctx, usecase.NewInvoice{CustomerName: "أحمد علي"})
	require.NoError(t, err)

	archived, err := svc.ArchiveInvoice(ctx, invoice.ID)
	require.NoError(t, err)
	assert.False(t, archived.ArchivedAt.IsZero())

	active, err := svc.ListInvoices(ctx, "", "", "")
	require.NoError(t, err)
	assert.Empty(t, active)

	archivedList, err := svc.ListArchivedInvoices(ctx)
	require.NoError(t, err)
	require.Len(t, archivedList, 1)
	assert.Equal(t, invoice.ID, archivedList[0].ID)

	_, err = svc.ArchiveInvoice(ctx, invoice.ID)
	require.ErrorIs(t, err, domainerrors.ErrInvoiceAlreadyArchived)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, service.InvoiceEventArchived, publisher.events[0].Type)
}

func TestInvoiceService_ArchiveInvoice_UnknownInvoice(t *testing.T) {
	store := newTestStore(t, testConfig())
	svc := newTestInvoiceService(store, nil)

	_, err := svc.ArchiveInvoice(context.Background(), "INV999")
	require.ErrorIs(t, err, domainerrors.ErrInvoiceNotFound)
}

func TestInvoiceService_ListInvoices_Filters(t *testing.T) {
	store := newTestStore(t, testConfig())
	invoiceSvc := newTestInvoiceService(store, nil)
	driverSvc := NewDriverService(DriverServiceParams{DriverRepo: store})
	ctx := context.Background()

	driver, err := driverSvc.AddDriver(ctx, usecase.NewDriver{Name: "خالد"})
	require.NoError(t, err)

	first, err := invoiceSvc.AddInvoice(ctx, usecase.NewInvoice{CustomerName: "أحمد علي", DriverID: driver.ID})
	require.NoError(t, err)
	_, err = invoiceSvc.AddInvoice(ctx, usecase.NewInvoice{CustomerName: "سارة محمد"})
	require.NoError(t, err)

	_, err = invoiceSvc.UpdateStatus(ctx, first.ID, entity.StatusDelivered)
	require.NoError(t, err)

	delivered, err := invoiceSvc.ListInvoices(ctx, entity.StatusDelivered, "", "")
	require.NoError(t, err)
	require.Len(t, delivered, 1)
	assert.Equal(t, first.ID, delivered[0].ID)

	byDriver, err := invoiceSvc.ListInvoices(ctx, "", driver.ID, "")
	require.NoError(t, err)
	require.Len(t, byDriver, 1)

	// Free-text search is case-insensitive and combines with other filters.
	byQuery, err := invoiceSvc.ListInvoices(ctx, "", "", "سارة")
	require.NoError(t, err)
	require.Len(t, byQuery, 1)
	assert.Equal(t, "سارة محمد", byQuery[0].CustomerName)

	none, err := invoiceSvc.ListInvoices(ctx, entity.StatusReturned, "", "")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestInvoiceService_Statistics(t *testing.T) {
	store := newTestStore(t, testConfig())
	svc := newTestInvoiceService(store, nil)
	ctx := context.Background()

	first, err := svc.AddInvoice(ctx, usecase.NewInvoice{CustomerName: "أحمد علي"})
	require.NoError(t, err)
	second, err := svc.AddInvoice(ctx, usecase.NewInvoice{CustomerName: "سارة محمد"})
	require.NoError(t, err)
	_, err = svc.AddInvoice(ctx, usecase.NewInvoice{CustomerName: "خالد حسن"})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, first.ID, entity.StatusDelivered)
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, second.ID, entity.StatusReturned)
	require.NoError(t, err)

	stats, err := svc.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalInvoices)
	assert.Equal(t, 1, stats.PendingDelivery)
	assert.Equal(t, 1, stats.Delivered)
	assert.Equal(t, 1, stats.Returned)
	assert.Equal(t, 0, stats.ArchivedInvoices)
}
