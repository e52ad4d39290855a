package impl

import (
	"context"
	"testing"

	"mandoob/internal/domain/entity"
	domainerrors "mandoob/internal/domain/errors"
	"mandoob/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriverService_AddDriver_DefaultsToAvailable(t *testing.T) {
	store := newTestStore(t, testConfig())
	svc := NewDriverService(DriverServiceParams{DriverRepo: store})
	ctx := context.Background()

	driver, err := svc.AddDriver(ctx, usecase.NewDriver{Name: "خالد", Phone: "0501234567"})
	require.NoError(t, err)

	assert.Equal(t, "DRV001", driver.ID)
	assert.Equal(t, entity.DriverAvailable, driver.Availability)
	assert.Zero(t, driver.Deliveries)
	assert.Zero(t, driver.Returns)
}

func TestDriverService_SetAvailability(t *testing.T) {
	store := newTestStore(t, testConfig())
	svc := NewDriverService(DriverServiceParams{DriverRepo: store})
	ctx := context.Background()

	driver, err := svc.AddDriver(ctx, usecase.NewDriver{Name: "خالد"})
	require.NoError(t, err)

	updated, err := svc.SetAvailability(ctx, driver.ID, entity.DriverBusy)
	require.NoError(t, err)
	assert.Equal(t, entity.DriverBusy, updated.Availability)
}

func TestDriverService_SetAvailability_InvalidValue(t *testing.T) {
	store := newTestStore(t, testConfig())
	svc := NewDriverService(DriverServiceParams{DriverRepo: store})

	_, err := svc.SetAvailability(context.Background(), "DRV001", entity.DriverAvailability("غائب"))
	require.ErrorIs(t, err, domainerrors.ErrInvalidAvailability)
}

func TestDriverService_SetAvailability_UnknownDriver(t *testing.T) {
	store := newTestStore(t, testConfig())
	svc := NewDriverService(DriverServiceParams{DriverRepo: store})

	_, err := svc.SetAvailability(context.Background(), "DRV999", entity.DriverBusy)
	require.ErrorIs(t, err, domainerrors.ErrDriverNotFound)
}
