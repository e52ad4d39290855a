package usecase

import (
	"context"

	"mandoob/internal/domain/entity"
)

// NewDriver carries caller-supplied driver fields; counters start at zero.
type NewDriver struct {
	Name    string
	Phone   string
	Vehicle string
}

// DriverUsecase defines the interface for driver management operations.
type DriverUsecase interface {
	// AddDriver registers a driver as available with zeroed counters.
	AddDriver(ctx context.Context, input NewDriver) (*entity.Driver, error)

	// ListDrivers returns all drivers.
	ListDrivers(ctx context.Context) ([]*entity.Driver, error)

	// SetAvailability marks a driver available or busy.
	SetAvailability(ctx context.Context, id string, availability entity.DriverAvailability) (*entity.Driver, error)
}
