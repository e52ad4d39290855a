package repository

import (
	"context"

	"mandoob/internal/domain/entity"
	"mandoob/internal/errors"
)

// ErrDriverNotFound is returned when no driver carries the ID.
var ErrDriverNotFound = errors.New("driver not found")

// DriverRepository defines driver operations against the entity store.
type DriverRepository interface {
	// CreateDriver assigns a fresh sequential ID, zeroes the delivery and
	// return counters and stores the driver.
	CreateDriver(ctx context.Context, driver *entity.Driver) (*entity.Driver, error)

	// ListDrivers returns all drivers in insertion order.
	ListDrivers(ctx context.Context) ([]*entity.Driver, error)

	// FindDriverByID retrieves a driver by ID.
	FindDriverByID(ctx context.Context, id string) (*entity.Driver, error)

	// UpdateDriverAvailability flips the availability status.
	UpdateDriverAvailability(ctx context.Context, id string, availability entity.DriverAvailability) (*entity.Driver, error)

	// IncrementDriverDeliveries bumps the cumulative delivery counter.
	IncrementDriverDeliveries(ctx context.Context, id string) error

	// IncrementDriverReturns bumps the cumulative return counter.
	IncrementDriverReturns(ctx context.Context, id string) error
}
