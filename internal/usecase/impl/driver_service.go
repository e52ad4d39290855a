package impl

import (
	"context"

	"mandoob/internal/domain/entity"
	domainerrors "mandoob/internal/domain/errors"
	"mandoob/internal/domain/repository"
	"mandoob/internal/errors"
	"mandoob/internal/usecase"

	"go.uber.org/fx"
)

type driverService struct {
	driverRepo repository.DriverRepository
}

// DriverServiceParams holds dependencies for DriverService, injected by Fx.
type DriverServiceParams struct {
	fx.In

	DriverRepo repository.DriverRepository
}

// NewDriverService creates a new driver service instance
func NewDriverService(params DriverServiceParams) usecase.DriverUsecase {
	return &driverService{driverRepo: params.DriverRepo}
}

// AddDriver registers a driver as available with zeroed counters.
func (s *driverService) AddDriver(ctx context.Context, input usecase.NewDriver) (*entity.Driver, error) {
	driver := &entity.Driver{
		Name:         input.Name,
		Phone:        input.Phone,
		Vehicle:      input.Vehicle,
		Availability: entity.DriverAvailable,
	}

	created, err := s.driverRepo.CreateDriver(ctx, driver)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create driver")
	}

	return created, nil
}

// ListDrivers returns all drivers.
func (s *driverService) ListDrivers(ctx context.Context) ([]*entity.Driver, error) {
	drivers, err := s.driverRepo.ListDrivers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list drivers")
	}

	return drivers, nil
}

// SetAvailability marks a driver available or busy.
func (s *driverService) SetAvailability(ctx context.Context, id string, availability entity.DriverAvailability) (*entity.Driver, error) {
	if !availability.Valid() {
		return nil, domainerrors.ErrInvalidAvailability
	}

	driver, err := s.driverRepo.UpdateDriverAvailability(ctx, id, availability)
	if err != nil {
		if errors.Is(err, repository.ErrDriverNotFound) {
			return nil, domainerrors.ErrDriverNotFound
		}

		return nil, errors.Wrap(err, "failed to update driver availability")
	}

	return driver, nil
}
