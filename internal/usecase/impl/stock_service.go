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

type stockService struct {
	stockRepo repository.StockRepository
}

// StockServiceParams holds dependencies for StockService, injected by Fx.
type StockServiceParams struct {
	fx.In

	StockRepo repository.StockRepository
}

// NewStockService creates a new stock service instance
func NewStockService(params StockServiceParams) usecase.StockUsecase {
	return &stockService{stockRepo: params.StockRepo}
}

// AddStockItem registers an item with a fresh sequential ID.
func (s *stockService) AddStockItem(ctx context.Context, input usecase.NewStockItem) (*entity.StockItem, error) {
	if input.Quantity < 0 || input.MinQuantity < 0 {
		return nil, domainerrors.ErrNegativeQuantity
	}

	item := &entity.StockItem{
		Name:        input.Name,
		Category:    input.Category,
		Quantity:    input.Quantity,
		MinQuantity: input.MinQuantity,
		UnitPrice:   input.UnitPrice,
		Supplier:    input.Supplier,
	}

	created, err := s.stockRepo.CreateStockItem(ctx, item)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create stock item")
	}

	return created, nil
}

// ListStockItems returns all items.
func (s *stockService) ListStockItems(ctx context.Context) ([]*entity.StockItem, error) {
	items, err := s.stockRepo.ListStockItems(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stock items")
	}

	return items, nil
}

// UpdateQuantity sets the on-hand quantity. Negative quantities are rejected.
func (s *stockService) UpdateQuantity(ctx context.Context, id string, quantity int) (*entity.StockItem, error) {
	if quantity < 0 {
		return nil, domainerrors.ErrNegativeQuantity
	}

	item, err := s.stockRepo.UpdateStockQuantity(ctx, id, quantity)
	if err != nil {
		if errors.Is(err, repository.ErrStockItemNotFound) {
			return nil, domainerrors.ErrStockItemNotFound
		}

		return nil, errors.Wrap(err, "failed to update stock quantity")
	}

	return item, nil
}

// LowStockItems returns items below their minimum threshold.
func (s *stockService) LowStockItems(ctx context.Context) ([]*entity.StockItem, error) {
	items, err := s.stockRepo.LowStockItems(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list low stock items")
	}

	return items, nil
}
