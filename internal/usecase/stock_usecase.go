package usecase

import (
	"context"

	"mandoob/internal/domain/entity"
)

// NewStockItem carries caller-supplied stock fields.
type NewStockItem struct {
	Name        string
	Category    string
	Quantity    int
	MinQuantity int
	UnitPrice   float64
	Supplier    string
}

// StockUsecase defines the interface for stock management operations.
type StockUsecase interface {
	// AddStockItem registers an item with a fresh sequential ID.
	AddStockItem(ctx context.Context, input NewStockItem) (*entity.StockItem, error)

	// ListStockItems returns all items.
	ListStockItems(ctx context.Context) ([]*entity.StockItem, error)

	// UpdateQuantity sets the on-hand quantity. Negative quantities are rejected.
	UpdateQuantity(ctx context.Context, id string, quantity int) (*entity.StockItem, error)

	// LowStockItems returns items below their minimum threshold.
	LowStockItems(ctx context.Context) ([]*entity.StockItem, error)
}
