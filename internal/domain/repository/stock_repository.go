package repository

import (
	"context"

	"mandoob/internal/domain/entity"
	"mandoob/internal/errors"
)

// ErrStockItemNotFound is returned when no stock item carries the ID.
var ErrStockItemNotFound = errors.New("stock item not found")

// StockRepository defines stock operations against the entity store.
type StockRepository interface {
	// CreateStockItem assigns a fresh sequential ID and stores the item.
	CreateStockItem(ctx context.Context, item *entity.StockItem) (*entity.StockItem, error)

	// ListStockItems returns all stock items in insertion order.
	ListStockItems(ctx context.Context) ([]*entity.StockItem, error)

	// FindStockItemByID retrieves a stock item by ID.
	FindStockItemByID(ctx context.Context, id string) (*entity.StockItem, error)

	// UpdateStockQuantity sets the on-hand quantity of an item.
	UpdateStockQuantity(ctx context.Context, id string, quantity int) (*entity.StockItem, error)

	// LowStockItems returns items whose quantity is strictly below their
	// minimum threshold.
	LowStockItems(ctx context.Context) ([]*entity.StockItem, error)
}
