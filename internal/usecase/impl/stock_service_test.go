package impl

import (
	"context"
	"testing"

	domainerrors "mandoob/internal/domain/errors"
	"mandoob/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStockService_AddStockItem(t *testing.T) {
	store := newTestStore(t, testConfig())
	svc := NewStockService(StockServiceParams{StockRepo: store})
	ctx := context.Background()

	item, err := svc.AddStockItem(ctx, usecase.NewStockItem{
		Name:        "كرتونة مياه",
		Category:    "مشروبات",
		Quantity:    10,
		MinQuantity: 5,
		UnitPrice:   25,
	})
	require.NoError(t, err)
	assert.Equal(t, "STK001", item.ID)
	assert.False(t, item.LowStock())
}

func TestStockService_AddStockItem_NegativeQuantity(t *testing.T) {
	store := newTestStore(t, testConfig())
	svc := NewStockService(StockServiceParams{StockRepo: store})

	_, err := svc.AddStockItem(context.Background(), usecase.NewStockItem{Name: "صنف", Quantity: -1})
	require.ErrorIs(t, err, domainerrors.ErrNegativeQuantity)
}

func TestStockService_UpdateQuantity(t *testing.T) {
	store := newTestStore(t, testConfig())
	svc := NewStockService(StockServiceParams{StockRepo: store})
	ctx := context.Background()

	item, err := svc.AddStockItem(ctx, usecase.NewStockItem{Name: "كرتونة مياه", Quantity: 10, MinQuantity: 5})
	require.NoError(t, err)

	updated, err := svc.UpdateQuantity(ctx, item.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Quantity)

	_, err = svc.UpdateQuantity(ctx, item.ID, -2)
	require.ErrorIs(t, err, domainerrors.ErrNegativeQuantity)

	_, err = svc.UpdateQuantity(ctx, "STK999", 4)
	require.ErrorIs(t, err, domainerrors.ErrStockItemNotFound)
}

func TestStockService_LowStockItems_DerivedFromThreshold(t *testing.T) {
	store := newTestStore(t, testConfig())
	svc := NewStockService(StockServiceParams{StockRepo: store})
	ctx := context.Background()

	item, err := svc.AddStockItem(ctx, usecase.NewStockItem{Name: "كرتونة مياه", Quantity: 2, MinQuantity: 5})
	require.NoError(t, err)

	low, err := svc.LowStockItems(ctx)
	require.NoError(t, err)
	require.Len(t, low, 1)

	// Low stock is recomputed, never stored.
	_, err = svc.UpdateQuantity(ctx, item.ID, 10)
	require.NoError(t, err)

	low, err = svc.LowStockItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, low)
}
