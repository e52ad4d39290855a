package handler

import (
	"net/http"

	"mandoob/internal/delivery/http/response"
	"mandoob/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StockHandlerParams holds dependencies for StockHandler, injected by Fx.
type StockHandlerParams struct {
	fx.In

	StockUC usecase.StockUsecase
}

// StockHandler holds dependencies for stock-related handlers
type StockHandler struct {
	stockUC usecase.StockUsecase
}

// NewStockHandler is the constructor for StockHandler
func NewStockHandler(params StockHandlerParams) *StockHandler {
	return &StockHandler{stockUC: params.StockUC}
}

// CreateStockItemRequest represents the request body for adding a stock item
type CreateStockItemRequest struct {
	Name        string  `json:"name" validate:"required"`
	Category    string  `json:"category"`
	Quantity    int     `json:"quantity" validate:"gte=0"`
	MinQuantity int     `json:"min_quantity" validate:"gte=0"`
	UnitPrice   float64 `json:"unit_price" validate:"gte=0"`
	Supplier    string  `json:"supplier"`
}

// UpdateQuantityRequest represents the request body for setting the quantity.
// A pointer keeps an explicit zero distinguishable from a missing field.
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

// CreateStockItem handles adding a new stock item
func (h *StockHandler) CreateStockItem(c echo.Context) error {
	var req CreateStockItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid stock item input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	item, err := h.stockUC.AddStockItem(c.Request().Context(), usecase.NewStockItem{
		Name:        req.Name,
		Category:    req.Category,
		Quantity:    req.Quantity,
		MinQuantity: req.MinQuantity,
		UnitPrice:   req.UnitPrice,
		Supplier:    req.Supplier,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, item, "Stock item created successfully")
}

// ListStockItems handles listing all stock items
func (h *StockHandler) ListStockItems(c echo.Context) error {
	items, err := h.stockUC.ListStockItems(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items, "Stock items retrieved successfully")
}

// ListLowStockItems handles listing items below their minimum threshold
func (h *StockHandler) ListLowStockItems(c echo.Context) error {
	items, err := h.stockUC.LowStockItems(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items, "Low stock items retrieved successfully")
}

// UpdateQuantity handles setting the on-hand quantity of an item
func (h *StockHandler) UpdateQuantity(c echo.Context) error {
	var req UpdateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	item, err := h.stockUC.UpdateQuantity(c.Request().Context(), c.Param("id"), *req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item, "Stock quantity updated successfully")
}
