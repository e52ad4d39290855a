package handler

import (
	"log/slog"
	"net/http"

	"mandoob/internal/delivery/http/response"
	"mandoob/internal/domain/entity"
	"mandoob/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// InvoiceHandlerParams holds dependencies for InvoiceHandler, injected by Fx.
type InvoiceHandlerParams struct {
	fx.In

	InvoiceUC usecase.InvoiceUsecase
	Logger    *slog.Logger
}

// InvoiceHandler holds dependencies for invoice-related handlers
type InvoiceHandler struct {
	invoiceUC usecase.InvoiceUsecase
	logger    *slog.Logger
}

// NewInvoiceHandler is the constructor for InvoiceHandler
func NewInvoiceHandler(params InvoiceHandlerParams) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceUC: params.InvoiceUC,
		logger:    params.Logger,
	}
}

// CreateInvoiceRequest represents the request body for creating an invoice
type CreateInvoiceRequest struct {
	CustomerName string  `json:"customer_name" validate:"required"`
	Phone        string  `json:"phone"`
	Address      string  `json:"address"`
	Amount       float64 `json:"amount" validate:"gte=0"`
	DriverID     string  `json:"driver_id"`
}

// UpdateStatusRequest represents the request body for a status transition
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// CreateInvoice handles creating a new invoice
func (h *InvoiceHandler) CreateInvoice(c echo.Context) error {
	var req CreateInvoiceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid invoice input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	invoice, err := h.invoiceUC.AddInvoice(c.Request().Context(), usecase.NewInvoice{
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Address:      req.Address,
		Amount:       req.Amount,
		DriverID:     req.DriverID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, invoice, "Invoice created successfully")
}

// ListInvoices handles listing active invoices with optional filters
func (h *InvoiceHandler) ListInvoices(c echo.Context) error {
	status := entity.InvoiceStatus(c.QueryParam("status"))
	driverID := c.QueryParam("driver_id")
	query := c.QueryParam("q")

	invoices, err := h.invoiceUC.ListInvoices(c.Request().Context(), status, driverID, query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, invoices, "Invoices retrieved successfully")
}

// ListArchivedInvoices handles listing the archive
func (h *InvoiceHandler) ListArchivedInvoices(c echo.Context) error {
	invoices, err := h.invoiceUC.ListArchivedInvoices(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, invoices, "Archived invoices retrieved successfully")
}

// ListDelayedInvoices handles listing pending invoices past the staleness window
func (h *InvoiceHandler) ListDelayedInvoices(c echo.Context) error {
	invoices, err := h.invoiceUC.DelayedInvoices(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, invoices, "Delayed invoices retrieved successfully")
}

// UpdateStatus handles an invoice status transition
func (h *InvoiceHandler) UpdateStatus(c echo.Context) error {
	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	invoice, err := h.invoiceUC.UpdateStatus(c.Request().Context(), c.Param("id"), entity.InvoiceStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, invoice, "Invoice status updated successfully")
}

// ArchiveInvoice handles moving an invoice into the archive
func (h *InvoiceHandler) ArchiveInvoice(c echo.Context) error {
	invoice, err := h.invoiceUC.ArchiveInvoice(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, invoice, "Invoice archived successfully")
}

// GetStatistics handles the dashboard statistics snapshot
func (h *InvoiceHandler) GetStatistics(c echo.Context) error {
	stats, err := h.invoiceUC.Statistics(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats, "Statistics retrieved successfully")
}
