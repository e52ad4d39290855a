package handler

import (
	"net/http"

	"mandoob/internal/delivery/http/response"
	"mandoob/internal/domain/entity"
	"mandoob/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DriverHandlerParams holds dependencies for DriverHandler, injected by Fx.
type DriverHandlerParams struct {
	fx.In

	DriverUC usecase.DriverUsecase
}

// DriverHandler holds dependencies for driver-related handlers
type DriverHandler struct {
	driverUC usecase.DriverUsecase
}

// NewDriverHandler is the constructor for DriverHandler
func NewDriverHandler(params DriverHandlerParams) *DriverHandler {
	return &DriverHandler{driverUC: params.DriverUC}
}

// CreateDriverRequest represents the request body for registering a driver
type CreateDriverRequest struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone"`
	Vehicle string `json:"vehicle"`
}

// UpdateAvailabilityRequest represents the request body for flipping availability
type UpdateAvailabilityRequest struct {
	Availability string `json:"availability" validate:"required"`
}

// CreateDriver handles registering a new driver
func (h *DriverHandler) CreateDriver(c echo.Context) error {
	var req CreateDriverRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid driver input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	driver, err := h.driverUC.AddDriver(c.Request().Context(), usecase.NewDriver{
		Name:    req.Name,
		Phone:   req.Phone,
		Vehicle: req.Vehicle,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, driver, "Driver created successfully")
}

// ListDrivers handles listing all drivers
func (h *DriverHandler) ListDrivers(c echo.Context) error {
	drivers, err := h.driverUC.ListDrivers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, drivers, "Drivers retrieved successfully")
}

// UpdateAvailability handles marking a driver available or busy
func (h *DriverHandler) UpdateAvailability(c echo.Context) error {
	var req UpdateAvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid availability input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	driver, err := h.driverUC.SetAvailability(c.Request().Context(), c.Param("id"), entity.DriverAvailability(req.Availability))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, driver, "Driver availability updated successfully")
}
