package handler

import (
	"net/http"

	"mandoob/internal/delivery/http/response"
	"mandoob/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SettingsHandlerParams holds dependencies for SettingsHandler, injected by Fx.
type SettingsHandlerParams struct {
	fx.In

	SettingsUC usecase.SettingsUsecase
}

// SettingsHandler holds dependencies for settings handlers
type SettingsHandler struct {
	settingsUC usecase.SettingsUsecase
}

// NewSettingsHandler is the constructor for SettingsHandler
func NewSettingsHandler(params SettingsHandlerParams) *SettingsHandler {
	return &SettingsHandler{settingsUC: params.SettingsUC}
}

// SetThemeRequest represents the request body for switching the UI theme
type SetThemeRequest struct {
	Theme string `json:"theme" validate:"required"`
}

// GetTheme handles reading the active UI theme
func (h *SettingsHandler) GetTheme(c echo.Context) error {
	theme, err := h.settingsUC.Theme(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"theme": theme}, "Theme retrieved successfully")
}

// SetTheme handles switching the UI theme
func (h *SettingsHandler) SetTheme(c echo.Context) error {
	var req SetThemeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid theme input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.settingsUC.SetTheme(c.Request().Context(), req.Theme); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"theme": req.Theme}, "Theme updated successfully")
}
