package handler

import (
	"log/slog"
	"net/http"

	"mandoob/internal/delivery/http/response"
	"mandoob/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AssistantHandlerParams holds dependencies for AssistantHandler, injected by Fx.
type AssistantHandlerParams struct {
	fx.In

	AssistantUC usecase.AssistantUsecase
	Logger      *slog.Logger
}

// AssistantHandler holds dependencies for the chat assistant handlers
type AssistantHandler struct {
	assistantUC usecase.AssistantUsecase
	logger      *slog.Logger
}

// NewAssistantHandler is the constructor for AssistantHandler
func NewAssistantHandler(params AssistantHandlerParams) *AssistantHandler {
	return &AssistantHandler{
		assistantUC: params.AssistantUC,
		logger:      params.Logger,
	}
}

// AskRequest represents the request body for asking the assistant
type AskRequest struct {
	Question string `json:"question" validate:"required"`
}

// Ask handles one assistant exchange
func (h *AssistantHandler) Ask(c echo.Context) error {
	var req AskRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid question input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	answer, err := h.assistantUC.Ask(c.Request().Context(), req.Question)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, answer, "Question answered successfully")
}

// GetHistory handles retrieving the retained conversation
func (h *AssistantHandler) GetHistory(c echo.Context) error {
	history, err := h.assistantUC.History(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, history, "Chat history retrieved successfully")
}

// ClearHistory handles discarding the retained conversation
func (h *AssistantHandler) ClearHistory(c echo.Context) error {
	if err := h.assistantUC.ClearHistory(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Chat history cleared"}, "Chat history cleared successfully")
}
