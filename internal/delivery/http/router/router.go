// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"mandoob/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	InvoiceHandler   *handler.InvoiceHandler
	DriverHandler    *handler.DriverHandler
	StockHandler     *handler.StockHandler
	AssistantHandler *handler.AssistantHandler
	SettingsHandler  *handler.SettingsHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	invoiceHandler   *handler.InvoiceHandler
	driverHandler    *handler.DriverHandler
	stockHandler     *handler.StockHandler
	assistantHandler *handler.AssistantHandler
	settingsHandler  *handler.SettingsHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		invoiceHandler:   params.InvoiceHandler,
		driverHandler:    params.DriverHandler,
		stockHandler:     params.StockHandler,
		assistantHandler: params.AssistantHandler,
		settingsHandler:  params.SettingsHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Invoice routes
	invoiceGroup := e.Group("/invoices")
	{
		invoiceGroup.POST("", r.invoiceHandler.CreateInvoice)
		invoiceGroup.GET("", r.invoiceHandler.ListInvoices)
		invoiceGroup.GET("/archived", r.invoiceHandler.ListArchivedInvoices)
		invoiceGroup.GET("/delayed", r.invoiceHandler.ListDelayedInvoices)
		invoiceGroup.PATCH("/:id/status", r.invoiceHandler.UpdateStatus)
		invoiceGroup.POST("/:id/archive", r.invoiceHandler.ArchiveInvoice)
	}

	// Driver routes
	driverGroup := e.Group("/drivers")
	{
		driverGroup.POST("", r.driverHandler.CreateDriver)
		driverGroup.GET("", r.driverHandler.ListDrivers)
		driverGroup.PATCH("/:id/availability", r.driverHandler.UpdateAvailability)
	}

	// Stock routes
	stockGroup := e.Group("/stock")
	{
		stockGroup.POST("", r.stockHandler.CreateStockItem)
		stockGroup.GET("", r.stockHandler.ListStockItems)
		stockGroup.GET("/low", r.stockHandler.ListLowStockItems)
		stockGroup.PATCH("/:id/quantity", r.stockHandler.UpdateQuantity)
	}

	// Dashboard statistics
	e.GET("/stats", r.invoiceHandler.GetStatistics)

	// Assistant routes
	assistantGroup := e.Group("/assistant")
	{
		assistantGroup.POST("/ask", r.assistantHandler.Ask)
		assistantGroup.GET("/history", r.assistantHandler.GetHistory)
		assistantGroup.DELETE("/history", r.assistantHandler.ClearHistory)
	}

	// Settings routes
	settingsGroup := e.Group("/settings")
	{
		settingsGroup.GET("/theme", r.settingsHandler.GetTheme)
		settingsGroup.PUT("/theme", r.settingsHandler.SetTheme)
	}
}
