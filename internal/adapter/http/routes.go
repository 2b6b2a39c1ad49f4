package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all distribution gateway API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *AirHandler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	// API v1 group
	api := e.Group("/api/v1")

	// Air group
	air := api.Group("/air")
	air.POST("/search", h.Search)
	air.POST("/pricing", h.Pricing)
	air.POST("/book", h.Book)
	air.POST("/ticket", h.Ticket)
	air.POST("/import-pnr/:pnr", h.ImportPNR)
}

// RegisterRoutesWithMiddleware registers routes with custom middleware.
// This allows for endpoint-specific middleware configuration.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *AirHandler, middleware ...echo.MiddlewareFunc) {
	// Health check endpoint (no version prefix, no middleware)
	e.GET("/health", h.Health)

	// API v1 group with middleware
	api := e.Group("/api/v1", middleware...)

	// Air group
	air := api.Group("/air")
	air.POST("/search", h.Search)
	air.POST("/pricing", h.Pricing)
	air.POST("/book", h.Book)
	air.POST("/ticket", h.Ticket)
	air.POST("/import-pnr/:pnr", h.ImportPNR)
}
