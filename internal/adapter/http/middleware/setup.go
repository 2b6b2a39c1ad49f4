package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Setup registers the gateway middleware chain. Correlation runs first so
// the logger and recovery middleware can tag their entries, request logging
// second, and panic recovery last so it sits closest to the handlers.
func Setup(e *echo.Echo, log zerolog.Logger) {
	e.Use(RequestID())
	e.Use(RequestLogger(log))
	e.Use(Recover(log))
}
