package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/raviWithTraversia/alliance-API/internal/adapter/http/response"
)

// Recover turns a handler panic into a logged 500 response, so one
// malformed supplier payload cannot take the server down.
func Recover(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					msg := fmt.Sprintf("%v", r)
					if perr, ok := r.(error); ok {
						msg = perr.Error()
					}

					log.Error().
						Str("request_id", GetRequestID(c)).
						Str("panic", msg).
						Str("stack", string(debug.Stack())).
						Msg("Panic recovered")

					if !c.Response().Committed {
						err = response.InternalServerError(c)
					}
				}
			}()

			return next(c)
		}
	}
}
