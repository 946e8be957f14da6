package middleware

import (
	"github.com/labstack/echo/v4"
)

// DefaultJSONContentType marks every response as JSON unless the handler
// sets a different Content-Type itself.
func DefaultJSONContentType(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

		return next(c)
	}
}
