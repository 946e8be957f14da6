package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "signup/internal/delivery/context"
	domainerrors "signup/internal/domain/errors"
	"signup/internal/errors"

	"github.com/labstack/echo/v4"
)

// NameHTTPError is the body name for transport-level rejections such as
// unknown routes or oversized bodies.
const NameHTTPError = "HTTPError"

// ErrorMiddleware turns errors escaping the handlers into {name, message} bodies.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. Anything that is
// not a known 4xx becomes the generic server error; details stay in the log.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, body := m.resolve(err, c)

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = c.JSON(status, body)
	}
	if writeErr != nil {
		m.logger.Error("Failed to write error response", slog.Any("error", writeErr))
	}
}

func (m *ErrorMiddleware) resolve(err error, c echo.Context) (int, domainerrors.ErrorBody) {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		return appErr.HTTPCode(), domainerrors.ErrorBody{Name: appErr.Name(), Message: appErr.Message()}
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) && httpErr.Code < http.StatusInternalServerError {
		message := http.StatusText(httpErr.Code)
		if httpErr.Message != nil {
			if msg := fmt.Sprint(httpErr.Message); msg != "" {
				message = msg
			}
		}

		return httpErr.Code, domainerrors.ErrorBody{Name: NameHTTPError, Message: message}
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	return domainerrors.ErrServerError.HTTPCode(), domainerrors.ErrServerError.Body()
}
