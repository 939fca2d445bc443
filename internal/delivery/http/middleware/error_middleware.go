package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "doorman/internal/delivery/context"
	"doorman/internal/delivery/http/response"
	domainerrors "doorman/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware centralizes the error-to-response mapping.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError is Echo's HTTPErrorHandler. Domain errors surface their own
// status and wire message; anything else is logged with full detail and
// returned to the caller only as a generic server error.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logInternal(c, err, appErr.Details())
		}
		_ = response.Send(c, appErr.HTTPCode(), appErr.Message())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		msg, ok := httpErr.Message.(string)
		if !ok {
			msg = http.StatusText(httpErr.Code)
		}
		_ = response.Send(c, httpErr.Code, msg)

		return
	}

	m.logInternal(c, err, "")
	_ = response.Send(c, http.StatusInternalServerError, "Server error")
}

func (m *ErrorMiddleware) logInternal(c echo.Context, err error, details string) {
	attrs := []any{
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
		slog.String("request_id", deliverycontext.GetRequestID(c)),
	}
	if details != "" {
		attrs = append(attrs, slog.String("details", details))
	}

	m.logger.Error("Request failed", attrs...)
}
