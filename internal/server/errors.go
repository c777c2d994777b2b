package server

import (
	"errors"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/collectives/internal/handlers"
	"github.com/nfrund/collectives/internal/middleware"
)

// setupErrorHandling installs the central error handler. Errors that are not
// echo.HTTPErrors are logged with a stack trace and answered with a 500.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		logger := middleware.FromContext(c.Request().Context())

		code := http.StatusInternalServerError
		message := http.StatusText(code)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			message = http.StatusText(code)
			if m, ok := he.Message.(string); ok && m != "" {
				message = m
			}
			if code >= http.StatusInternalServerError {
				logger.Error("HTTP error", "status", code, "error", err)
			}
		} else {
			logger.Error("Internal Server Error (Unhandled)",
				"error", err,
				"path", c.Request().URL.Path,
				"stack_trace", string(debug.Stack()),
			)
		}

		var respErr error
		switch {
		case c.Request().Method == http.MethodHead:
			respErr = c.NoContent(code)
		case strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON):
			respErr = c.JSON(code, handlers.ErrorResponse{Code: errorCode(code), Message: message})
		default:
			respErr = c.String(code, message)
		}
		if respErr != nil {
			logger.Error("Failed to write error response", "error", respErr)
		}
	}
}

// errorCode turns a status into a stable snake_case code, e.g. "not_found".
func errorCode(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return "error"
	}
	return strings.ToLower(strings.ReplaceAll(text, " ", "_"))
}
