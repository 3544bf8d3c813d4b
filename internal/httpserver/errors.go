package httpserver

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/furnihome/internal/logging"
	"github.com/Skotchmaster/furnihome/internal/service"
	"github.com/Skotchmaster/furnihome/internal/transport"
)

const internalErrorMessage = "internal server error"

var sentinelStatus = []struct {
	err  error
	code int
}{
	{service.ErrValidation, http.StatusBadRequest},
	{service.ErrUnauthorized, http.StatusUnauthorized},
	{service.ErrForbidden, http.StatusForbidden},
	{service.ErrNotFound, http.StatusNotFound},
	{service.ErrConflict, http.StatusConflict},
}

// fail logs a service error under event and converts it to the HTTP error
// the client sees. Unexpected errors become a bare 500.
func fail(l *slog.Logger, event string, err error) error {
	for _, s := range sentinelStatus {
		if errors.Is(err, s.err) {
			msg := strings.TrimPrefix(err.Error(), s.err.Error()+": ")
			l.Warn(event, "status", s.code, "reason", msg, "error", err)
			return echo.NewHTTPError(s.code, msg)
		}
	}
	l.Error(event, "status", http.StatusInternalServerError, "reason", "unexpected error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, internalErrorMessage)
}

// ErrorHandler renders every error as {"error": "..."}; 5xx bodies never
// carry internal details.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := internalErrorMessage

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if code < http.StatusInternalServerError {
			msg = fmt.Sprint(he.Message)
		}
	} else {
		logging.FromContext(c.Request().Context()).Error("unhandled_error", "error", err)
	}

	var werr error
	if c.Request().Method == http.MethodHead {
		werr = c.NoContent(code)
	} else {
		werr = c.JSON(code, transport.ErrorResponse{Error: msg})
	}
	if werr != nil {
		logging.FromContext(c.Request().Context()).Error("write_error_response", "error", werr)
	}
}
