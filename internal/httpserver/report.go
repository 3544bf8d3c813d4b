package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/furnihome/internal/logging"
	"github.com/Skotchmaster/furnihome/internal/service"
)

type ReportHTTP struct {
	Svc *service.ReportService
}

// GetReports serves sales rows for ?type=monthly (default) or ?type=yearly.
func (h *ReportHTTP) GetReports(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.get_reports")

	rows, err := h.Svc.Sales(ctx, c.QueryParam("type"))
	if err != nil {
		return fail(l, "get_reports_failed", err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *ReportHTTP) GetSummary(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.get_summary")

	sum, err := h.Svc.Summary(ctx)
	if err != nil {
		return fail(l, "get_summary_failed", err)
	}
	return c.JSON(http.StatusOK, sum)
}
