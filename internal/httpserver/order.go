package httpserver

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/furnihome/internal/logging"
	authmw "github.com/Skotchmaster/furnihome/internal/middleware/auth"
	"github.com/Skotchmaster/furnihome/internal/service"
	"github.com/Skotchmaster/furnihome/internal/transport"
)

type OrderHTTP struct {
	Svc *service.OrderService
}

func (h *OrderHTTP) Quote(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "checkout.quote")

	var req transport.QuoteRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("quote_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	q, err := h.Svc.Quote(ctx, req.ProductID, req.Quantity)
	if err != nil {
		return fail(l, "quote_failed", err)
	}
	return c.JSON(http.StatusOK, q)
}

func (h *OrderHTTP) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create_order")

	userID, ok := authmw.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing access token")
	}

	var req transport.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_order_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if len(req.Items) != 1 {
		l.Warn("create_order_failed", "status", 400, "reason", "item count", "items", len(req.Items))
		return echo.NewHTTPError(http.StatusBadRequest, "an order must contain exactly one item")
	}

	item := req.Items[0]
	order, err := h.Svc.PlaceOrder(ctx, userID, service.CartLine{
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		Color:     item.Color,
	}, req.ShippingInfo)
	if err != nil {
		return fail(l, "create_order_failed", err)
	}

	l.Info("create_order_success", "order_id", order.ID, "user_id", userID)
	return c.JSON(http.StatusCreated, order)
}

func (h *OrderHTTP) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.list_orders")

	userID, ok := authmw.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing access token")
	}

	orders, err := h.Svc.ListOrders(ctx, userID, c.QueryParam("q"))
	if err != nil {
		return fail(l, "list_orders_failed", err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHTTP) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get_order")

	userID, ok := authmw.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing access token")
	}

	order, err := h.Svc.GetOrder(ctx, userID, c.Param("id"))
	if err != nil {
		return fail(l, "get_order_failed", err)
	}
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHTTP) MarkItemReviewed(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.mark_item_reviewed")

	userID, ok := authmw.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing access token")
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		l.Warn("mark_item_reviewed_failed", "status", 400, "reason", "productId is not a uuid", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "productId is not a uuid")
	}

	order, err := h.Svc.MarkItemReviewed(ctx, userID, c.Param("orderId"), productID)
	if err != nil {
		return fail(l, "mark_item_reviewed_failed", err)
	}
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHTTP) AdminListOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.list_orders")

	orders, err := h.Svc.ListAllOrders(ctx, c.QueryParam("q"))
	if err != nil {
		return fail(l, "admin_list_orders_failed", err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHTTP) UpdateStatus(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.update_order_status")

	var req transport.UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_order_status_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Svc.UpdateStatus(ctx, c.Param("id"), req.Status)
	if err != nil {
		return fail(l, "update_order_status_failed", err)
	}

	l.Info("update_order_status_success", "order_id", order.ID, "status", order.Status)
	return c.JSON(http.StatusOK, order)
}
