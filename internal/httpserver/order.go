package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/texnomart/backend/internal/logging"
	mwauth "github.com/texnomart/backend/internal/middleware/auth"
	"github.com/texnomart/backend/internal/service"
	"github.com/texnomart/backend/internal/transport"
)

type OrderHTTP struct {
	Svc *service.OrderService
}

func (h *OrderHTTP) GetOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get_orders")

	userID, ok := mwauth.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authorization required")
	}

	orders, err := h.Svc.UserOrders(ctx, userID)
	if err != nil {
		l.Error("get_orders_error", "status", 500, "reason", "cannot get orders", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get orders")
	}

	return c.JSON(http.StatusOK, transport.NewOrderPayloads(orders))
}

func (h *OrderHTTP) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create_order")

	userID, ok := mwauth.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authorization required")
	}

	var req transport.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("order_create_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Month == 0 {
		req.Month = 3
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("order_create_error", "status", 400, "reason", "invalid body", "error", err)
		return err
	}

	order, err := h.Svc.CreateOrder(ctx, userID, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("order_create_error", "status", 400, "reason", "invalid body", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("order_create_error", "status", 404, "reason", "product with this id dont exist", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "product with this id dont exist")
		}
		l.Error("order_create_error", "status", 500, "reason", "cannot add order to db", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot add order to db")
	}

	l.Info("create_order_success", "orderID", order.ID)
	return c.JSON(http.StatusCreated, transport.NewOrderPayload(*order))
}
