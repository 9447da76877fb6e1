package httpserver

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/onlinemarket/shop/internal/logging"
	"github.com/onlinemarket/shop/internal/models"
	"github.com/onlinemarket/shop/internal/service"
	"github.com/onlinemarket/shop/internal/transport"
)

type TrackHTTP struct {
	Svc       *service.OrderService
	JWTSecret []byte
}

func (h *TrackHTTP) GetOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "track.list")

	userID, err := GetID(c, h.JWTSecret)
	if err != nil {
		return err
	}

	orders, err := h.Svc.ListOrders(ctx, userID)
	if err != nil {
		l.Error("list_orders_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	if len(orders) == 0 {
		return c.JSON(http.StatusOK, transport.MessageResponse{
			Message: "You have no registered order!",
		})
	}

	resp := make([]transport.OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, orderResponse(o))
	}
	return c.JSON(http.StatusOK, resp)
}

// GetOrder reports a missing or foreign order as 200 with a message
// body, not 404. Callers depend on this shape.
func (h *TrackHTTP) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "track.detail")

	userID, err := GetID(c, h.JWTSecret)
	if err != nil {
		return err
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		l.Warn("get_order_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	order, err := h.Svc.GetOrder(ctx, userID, uint(id))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusOK, transport.MessageResponse{
				Message: "There is no order with the entered id!",
			})
		}
		l.Error("get_order_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, orderResponse(*order))
}

func orderResponse(o models.Order) transport.OrderResponse {
	return transport.OrderResponse{
		ID:        o.ID,
		TrackID:   o.TrackID,
		Status:    o.Status,
		CreatedAt: o.CreatedAt.Format(time.RFC3339),
	}
}
