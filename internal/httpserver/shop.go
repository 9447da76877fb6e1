package httpserver

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/onlinemarket/shop/internal/logging"
	"github.com/onlinemarket/shop/internal/mykafka"
	"github.com/onlinemarket/shop/internal/service"
	"github.com/onlinemarket/shop/internal/transport"
)

type ShopHTTP struct {
	Svc       *service.CheckoutService
	Producer  *mykafka.Producer
	JWTSecret []byte
}

// Shop converts the caller's cart into an order. An empty cart is not
// an error: the caller gets a message body and no order is created.
func (h *ShopHTTP) Shop(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "shop.checkout")

	userID, err := GetID(c, h.JWTSecret)
	if err != nil {
		return err
	}

	order, err := h.Svc.Checkout(ctx, userID)
	if err != nil {
		l.Error("checkout_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	if order == nil {
		return c.JSON(http.StatusOK, transport.MessageResponse{
			Message: "There is no item in your shopping cart!",
		})
	}

	publish(c, h.Producer, "order_events", fmt.Sprint(userID), map[string]any{
		"type":     "order_created",
		"userID":   userID,
		"orderID":  order.ID,
		"track_id": order.TrackID,
	})

	l.Info("checkout_success", "orderID", order.ID)
	return c.JSON(http.StatusOK, transport.CheckoutResponse{
		TrackID: order.TrackID,
		Date:    order.CreatedAt.Format("2006-01-02"),
		Time:    order.CreatedAt.Format("15:04:05"),
	})
}
