package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"munch/internal/delivery/http/response"
	"munch/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for the order engine handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// checkoutRequest optionally carries a requested delivery time (RFC 3339).
// An empty body means the default delivery slot.
type checkoutRequest struct {
	DeliveryTime *time.Time `json:"deliveryTime"`
}

// Checkout handles converting a user's cart into a new order.
func (h *OrderHandler) Checkout(c echo.Context) error {
	var req checkoutRequest
	if c.Request().ContentLength > 0 {
		if err := c.Bind(&req); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
		}
	}

	order, err := h.uc.Checkout(c.Request().Context(), &usecase.CheckoutInput{
		Email:        c.Param("email"),
		DeliveryTime: req.DeliveryTime,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order created")
}

// ListForUser handles listing a user's orders in creation order.
func (h *OrderHandler) ListForUser(c echo.Context) error {
	orders, err := h.uc.ListForUser(c.Request().Context(), c.Param("email"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved")
}

// Summary handles the aggregate order statistics view.
func (h *OrderHandler) Summary(c echo.Context) error {
	summary, err := h.uc.Summary(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "Order summary computed")
}

// Confirm handles transitioning an order to Delivered.
func (h *OrderHandler) Confirm(c echo.Context) error {
	orderID, err := strconv.Atoi(c.Param("orderId"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Order id must be an integer")
	}

	order, err := h.uc.Confirm(c.Request().Context(), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order confirmed")
}
