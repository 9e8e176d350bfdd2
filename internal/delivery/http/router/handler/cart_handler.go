package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"munch/internal/delivery/http/response"
	"munch/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for the cart handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: logger,
	}
}

// AddItem handles appending a dish to a user's cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	dishID, err := strconv.Atoi(c.Param("itemId"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Item id must be an integer")
	}

	cart, err := h.uc.AddItem(c.Request().Context(), c.Param("email"), dishID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Item added to cart")
}

// GetCart handles reading a user's cart.
func (h *CartHandler) GetCart(c echo.Context) error {
	cart, err := h.uc.GetCart(c.Request().Context(), c.Param("email"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Cart retrieved")
}
