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

// MenuHandler holds dependencies for the catalogue and rating handlers.
type MenuHandler struct {
	uc     usecase.MenuUsecase
	logger *slog.Logger
}

// NewMenuHandler is the constructor for MenuHandler, injected by Fx.
func NewMenuHandler(uc usecase.MenuUsecase, logger *slog.Logger) *MenuHandler {
	return &MenuHandler{
		uc:     uc,
		logger: logger,
	}
}

type rateDishRequest struct {
	Email string `json:"email" validate:"required,email"`
	Score int    `json:"score" validate:"required"`
}

// List handles the filtered, sorted catalogue view.
func (h *MenuHandler) List(c echo.Context) error {
	dishes, err := h.uc.List(c.Request().Context(), &usecase.ListMenuInput{
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
		SortBy:   c.QueryParam("sortBy"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dishes, "Menu retrieved")
}

// Vegetarian handles the fixed vegetarian view.
func (h *MenuHandler) Vegetarian(c echo.Context) error {
	dishes, err := h.uc.Vegetarian(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dishes, "Vegetarian menu retrieved")
}

// TopRated handles the fixed top-rated view.
func (h *MenuHandler) TopRated(c echo.Context) error {
	dishes, err := h.uc.TopRated(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dishes, "Top-rated menu retrieved")
}

// GetDish handles reading a single dish by id.
func (h *MenuHandler) GetDish(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Dish id must be an integer")
	}

	dish, err := h.uc.GetDish(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dish, "Dish retrieved")
}

// RateDish handles submitting a rating for a dish.
func (h *MenuHandler) RateDish(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Dish id must be an integer")
	}

	var req rateDishRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rating input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	rating, err := h.uc.RateDish(c.Request().Context(), &usecase.RateDishInput{
		Email:  req.Email,
		DishID: id,
		Score:  req.Score,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, rating, "Rating recorded")
}

// ListRatings handles reading all ratings submitted for a dish.
func (h *MenuHandler) ListRatings(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Dish id must be an integer")
	}

	ratings, err := h.uc.ListRatings(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ratings, "Ratings retrieved")
}
