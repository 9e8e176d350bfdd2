package handler

import (
	"log/slog"
	"net/http"
	"time"

	"munch/internal/delivery/http/response"
	"munch/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for profile and activity handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

type updateProfileRequest struct {
	Name      string `json:"name" validate:"required"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	BirthDate string `json:"birthDate" validate:"required"`
}

// Get handles reading a profile by email.
func (h *ProfileHandler) Get(c echo.Context) error {
	user, err := h.uc.Get(c.Request().Context(), c.Param("email"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile retrieved successfully")
}

// Update handles replacing the mutable profile fields.
func (h *ProfileHandler) Update(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	birthDate, err := time.Parse(birthDateLayout, req.BirthDate)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "birthDate must be formatted as YYYY-MM-DD")
	}

	user, err := h.uc.Update(c.Request().Context(), c.Param("email"), &usecase.UpdateProfileInput{
		Name:      req.Name,
		Address:   req.Address,
		Phone:     req.Phone,
		BirthDate: birthDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile updated successfully")
}

// Delete handles removing a profile from the directory.
func (h *ProfileHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("email")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Profile deleted"}, "Profile deleted successfully")
}

// Summary handles the aggregate profile statistics view.
func (h *ProfileHandler) Summary(c echo.Context) error {
	summary, err := h.uc.Summary(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "Profile summary computed")
}

// RecordLogin handles recording a login-activity event.
func (h *ProfileHandler) RecordLogin(c echo.Context) error {
	if err := h.uc.RecordLogin(c.Request().Context(), c.Param("email")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Login recorded"}, "Activity recorded")
}

// GetActivity handles reading the last login activity.
func (h *ProfileHandler) GetActivity(c echo.Context) error {
	activity, err := h.uc.GetActivity(c.Request().Context(), c.Param("email"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, activity, "Activity retrieved")
}
