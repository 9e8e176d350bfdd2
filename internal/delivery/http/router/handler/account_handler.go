// Package handler contains the HTTP handlers for the application.
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

// birthDateLayout is the wire format for birth dates.
const birthDateLayout = "2006-01-02"

// AccountHandler holds dependencies for registration, login and the token flow.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

type registerRequest struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	BirthDate string `json:"birthDate" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register handles the user registration request.
func (h *AccountHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	birthDate, err := time.Parse(birthDateLayout, req.BirthDate)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "birthDate must be formatted as YYYY-MM-DD")
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Address:   req.Address,
		Phone:     req.Phone,
		BirthDate: birthDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "User registered successfully")
}

// Login handles the user login request.
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// Me resolves a session token to the email it encodes.
func (h *AccountHandler) Me(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return response.Unauthorized(c, "INVALID_TOKEN", "Token query parameter is required")
	}

	email, err := h.uc.Resolve(c.Request().Context(), token)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"email": email}, "Token resolved")
}

// Logout acknowledges a logout. The token scheme is stateless, so there is
// no server-side session to revoke.
func (h *AccountHandler) Logout(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return response.Unauthorized(c, "INVALID_TOKEN", "Token query parameter is required")
	}

	if err := h.uc.Logout(c.Request().Context(), token); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}
