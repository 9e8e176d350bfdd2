package handler

import (
	"log/slog"
	"net/http"

	"munch/internal/delivery/http/response"
	"munch/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SupportHandler holds dependencies for the support desk handler.
type SupportHandler struct {
	uc     usecase.SupportUsecase
	logger *slog.Logger
}

// NewSupportHandler is the constructor for SupportHandler, injected by Fx.
func NewSupportHandler(uc usecase.SupportUsecase, logger *slog.Logger) *SupportHandler {
	return &SupportHandler{
		uc:     uc,
		logger: logger,
	}
}

type supportRequest struct {
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

// Submit handles accepting a support message and echoing its confirmation id.
func (h *SupportHandler) Submit(c echo.Context) error {
	var req supportRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid support input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Submit(c.Request().Context(), &usecase.SubmitSupportInput{
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Support message received")
}
