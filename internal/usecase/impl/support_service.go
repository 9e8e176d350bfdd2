package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"munch/internal/domain/entity"
	domainerrors "munch/internal/domain/errors"
	"munch/internal/domain/repository"
	"munch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// supportService implements the SupportUsecase interface.
type supportService struct {
	supportRepo repository.SupportRepository
	logger      *slog.Logger
}

// SupportServiceParams holds dependencies for supportService, injected by Fx.
type SupportServiceParams struct {
	fx.In

	SupportRepo repository.SupportRepository
	Logger      *slog.Logger
}

// NewSupportService is the constructor for supportService.
func NewSupportService(params SupportServiceParams) usecase.SupportUsecase {
	return &supportService{
		supportRepo: params.SupportRepo,
		logger:      params.Logger,
	}
}

// Submit validates and stores the message, returning a confirmation id.
func (srv *supportService) Submit(ctx context.Context, input *usecase.SubmitSupportInput) (*usecase.SupportOutput, error) {
	email := strings.TrimSpace(input.Email)
	message := strings.TrimSpace(input.Message)
	if email == "" || message == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("email and message are required"), "support submit")
	}

	ticket := &entity.SupportTicket{
		ConfirmationID: uuid.New().String(),
		Email:          email,
		Message:        message,
		CreatedAt:      time.Now(),
	}

	if err := srv.supportRepo.Create(ctx, ticket); err != nil {
		return nil, errors.Wrap(err, "failed to store support ticket")
	}

	srv.logger.Info("Support ticket filed", slog.String("confirmationID", ticket.ConfirmationID))

	return &usecase.SupportOutput{ConfirmationID: ticket.ConfirmationID}, nil
}
