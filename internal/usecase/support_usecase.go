package usecase

import "context"

// SubmitSupportInput defines the data required to file a support ticket.
type SubmitSupportInput struct {
	Email   string
	Message string
}

// SupportOutput echoes the generated confirmation id for a filed ticket.
type SupportOutput struct {
	ConfirmationID string `json:"confirmationId"`
}

// SupportUsecase accepts support messages.
type SupportUsecase interface {
	// Submit validates and stores the message, returning a confirmation id.
	Submit(ctx context.Context, input *SubmitSupportInput) (*SupportOutput, error)
}
