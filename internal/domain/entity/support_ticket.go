package entity

import "time"

// SupportTicket is a message submitted through the support endpoint. The
// confirmation ID is generated at submission time and echoed back to the caller.
type SupportTicket struct {
	ConfirmationID string    `json:"confirmationId"`
	Email          string    `json:"email"`
	Message        string    `json:"message"`
	CreatedAt      time.Time `json:"createdAt"`
}
