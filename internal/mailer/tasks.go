package mailer

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// Task type constants shared by the queue producer and consumer.
const (
	TypeConfirmationEmail = "email:confirmation_code"
)

// ConfirmationEmailPayload carries what the worker needs to render and send
// a confirmation-code email.
type ConfirmationEmailPayload struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Code     string `json:"code"`
}

// NewConfirmationEmailTask builds a queue task for a freshly issued code.
func NewConfirmationEmailTask(username, email, code string) (*asynq.Task, error) {
	payload, err := json.Marshal(ConfirmationEmailPayload{
		Username: username,
		Email:    email,
		Code:     code,
	})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeConfirmationEmail, payload), nil
}
