package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"
)

// Mailer delivers a rendered message to a recipient address.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// LogMailer writes messages to the log instead of sending them. Default in
// development, where there is no SMTP relay to talk to.
type LogMailer struct {
	Logger *slog.Logger
}

func (m *LogMailer) Send(ctx context.Context, to, subject, body string) error {
	m.Logger.Info("outgoing email",
		slog.String("to", to),
		slog.String("subject", subject),
		slog.String("body", body),
	)
	return nil
}

// ConfirmationEmailHandler consumes confirmation-code tasks off the queue.
type ConfirmationEmailHandler struct {
	mailer Mailer
	logger *slog.Logger
}

func NewConfirmationEmailHandler(mailer Mailer, logger *slog.Logger) *ConfirmationEmailHandler {
	return &ConfirmationEmailHandler{mailer: mailer, logger: logger}
}

// ProcessTask implements asynq.Handler.
func (h *ConfirmationEmailHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload ConfirmationEmailPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		h.logger.Error("unmarshal confirmation email payload failed", slog.Any("error", err))
		return err
	}

	log := h.logger.With(slog.String("username", payload.Username))

	subject := "Your confirmation code"
	body := fmt.Sprintf(
		"Hello %s,\n\nYour confirmation code is %s.\nExchange it for an access token at /api/auth/token.\n",
		payload.Username, payload.Code,
	)

	if err := h.mailer.Send(ctx, payload.Email, subject, body); err != nil {
		log.Error("send confirmation email failed", slog.Any("error", err))
		return err
	}

	log.Info("confirmation email sent")
	return nil
}
