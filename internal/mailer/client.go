package mailer

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
)

// QueueSender enqueues confirmation emails for the worker process. It is
// the production implementation of the auth service's sender dependency.
type QueueSender struct {
	client *asynq.Client
}

func NewQueueSender(client *asynq.Client) *QueueSender {
	return &QueueSender{client: client}
}

func (s *QueueSender) SendConfirmationCode(ctx context.Context, username, email, code string) error {
	task, err := NewConfirmationEmailTask(username, email, code)
	if err != nil {
		return fmt.Errorf("build confirmation email task: %w", err)
	}
	if _, err := s.client.EnqueueContext(ctx, task, asynq.MaxRetry(5)); err != nil {
		return fmt.Errorf("enqueue confirmation email: %w", err)
	}
	return nil
}
