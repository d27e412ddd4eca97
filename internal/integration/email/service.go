package email

import (
	"context"

	"github.com/korven/backend/internal/application/adapter"
	"github.com/korven/backend/internal/domain/entity"
)

const passwordResetSubject = "Reset your password - Korven"

// Service queues outbound emails for the Worker.
type Service struct {
	queue adapter.EmailQueueRepository
	clock adapter.Clock
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository, clock adapter.Clock) *Service {
	return &Service{
		queue: queue,
		clock: clock,
	}
}

// QueuePasswordResetEmail queues a password reset email.
func (s *Service) QueuePasswordResetEmail(ctx context.Context, input adapter.QueuePasswordResetInput) error {
	job := entity.NewEmailJob(
		entity.TemplatePasswordReset,
		input.UserEmail,
		input.UserName,
		passwordResetSubject,
		map[string]string{
			"user_name":  input.UserName,
			"reset_url":  input.ResetURL,
			"expires_in": input.ExpiresIn,
		},
		s.clock.Now(),
	)

	return s.queue.Create(ctx, job)
}

var _ adapter.EmailService = (*Service)(nil)
