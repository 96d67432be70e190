package services

import (
	"context"
	"fmt"
	"log"

	"eventhub/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendReviewReminder sends the "review_reminder" template to the assigned reviewer.
func (s *emailService) SendReviewReminder(ctx context.Context, data *domain.ReviewReminderEmailData) error {
	if data == nil {
		return fmt.Errorf("review reminder data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("review_reminder", data)
	if err != nil {
		return fmt.Errorf("failed to render review_reminder template: %w", err)
	}
	if err := s.mailer.Send(ctx, data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send review reminder: %w", err)
	}
	log.Printf("[EMAIL] Review reminder sent for %q", data.EventTitle)
	return nil
}
