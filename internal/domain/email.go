package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// ReviewReminderEmailData holds data for the overdue review reminder.
type ReviewReminderEmailData struct {
	Email         string
	EventTitle    string
	VenueName     string
	DueLocal      string
	DaysRemaining int
	Overdue       bool
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendReviewReminder(ctx context.Context, data *ReviewReminderEmailData) error
}
