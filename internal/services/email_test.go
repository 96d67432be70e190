package services

import (
	"context"
	"errors"
	"testing"

	"eventhub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	to, subject, html, text string
	err                     error
}

func (m *fakeMailer) Send(ctx context.Context, to, subject, html, text string) error {
	if m.err != nil {
		return m.err
	}
	m.to, m.subject, m.html, m.text = to, subject, html, text
	return nil
}

type fakeRenderer struct {
	lastTemplate string
	err          error
}

func (r *fakeRenderer) Render(name string, data any) (string, string, string, error) {
	r.lastTemplate = name
	if r.err != nil {
		return "", "", "", r.err
	}
	return "Review overdue", "<p>html</p>", "text", nil
}

func TestEmailService_SendReviewReminder(t *testing.T) {
	mailer := &fakeMailer{}
	renderer := &fakeRenderer{}
	svc := NewEmailService(mailer, renderer)

	err := svc.SendReviewReminder(context.Background(), &domain.ReviewReminderEmailData{Email: "r@example.com", EventTitle: "Quiz"})
	require.NoError(t, err)
	assert.Equal(t, "review_reminder", renderer.lastTemplate)
	assert.Equal(t, "r@example.com", mailer.to)
	assert.Equal(t, "Review overdue", mailer.subject)
	assert.Equal(t, "<p>html</p>", mailer.html)
	assert.Equal(t, "text", mailer.text)
}

func TestEmailService_SendReviewReminder_Errors(t *testing.T) {
	ctx := context.Background()
	data := &domain.ReviewReminderEmailData{Email: "r@example.com"}

	require.Error(t, NewEmailService(&fakeMailer{}, &fakeRenderer{}).SendReviewReminder(ctx, nil))
	require.Error(t, NewEmailService(&fakeMailer{}, &fakeRenderer{err: errors.New("bad template")}).SendReviewReminder(ctx, data))
	require.Error(t, NewEmailService(&fakeMailer{err: errors.New("throttled")}, &fakeRenderer{}).SendReviewReminder(ctx, data))
}
