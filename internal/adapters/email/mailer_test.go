package email

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestNewMailer_Providers(t *testing.T) {
	for _, provider := range []string{"noop", "", "smtp"} {
		m, err := NewMailer(MailerConfig{Provider: provider}, testLogger)
		require.NoError(t, err)
		require.IsType(t, &noopMailer{}, m)
		require.NoError(t, m.Send(context.Background(), "r@example.com", "s", "<p>h</p>", "t"))
	}

	m, err := NewMailer(MailerConfig{Provider: "ses", FromAddress: "noreply@example.com", FromName: "EventHub", SES: SESConfig{Region: "eu-west-2"}}, testLogger)
	require.NoError(t, err)
	require.IsType(t, &sesMailer{}, m)
	require.Equal(t, `"EventHub" <noreply@example.com>`, m.(*sesMailer).from)

	_, err = NewMailer(MailerConfig{Provider: "ses"}, testLogger)
	require.Error(t, err)
}
