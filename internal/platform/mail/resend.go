package mail

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// Mailer sends a single HTML email and reports the provider's message id.
type Mailer interface {
	Send(ctx context.Context, from string, to []string, subject, html string) (string, error)
}

type resendMailer struct {
	client *resend.Client
}

// NewResendMailer returns nil when no API key is configured; callers treat a
// nil Mailer as "email disabled".
func NewResendMailer(apiKey string) Mailer {
	if apiKey == "" {
		return nil
	}
	return &resendMailer{client: resend.NewClient(apiKey)}
}

func (m *resendMailer) Send(ctx context.Context, from string, to []string, subject, html string) (string, error) {
	sent, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    from,
		To:      to,
		Subject: subject,
		Html:    html,
	})
	if err != nil {
		return "", fmt.Errorf("resendMailer.Send: %w", err)
	}
	return sent.Id, nil
}
