package notify

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"

	"github.com/resend/resend-go/v2"
)

// EmailSender mails a copy of each notification to the café inbox via the
// Resend API.
type EmailSender struct {
	client *resend.Client
	from   string
	to     string
}

// NewEmailSender creates a new EmailSender.
// PRE: apiKey is a valid Resend API key; from and to are valid addresses
func NewEmailSender(apiKey, from, to string) *EmailSender {
	return &EmailSender{client: resend.NewClient(apiKey), from: from, to: to}
}

// Send mails the message. The first line of the message becomes the subject.
// POST: Email is queued for delivery or an error is returned
func (s *EmailSender) Send(ctx context.Context, message string) error {
	subject, _, _ := strings.Cut(message, "\n")
	body := "<p>" + strings.ReplaceAll(html.EscapeString(message), "\n", "<br>") + "</p>"

	sent, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{s.to},
		Subject: subject,
		Html:    body,
	})
	if err != nil {
		slog.Error("resend_send_failed", "to", s.to, "error", err)
		return fmt.Errorf("resend send failed: %w", err)
	}
	slog.Info("resend_sent", "message_id", sent.Id, "to", s.to)
	return nil
}
