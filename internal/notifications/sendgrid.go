package notifications

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridMailer is the fallback provider for deployments without a
// MailerSend account.
type SendGridMailer struct {
	client      *sendgrid.Client
	senderEmail string
	senderName  string
}

func NewSendGridMailer(apiKey, senderEmail, senderName string) *SendGridMailer {
	if strings.TrimSpace(apiKey) == "" || strings.TrimSpace(senderEmail) == "" {
		return nil
	}
	if strings.TrimSpace(senderName) == "" {
		senderName = senderEmail
	}
	return &SendGridMailer{
		client:      sendgrid.NewSendClient(apiKey),
		senderEmail: senderEmail,
		senderName:  senderName,
	}
}

func (s *SendGridMailer) Send(ctx context.Context, msg Message) error {
	if s == nil {
		return errors.New("sendgrid client is nil")
	}
	if strings.TrimSpace(msg.To) == "" {
		return errors.New("missing recipient email")
	}

	from := mail.NewEmail(s.senderName, s.senderEmail)
	to := mail.NewEmail(msg.ToName, msg.To)

	text := msg.Text
	if text == "" {
		text = msg.Subject
	}
	html := msg.HTML
	if html == "" {
		html = text
	}
	message := mail.NewSingleEmail(from, msg.Subject, to, text, html)

	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send failed: %w", err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid send failed: status=%d body=%s", resp.StatusCode, strings.TrimSpace(resp.Body))
	}
	return nil
}
