package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultMailerSendEndpoint = "https://api.mailersend.com/v1/email"

type MailerSendClient struct {
	apiKey      string
	senderEmail string
	senderName  string
	endpoint    string
	httpClient  *http.Client
}

func NewMailerSendClient(apiKey, senderEmail, senderName string) *MailerSendClient {
	if strings.TrimSpace(apiKey) == "" || strings.TrimSpace(senderEmail) == "" {
		return nil
	}
	if strings.TrimSpace(senderName) == "" {
		senderName = senderEmail
	}
	return &MailerSendClient{
		apiKey:      apiKey,
		senderEmail: senderEmail,
		senderName:  senderName,
		endpoint:    defaultMailerSendEndpoint,
		httpClient:  &http.Client{Timeout: 8 * time.Second},
	}
}

func (c *MailerSendClient) Send(ctx context.Context, msg Message) error {
	if c == nil {
		return errors.New("mailersend client is nil")
	}
	if strings.TrimSpace(msg.To) == "" {
		return errors.New("missing recipient email")
	}
	if strings.TrimSpace(msg.Subject) == "" {
		return errors.New("missing subject")
	}
	if strings.TrimSpace(msg.HTML) == "" && strings.TrimSpace(msg.Text) == "" {
		return errors.New("missing body")
	}

	payload := mailerSendRequest{
		From: mailerSendAddress{
			Email: c.senderEmail,
			Name:  c.senderName,
		},
		To: []mailerSendAddress{
			{
				Email: msg.To,
				Name:  msg.ToName,
			},
		},
		Subject: msg.Subject,
		HTML:    msg.HTML,
		Text:    msg.Text,
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("mailersend marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("mailersend create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("mailersend request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("mailersend send failed: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return nil
}

type mailerSendRequest struct {
	From    mailerSendAddress   `json:"from"`
	To      []mailerSendAddress `json:"to"`
	Subject string              `json:"subject"`
	HTML    string              `json:"html,omitempty"`
	Text    string              `json:"text,omitempty"`
}

type mailerSendAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}
