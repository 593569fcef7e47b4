// Package notifications renders and delivers the transactional emails:
// owner notifications for incoming leads and the two order emails.
package notifications

import "context"

// Message is a fully rendered email ready for a provider.
type Message struct {
	To      string
	ToName  string
	Subject string
	HTML    string
	Text    string
}

// Mailer hands a message to a transactional-email provider. Implementations
// are MailerSend (primary) and SendGrid; constructors return nil when their
// API key is missing so callers can treat email as an optional integration.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
