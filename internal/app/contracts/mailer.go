package contracts

import "context"

type MailMessage struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// MailPublisher hands mail off to the queue; delivery happens out of
// process.
type MailPublisher interface {
	Publish(ctx context.Context, message MailMessage) error
}
