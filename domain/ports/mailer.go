package ports

import "context"

// Mail is the payload handed to the delivery collaborator.
type Mail struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// MailerPort abstracts the outbound email transport.
type MailerPort interface {
	// Send delivers the mail and returns a transport-assigned delivery id.
	Send(ctx context.Context, mail *Mail) (string, error)
}
