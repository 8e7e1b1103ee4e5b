package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"
)

// senderName is the fixed From display name on every relayed message.
const senderName = "DeviceDigiHelp Support"

// Relay sends notification emails for contact-form and chat submissions.
// Callers decide whether a failure aborts the request; the contact endpoints
// treat delivery as fire-and-forget and only log the returned error.
type Relay interface {
	Send(ctx context.Context, subject, body, replyTo string) error
}

// SMTPRelay delivers mail through an authenticated SMTP connection over
// implicit TLS. Messages go to the configured sender's own inbox; replyTo,
// when set, makes replying reach the submitting user.
type SMTPRelay struct {
	host     string
	port     int
	sender   string
	password string
}

func NewSMTPRelay(host string, port int, sender, password string) *SMTPRelay {
	return &SMTPRelay{
		host:     host,
		port:     port,
		sender:   sender,
		password: password,
	}
}

func (r *SMTPRelay) Send(ctx context.Context, subject, body, replyTo string) error {
	msg, err := buildMessage(r.sender, subject, body, replyTo)
	if err != nil {
		return err
	}

	client, err := gomail.NewClient(r.host,
		gomail.WithPort(r.port),
		gomail.WithSSL(),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(r.sender),
		gomail.WithPassword(r.password),
	)
	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// buildMessage assembles the notification message sent to the sender's own
// address.
func buildMessage(sender, subject, body, replyTo string) (*gomail.Msg, error) {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(senderName, sender); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(sender); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}
	if replyTo != "" {
		if err := msg.ReplyTo(replyTo); err != nil {
			return nil, fmt.Errorf("invalid reply-to address: %w", err)
		}
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)
	return msg, nil
}
