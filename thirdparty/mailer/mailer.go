package mailer

import (
	"context"
	"fmt"

	"github.com/muhammadheryan/food-storefront/cmd/config"
	"github.com/wneessen/go-mail"
)

// Mailer delivers HTML email and can verify connectivity without sending.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
	Check(ctx context.Context) error
}

type SMTP struct {
	cfg config.SMTPConfig
}

func New(cfg config.SMTPConfig) *SMTP {
	return &SMTP{cfg: cfg}
}

func (m *SMTP) newClient() (*mail.Client, error) {
	opts := []mail.Option{
		mail.WithPort(m.cfg.Port),
		mail.WithTLSPortPolicy(mail.TLSMandatory),
		mail.WithTimeout(m.cfg.Timeout),
	}
	if m.cfg.User != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.cfg.User),
			mail.WithPassword(m.cfg.Password),
		)
	}
	return mail.NewClient(m.cfg.Host, opts...)
}

func (m *SMTP) Send(ctx context.Context, to, subject, htmlBody string) error {
	msg := mail.NewMsg()
	from := m.cfg.From
	if from == "" {
		from = m.cfg.User
	}
	if err := msg.FromFormat(m.cfg.FromName, from); err != nil {
		return fmt.Errorf("set from: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("set to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	client, err := m.newClient()
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

// Check dials and authenticates against the SMTP server.
func (m *SMTP) Check(ctx context.Context) error {
	client, err := m.newClient()
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	if err := client.DialWithContext(ctx); err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}
	return client.Close()
}
