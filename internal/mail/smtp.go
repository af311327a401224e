package mail

import (
	"context"
	"io"

	"gopkg.in/gomail.v2"
)

// Message is one fully rendered outbound email. Every send call is
// self-contained so a pooled connection never leaks recipient state.
type Message struct {
	To          string
	Subject     string
	HTMLBody    string
	Bcc         []string
	Attachments []Part
}

// Transport delivers a single message. Any non-nil error is treated as a
// per-recipient send failure by the dispatcher.
type Transport interface {
	Send(ctx context.Context, msg Message) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type SMTPConfigurator interface {
	GetSMTPConfig() (SMTPConfig, error)
}

type SMTP struct {
	cfg    SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTP(configurator SMTPConfigurator) (*SMTP, error) {

	cfg, err := configurator.GetSMTPConfig()

	if err != nil {
		return nil, err
	}

	return &SMTP{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}, nil
}

func (s *SMTP) buildMessage(msg Message) *gomail.Message {

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", msg.To)

	if len(msg.Bcc) > 0 {
		m.SetHeader("Bcc", msg.Bcc...)
	}

	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTMLBody)

	for _, part := range msg.Attachments {
		content := part.Content

		m.Attach(part.Filename,
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(content)
				return err
			}),
			gomail.SetHeader(map[string][]string{
				"Content-Type": {part.MimeType},
			}),
		)
	}

	return m
}

// Send dials and delivers one message. gomail has no context support, so the
// delivery runs in a goroutine and the context deadline wins the race.
func (s *SMTP) Send(ctx context.Context, msg Message) error {

	m := s.buildMessage(msg)

	done := make(chan error, 1)

	go func() {
		done <- s.dialer.DialAndSend(m)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
