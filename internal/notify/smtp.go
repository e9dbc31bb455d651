package notify

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"
)

// SMTPNotifier delivers messages through an SMTP relay, with PLAIN auth when
// a user is configured.
type SMTPNotifier struct {
	addr string
	from string
	auth smtp.Auth
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPNotifier(host, port, user, pass, from string) *SMTPNotifier {
	host = strings.TrimSpace(host)
	from = strings.TrimSpace(from)
	if from == "" {
		from = "no-reply@salon.local"
	}

	var auth smtp.Auth
	if user != "" {
		auth = smtp.PlainAuth("", user, pass, host)
	}

	return &SMTPNotifier{
		addr: fmt.Sprintf("%s:%s", host, strings.TrimSpace(port)),
		from: from,
		auth: auth,
		send: smtp.SendMail,
	}
}

func (s *SMTPNotifier) SendConfirmation(ctx context.Context, email string, d Details) error {
	return s.deliver(Compose(KindConfirmation, email, d))
}

func (s *SMTPNotifier) SendCancellation(ctx context.Context, email string, d Details) error {
	return s.deliver(Compose(KindCancellation, email, d))
}

func (s *SMTPNotifier) SendReminder(ctx context.Context, email string, d Details) error {
	return s.deliver(Compose(KindReminder, email, d))
}

func (s *SMTPNotifier) deliver(m Message) error {
	if m.To == "" {
		return fmt.Errorf("notify: empty recipient")
	}
	return s.send(s.addr, s.auth, s.from, []string{m.To}, []byte(buildMessage(s.from, m)))
}

func buildMessage(from string, m Message) string {
	return fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		from,
		m.To,
		m.Subject,
		m.Body,
	)
}

// LogNotifier only logs. It is used when no SMTP relay is configured.
type LogNotifier struct {
	log *slog.Logger
}

func NewLogNotifier(log *slog.Logger) *LogNotifier {
	if log == nil {
		log = slog.Default()
	}
	return &LogNotifier{log: log}
}

func (n *LogNotifier) SendConfirmation(ctx context.Context, email string, d Details) error {
	return n.write(ctx, Compose(KindConfirmation, email, d))
}

func (n *LogNotifier) SendCancellation(ctx context.Context, email string, d Details) error {
	return n.write(ctx, Compose(KindCancellation, email, d))
}

func (n *LogNotifier) SendReminder(ctx context.Context, email string, d Details) error {
	return n.write(ctx, Compose(KindReminder, email, d))
}

func (n *LogNotifier) write(ctx context.Context, m Message) error {
	n.log.InfoContext(ctx, "notification", "to", m.To, "subject", m.Subject, "body", m.Body)
	return nil
}
