package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// Config holds the SMTP settings. An empty Host disables sending.
type Config struct {
	Host     string
	Port     string
	From     string
	Password string
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTP sends plain-text mail through an authenticated relay.
type SMTP struct {
	cfg  Config
	send sendFunc
}

func New(cfg Config) *SMTP {
	return &SMTP{cfg: cfg, send: smtp.SendMail}
}

func (m *SMTP) Enabled() bool { return m != nil && m.cfg.Host != "" }

func (m *SMTP) Send(ctx context.Context, to, subject, body string) error {
	if !m.Enabled() {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	auth := smtp.PlainAuth("", m.cfg.From, m.cfg.Password, m.cfg.Host)
	if err := m.send(m.cfg.Host+":"+m.cfg.Port, auth, m.cfg.From, []string{to}, compose(m.cfg.From, to, subject, body)); err != nil {
		return fmt.Errorf("smtp send to %s: %w", to, err)
	}
	return nil
}

func compose(from, to, subject, body string) []byte {
	var b strings.Builder
	b.WriteString("Subject: " + headerSafe(subject) + "\r\n")
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + headerSafe(to) + "\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body + "\r\n")
	return []byte(b.String())
}

// headerSafe drops line breaks so a value cannot inject extra headers.
func headerSafe(s string) string {
	return strings.NewReplacer("\r", "", "\n", " ").Replace(s)
}
