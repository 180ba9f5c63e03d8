// Package mail sends contact-form messages to the support address over SMTP.
package mail

import (
	"fmt"
	"net/smtp"
	"strings"
)

// Config holds SMTP settings. Username may be empty for unauthenticated
// relays (local dev).
type Config struct {
	Host     string
	Port     uint16
	Username string
	Password string
	From     string
	To       string
}

// Sender delivers contact messages.
type Sender interface {
	SendContactMessage(name, replyTo, message string) error
}

// SMTPSender implements Sender over net/smtp.
type SMTPSender struct {
	cfg Config
}

var _ Sender = (*SMTPSender)(nil)

// NewSMTPSender creates an SMTP-backed sender.
func NewSMTPSender(cfg Config) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

// SendContactMessage sends a plain-text mail to the configured support
// address with the visitor's address as Reply-To.
func (s *SMTPSender) SendContactMessage(name, replyTo, message string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", s.cfg.From)
	fmt.Fprintf(&b, "To: %s\r\n", s.cfg.To)
	fmt.Fprintf(&b, "Reply-To: %s\r\n", replyTo)
	fmt.Fprintf(&b, "Subject: Contact message from %s\r\n", name)
	b.WriteString("\r\n")
	b.WriteString(message)
	b.WriteString("\r\n")

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, s.cfg.From, []string{s.cfg.To}, []byte(b.String())); err != nil {
		return fmt.Errorf("send contact mail: %w", err)
	}
	return nil
}
