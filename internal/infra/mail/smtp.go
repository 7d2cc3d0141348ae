package mail

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

// At most this many SMTP connections are open at once. Each logical send
// dials, delivers and closes its own connection, so nothing leaks across
// requests.
const maxSMTPConnections = 5

// SMTPSender delivers through an authenticated SMTP account (Zoho-style).
// It is the fallback transport behind the primary HTTP API provider.
type SMTPSender struct {
	host     string
	port     int
	username string
	password string
	sem      chan struct{}
}

func NewSMTPSender(host string, port int, username, password string) *SMTPSender {
	return &SMTPSender{
		host:     host,
		port:     port,
		username: username,
		password: password,
		sem:      make(chan struct{}, maxSMTPConnections),
	}
}

func (s *SMTPSender) Name() string {
	return "zoho"
}

func (s *SMTPSender) Configured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}

func (s *SMTPSender) Send(ctx context.Context, job EmailJob) error {
	if !s.Configured() {
		return fmt.Errorf("SMTP sender not configured")
	}

	select {
	case s.sem <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-s.sem }()

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	d.SSL = s.port == 465

	// Dial authenticates against the server up front, so a broken
	// connection or bad credentials fail before any message is composed.
	sc, err := d.Dial()
	if err != nil {
		return fmt.Errorf("SMTP connection failed: %w", err)
	}
	defer sc.Close()

	from := job.From
	if from == "" {
		from = s.username
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", job.To)
	m.SetHeader("Subject", job.Subject)
	m.SetBody("text/html", job.HTMLBody)

	if err := gomail.Send(sc, m); err != nil {
		return fmt.Errorf("SMTP send failed: %w", err)
	}

	return nil
}
