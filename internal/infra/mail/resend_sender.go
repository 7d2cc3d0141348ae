package mail

import (
	"context"
	"regexp"

	"github.com/consoleforeveryone/rental-api/internal/infra/integration/resend"
)

var emailAddressRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ResendSender adapts the Resend API client to the gateway's Sender.
type ResendSender struct {
	Client *resend.Client
}

func NewResendSender(client *resend.Client) *ResendSender {
	return &ResendSender{Client: client}
}

func (s *ResendSender) Name() string {
	return "resend"
}

func (s *ResendSender) Configured() bool {
	return s.Client.Configured()
}

func (s *ResendSender) Send(ctx context.Context, job EmailJob) error {
	_, err := s.Client.SendEmail(ctx, resend.SendEmailInput{
		From:    job.From,
		To:      job.To,
		Subject: job.Subject,
		HTML:    job.HTMLBody,
	})
	return err
}
