package mail

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSender struct {
	name  string
	err   error
	calls int
}

func (s *stubSender) Name() string     { return s.name }
func (s *stubSender) Configured() bool { return true }

func (s *stubSender) Send(ctx context.Context, job EmailJob) error {
	s.calls++
	return s.err
}

func testJob() EmailJob {
	return EmailJob{
		To:       "asha@example.com",
		Subject:  "New PS5 Rental Inquiry from Asha Rao",
		HTMLBody: "<p>hello</p>",
		From:     "Console For Everyone <hello@consoleforeveryone.com>",
	}
}

func TestGatewayPrimarySucceeds(t *testing.T) {
	primary := &stubSender{name: "resend"}
	secondary := &stubSender{name: "zoho"}
	g := NewGateway(primary, secondary)

	outcome := g.Send(context.Background(), testJob())

	assert.True(t, outcome.Succeeded)
	assert.Equal(t, ProviderPrimary, outcome.ProviderUsed)
	assert.Equal(t, "resend", outcome.Service)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 0, secondary.calls, "secondary must not be attempted when primary delivers")
}

func TestGatewayFallsBackToSecondary(t *testing.T) {
	primary := &stubSender{name: "resend", err: errors.New("401 unauthorized")}
	secondary := &stubSender{name: "zoho"}
	g := NewGateway(primary, secondary)

	outcome := g.Send(context.Background(), testJob())

	assert.True(t, outcome.Succeeded)
	assert.Equal(t, ProviderSecondary, outcome.ProviderUsed)
	assert.Equal(t, "zoho", outcome.Service)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, secondary.calls)
}

func TestGatewayBothFail(t *testing.T) {
	primary := &stubSender{name: "resend", err: errors.New("401 unauthorized")}
	secondary := &stubSender{name: "zoho", err: errors.New("dial tcp: timeout")}
	g := NewGateway(primary, secondary)

	outcome := g.Send(context.Background(), testJob())

	assert.False(t, outcome.Succeeded)
	assert.Empty(t, outcome.ProviderUsed)
	assert.Equal(t, "All email services failed. resend: 401 unauthorized, zoho: dial tcp: timeout", outcome.ErrorDetail)
	assert.Equal(t, 1, primary.calls, "one attempt per provider, no retries")
	assert.Equal(t, 1, secondary.calls)
}

func TestGatewayMissingFields(t *testing.T) {
	primary := &stubSender{name: "resend"}
	secondary := &stubSender{name: "zoho"}
	g := NewGateway(primary, secondary)

	for _, job := range []EmailJob{
		{Subject: "s", HTMLBody: "h"},
		{To: "asha@example.com", HTMLBody: "h"},
		{To: "asha@example.com", Subject: "s"},
	} {
		outcome := g.Send(context.Background(), job)
		assert.False(t, outcome.Succeeded)
		assert.Equal(t, "missing required email fields: to, subject, html", outcome.ErrorDetail)
	}

	assert.Equal(t, 0, primary.calls, "no provider attempt on an invalid job")
	assert.Equal(t, 0, secondary.calls)
}

func TestGatewayInvalidRecipient(t *testing.T) {
	primary := &stubSender{name: "resend"}
	g := NewGateway(primary, &stubSender{name: "zoho"})

	job := testJob()
	job.To = "not-an-address"

	outcome := g.Send(context.Background(), job)

	require.False(t, outcome.Succeeded)
	assert.Equal(t, "invalid recipient email address", outcome.ErrorDetail)
	assert.Equal(t, 0, primary.calls)
}
