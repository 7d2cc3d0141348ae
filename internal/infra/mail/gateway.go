package mail

import (
	"context"
	"fmt"
	"log"

	"github.com/consoleforeveryone/rental-api/internal/metrics"
)

// Sender is one outbound email transport. The gateway holds two of them.
type Sender interface {
	Name() string
	Configured() bool
	Send(ctx context.Context, job EmailJob) error
}

// Gateway tries the primary provider and falls back to the secondary. One
// attempt per provider, no backoff: the two transports have uncorrelated
// failure modes and the request must stay bounded in latency.
type Gateway struct {
	primary   Sender
	secondary Sender
}

func NewGateway(primary, secondary Sender) *Gateway {
	return &Gateway{primary: primary, secondary: secondary}
}

func (g *Gateway) Primary() Sender   { return g.primary }
func (g *Gateway) Secondary() Sender { return g.secondary }

func (g *Gateway) Send(ctx context.Context, job EmailJob) DeliveryOutcome {
	if job.To == "" || job.Subject == "" || job.HTMLBody == "" {
		return DeliveryOutcome{
			Succeeded:   false,
			ErrorDetail: "missing required email fields: to, subject, html",
		}
	}
	if !emailAddressRegex.MatchString(job.To) {
		return DeliveryOutcome{
			Succeeded:   false,
			ErrorDetail: "invalid recipient email address",
		}
	}

	primaryErr := g.primary.Send(ctx, job)
	if primaryErr == nil {
		metrics.RecordEmailDelivery(g.primary.Name(), "success")
		return DeliveryOutcome{
			Succeeded:    true,
			ProviderUsed: ProviderPrimary,
			Service:      g.primary.Name(),
		}
	}

	log.Printf("[MAIL] %s failed, falling back to %s: %v", g.primary.Name(), g.secondary.Name(), primaryErr)
	metrics.RecordEmailDelivery(g.primary.Name(), "failure")
	metrics.RecordIntegrationError(g.primary.Name())

	secondaryErr := g.secondary.Send(ctx, job)
	if secondaryErr == nil {
		metrics.RecordEmailDelivery(g.secondary.Name(), "success")
		return DeliveryOutcome{
			Succeeded:    true,
			ProviderUsed: ProviderSecondary,
			Service:      g.secondary.Name(),
		}
	}

	log.Printf("[MAIL] Both email services failed: %s: %v, %s: %v",
		g.primary.Name(), primaryErr, g.secondary.Name(), secondaryErr)
	metrics.RecordEmailDelivery(g.secondary.Name(), "failure")
	metrics.RecordIntegrationError(g.secondary.Name())

	return DeliveryOutcome{
		Succeeded: false,
		ErrorDetail: fmt.Sprintf("All email services failed. %s: %v, %s: %v",
			g.primary.Name(), primaryErr, g.secondary.Name(), secondaryErr),
	}
}
