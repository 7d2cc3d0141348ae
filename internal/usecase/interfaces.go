package usecase

import (
	"context"

	"github.com/consoleforeveryone/rental-api/internal/entity"
	"github.com/consoleforeveryone/rental-api/internal/infra/mail"
	"github.com/consoleforeveryone/rental-api/internal/infra/queue"
)

type InquiryRepositoryInterface interface {
	Create(ctx context.Context, inquiry *entity.Inquiry) error
}

// DeliveryGatewayInterface sends one email job, trying the primary provider
// and falling back to the secondary. It never returns an error: failures are
// folded into the outcome.
type DeliveryGatewayInterface interface {
	Send(ctx context.Context, job mail.EmailJob) mail.DeliveryOutcome
}

type NotificationComposerInterface interface {
	ComposeAdminNotification(inquiry *entity.Inquiry) (mail.EmailJob, error)
	ComposeCustomerConfirmation(inquiry *entity.Inquiry) (mail.EmailJob, error)
}

type EventProducerInterface interface {
	PublishInquiryCreated(ctx context.Context, payload queue.InquiryCreatedPayload) error
}
