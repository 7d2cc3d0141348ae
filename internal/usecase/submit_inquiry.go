package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/consoleforeveryone/rental-api/internal/entity"
	"github.com/consoleforeveryone/rental-api/internal/infra/mail"
	"github.com/consoleforeveryone/rental-api/internal/infra/queue"
	"github.com/consoleforeveryone/rental-api/internal/metrics"
)

// SubmitInquiryUseCase coordinates validation, persistence and notification
// for one rental inquiry. The inquiry record is the source of truth: email
// failure is reported in the response but never fails the request.
type SubmitInquiryUseCase struct {
	Repo               InquiryRepositoryInterface
	Gateway            DeliveryGatewayInterface
	Composer           NotificationComposerInterface
	Producer           EventProducerInterface // optional, nil disables events
	EnforceFutureStart bool

	// Now is the clock used by validation; tests pin it.
	Now func() time.Time
}

func NewSubmitInquiryUseCase(
	repo InquiryRepositoryInterface,
	gateway DeliveryGatewayInterface,
	composer NotificationComposerInterface,
	producer EventProducerInterface,
	enforceFutureStart bool,
) *SubmitInquiryUseCase {
	return &SubmitInquiryUseCase{
		Repo:               repo,
		Gateway:            gateway,
		Composer:           composer,
		Producer:           producer,
		EnforceFutureStart: enforceFutureStart,
		Now:                time.Now,
	}
}

func (uc *SubmitInquiryUseCase) Execute(ctx context.Context, input SubmitInquiryInput) (*SubmitInquiryOutput, error) {
	candidate, err := ValidateSubmitInquiry(input, uc.Now(), uc.EnforceFutureStart)
	if err != nil {
		return nil, err
	}

	inquiry := buildInquiry(input, candidate)

	if err := uc.Repo.Create(ctx, inquiry); err != nil {
		if errors.Is(err, entity.ErrDuplicateInquiry) {
			return nil, err
		}
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to save rental inquiry",
			Cause:   err,
		}
	}

	log.Printf("[INQUIRY] Saved: id=%s, name=%s, email=%s", inquiry.ID, inquiry.Name, inquiry.Email)
	metrics.RecordInquirySubmission()

	if uc.Producer != nil {
		payload := queue.InquiryCreatedPayload{
			InquiryID:     inquiry.ID,
			Name:          inquiry.Name,
			Email:         inquiry.Email,
			Phone:         inquiry.Phone,
			City:          inquiry.Address.City,
			SelectedGames: inquiry.SelectedGames,
			StartDate:     inquiry.StartDate,
			EndDate:       inquiry.EndDate,
		}
		if err := uc.Producer.PublishInquiryCreated(ctx, payload); err != nil {
			log.Printf("[INQUIRY] Warning: failed to publish inquiry.created event: %v", err)
			metrics.RecordIntegrationError("rabbitmq")
		}
	}

	// The two notifications are independent: a failure in one must not
	// block or cancel the other.
	admin := uc.notify(ctx, inquiry, uc.Composer.ComposeAdminNotification)
	customer := uc.notify(ctx, inquiry, uc.Composer.ComposeCustomerConfirmation)

	return &SubmitInquiryOutput{
		Message: "Inquiry submitted successfully",
		Inquiry: InquiryResult{
			ID:     inquiry.ID,
			Status: inquiry.Status,
		},
		Notifications: Notifications{
			Admin:    admin,
			Customer: customer,
		},
	}, nil
}

func (uc *SubmitInquiryUseCase) notify(ctx context.Context, inquiry *entity.Inquiry, compose func(*entity.Inquiry) (mail.EmailJob, error)) NotificationStatus {
	job, err := compose(inquiry)
	if err != nil {
		log.Printf("[INQUIRY] Warning: failed to compose email for inquiry %s: %v", inquiry.ID, err)
		return NotificationStatus{Sent: false, Error: err.Error()}
	}

	outcome := uc.Gateway.Send(ctx, job)
	if !outcome.Succeeded {
		log.Printf("[INQUIRY] Warning: email delivery failed for inquiry %s: %s", inquiry.ID, outcome.ErrorDetail)
		return NotificationStatus{Sent: false, Error: outcome.ErrorDetail}
	}

	return NotificationStatus{
		Sent:    true,
		Service: outcome.Service,
		Message: "Email sent via " + outcome.Service,
	}
}

func buildInquiry(input SubmitInquiryInput, candidate *InquiryCandidate) *entity.Inquiry {
	inquiry := entity.NewInquiry()
	inquiry.Name = strings.TrimSpace(input.Name)
	inquiry.Email = strings.ToLower(strings.TrimSpace(input.Email))
	inquiry.Phone = candidate.Phone
	inquiry.SelectedGames = input.SelectedGames
	inquiry.CustomGames = strings.TrimSpace(input.CustomGames)
	inquiry.NumberOfControllers = input.NumberOfControllers
	if inquiry.NumberOfControllers < 1 {
		inquiry.NumberOfControllers = 1
	}
	inquiry.Address = entity.Address{
		HouseNumber:  input.HouseNumber,
		BuildingName: input.BuildingName,
		StreetName:   input.StreetName,
		PinCode:      input.PinCode,
		City:         input.City,
	}
	inquiry.StartDate = input.StartDate
	inquiry.StartTime = input.StartTime
	inquiry.EndDate = input.EndDate
	inquiry.EndTime = input.EndTime
	inquiry.Message = strings.TrimSpace(input.Message)
	return inquiry
}
