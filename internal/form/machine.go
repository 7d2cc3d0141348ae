package form

import (
	"context"
	"errors"
	"time"

	"github.com/consoleforeveryone/rental-api/internal/entity"
	"github.com/consoleforeveryone/rental-api/internal/usecase"
)

var ErrNotOnFinalStep = errors.New("submit is only reachable from the final step")

type Step int

const (
	StepPersonal Step = iota + 1
	StepGames
	StepAddressSchedule
)

const totalSteps = StepAddressSchedule

type State int

const (
	StateEditing State = iota
	StateSubmitting
	StateSucceeded
	StateFailed
)

// Submitter posts a completed draft to the inquiry API.
type Submitter interface {
	Submit(ctx context.Context, input usecase.SubmitInquiryInput) (*usecase.SubmitInquiryOutput, error)
}

// Machine is the three-step inquiry wizard: personal info, games and
// controllers, address and schedule. Every mutation is written through to
// the draft store so the draft survives restarts.
type Machine struct {
	store     DraftStore
	submitter Submitter

	draft *entity.InquiryDraft
	step  Step
	state State

	// Now is the clock used by the final validation gate; tests pin it.
	Now func() time.Time
}

// NewMachine restores any stored draft, or starts fresh on Step 1.
func NewMachine(store DraftStore, submitter Submitter) (*Machine, error) {
	m := &Machine{
		store:     store,
		submitter: submitter,
		draft:     entity.NewInquiryDraft(),
		step:      StepPersonal,
		state:     StateEditing,
		Now:       time.Now,
	}

	stored, err := store.Load()
	if err != nil {
		return nil, err
	}
	if stored != nil && stored.Draft != nil {
		m.draft = stored.Draft
		if stored.Step >= StepPersonal && stored.Step <= totalSteps {
			m.step = stored.Step
		}
	}

	return m, nil
}

func (m *Machine) Step() Step                  { return m.step }
func (m *Machine) State() State                { return m.state }
func (m *Machine) Draft() *entity.InquiryDraft { return m.draft }

// Update mutates the draft and persists it immediately. Persistence is
// best-effort: the store is a cache, not the source of truth.
func (m *Machine) Update(mutate func(*entity.InquiryDraft)) error {
	mutate(m.draft)
	return m.persist()
}

func (m *Machine) persist() error {
	return m.store.Save(&StoredDraft{Draft: m.draft, Step: m.step})
}

func stepFields(step Step) []string {
	switch step {
	case StepPersonal:
		return usecase.PersonalFields
	case StepGames:
		return usecase.GameFields
	default:
		return usecase.AddressFields
	}
}

// Next validates only the current step's fields and advances when they are
// all valid; otherwise it stays put and returns the violations.
func (m *Machine) Next() []usecase.FieldError {
	errs := usecase.ValidateDraftFields(m.draft, stepFields(m.step))
	if len(errs) > 0 {
		return errs
	}
	if m.step < totalSteps {
		m.step++
		m.persist()
	}
	return nil
}

// Previous is unconditional; no validation on the way back.
func (m *Machine) Previous() {
	if m.step > StepPersonal {
		m.step--
		m.persist()
	}
}

// Submit runs the full schema, posts the inquiry, and clears the stored
// draft on success. On failure the draft is retained so the user can retry.
func (m *Machine) Submit(ctx context.Context) (*usecase.SubmitInquiryOutput, []usecase.FieldError, error) {
	if m.step != totalSteps {
		return nil, nil, ErrNotOnFinalStep
	}

	if errs := usecase.ValidateDraft(m.draft, m.Now()); len(errs) > 0 {
		return nil, errs, nil
	}

	m.state = StateSubmitting

	output, err := m.submitter.Submit(ctx, ToSubmitInput(m.draft))
	if err != nil {
		m.state = StateFailed
		return nil, nil, err
	}

	m.state = StateSucceeded
	m.draft = entity.NewInquiryDraft()
	m.step = StepPersonal
	m.store.Clear()
	return output, nil, nil
}

// Reset discards the draft and stored state and returns to Step 1.
func (m *Machine) Reset() error {
	m.draft = entity.NewInquiryDraft()
	m.step = StepPersonal
	m.state = StateEditing
	return m.store.Clear()
}

// ToSubmitInput converts the draft to the wire payload. The phone is sent
// with the +91 prefix the way the form captures it; the server strips it.
func ToSubmitInput(d *entity.InquiryDraft) usecase.SubmitInquiryInput {
	phone := d.Phone
	if len(phone) == 10 {
		phone = "+91" + phone
	}
	return usecase.SubmitInquiryInput{
		Name:                d.Name,
		Email:               d.Email,
		Phone:               phone,
		SelectedGames:       d.SelectedGames,
		CustomGames:         d.CustomGames,
		NumberOfControllers: d.NumberOfControllers,
		HouseNumber:         d.HouseNumber,
		BuildingName:        d.BuildingName,
		StreetName:          d.StreetName,
		PinCode:             d.PinCode,
		City:                d.City,
		StartDate:           d.StartDate,
		StartTime:           d.StartTime,
		EndDate:             d.EndDate,
		EndTime:             d.EndTime,
		Message:             d.Message,
	}
}
