package usecase

import (
	"regexp"
	"strings"
	"time"

	"github.com/consoleforeveryone/rental-api/internal/entity"
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^(\+?91)?([6-9]\d{9})$`)
	nameRegex  = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	pinRegex   = regexp.MustCompile(`^\d{6}$`)
)

// InquiryCandidate is the normalized output of server-side validation:
// the phone with its country prefix stripped and the composed instants.
type InquiryCandidate struct {
	Phone string
	Start time.Time
	End   time.Time
}

// ValidateSubmitInquiry checks the raw payload in a fixed order and fails
// fast on the first violation. Messages are the exact client-facing strings.
func ValidateSubmitInquiry(input SubmitInquiryInput, now time.Time, enforceFutureStart bool) (*InquiryCandidate, error) {
	required := []struct {
		field string
		empty bool
	}{
		{"name", strings.TrimSpace(input.Name) == ""},
		{"email", strings.TrimSpace(input.Email) == ""},
		{"phone", strings.TrimSpace(input.Phone) == ""},
		{"selectedGames", input.SelectedGames == nil},
		{"houseNumber", strings.TrimSpace(input.HouseNumber) == ""},
		{"buildingName", strings.TrimSpace(input.BuildingName) == ""},
		{"streetName", strings.TrimSpace(input.StreetName) == ""},
		{"pinCode", strings.TrimSpace(input.PinCode) == ""},
		{"city", strings.TrimSpace(input.City) == ""},
		{"startDate", strings.TrimSpace(input.StartDate) == ""},
		{"startTime", strings.TrimSpace(input.StartTime) == ""},
		{"endDate", strings.TrimSpace(input.EndDate) == ""},
		{"endTime", strings.TrimSpace(input.EndTime) == ""},
	}
	for _, r := range required {
		if r.empty {
			return nil, &ValidationError{Field: r.field, Message: r.field + " is required"}
		}
	}

	if !emailRegex.MatchString(input.Email) {
		return nil, &ValidationError{Field: "email", Message: "Invalid email format"}
	}

	phone, ok := NormalizePhone(input.Phone)
	if !ok {
		return nil, &ValidationError{Field: "phone", Message: "Invalid phone number format"}
	}

	if len(input.SelectedGames) == 0 {
		return nil, &ValidationError{Field: "selectedGames", Message: "Please select at least one game"}
	}

	start, err := entity.ParseInstant(input.StartDate, input.StartTime)
	if err != nil {
		return nil, &ValidationError{Field: "startDate", Message: "Invalid date or time format"}
	}
	end, err := entity.ParseInstant(input.EndDate, input.EndTime)
	if err != nil {
		return nil, &ValidationError{Field: "endDate", Message: "Invalid date or time format"}
	}

	if !end.After(start) {
		return nil, &ValidationError{Field: "endDate", Message: "End date and time must be after start date and time"}
	}

	if enforceFutureStart && !start.After(now) {
		return nil, &ValidationError{Field: "startDate", Message: "Start date and time must be in the future"}
	}

	if end.Sub(start) < time.Hour {
		return nil, &ValidationError{Field: "endDate", Message: "Minimum rental duration is 1 hour"}
	}

	return &InquiryCandidate{Phone: phone, Start: start, End: end}, nil
}

// Wizard step field groups. Next() validates only the current step's fields.
var (
	PersonalFields = []string{"name", "email", "phone"}
	GameFields     = []string{"selectedGames", "numberOfControllers"}
	AddressFields  = []string{"houseNumber", "buildingName", "streetName", "pinCode", "city", "startDate", "startTime", "endDate", "endTime"}
)

// ValidateDraftFields runs the client-side rules for the named fields and
// accumulates every violation instead of failing fast.
func ValidateDraftFields(d *entity.InquiryDraft, fields []string) []FieldError {
	var errs []FieldError
	add := func(field, message string) {
		errs = append(errs, FieldError{Field: field, Message: message})
	}

	for _, field := range fields {
		switch field {
		case "name":
			name := strings.TrimSpace(d.Name)
			switch {
			case len(name) < 2:
				add(field, "Name must be at least 2 characters")
			case len(name) > 50:
				add(field, "Name must be less than 50 characters")
			case !nameRegex.MatchString(name):
				add(field, "Name should only contain letters and spaces")
			}
		case "email":
			if !emailRegex.MatchString(strings.TrimSpace(d.Email)) {
				add(field, "Please enter a valid email address")
			}
		case "phone":
			if _, ok := NormalizePhone(d.Phone); !ok {
				add(field, "Please enter a valid 10-digit mobile number")
			}
		case "selectedGames":
			if len(d.SelectedGames) == 0 {
				add(field, "Please select at least one game")
			}
		case "numberOfControllers":
			if d.NumberOfControllers < 1 {
				add(field, "At least 1 controller required")
			} else if d.NumberOfControllers > 4 {
				add(field, "Maximum 4 controllers allowed")
			}
		case "houseNumber":
			if strings.TrimSpace(d.HouseNumber) == "" {
				add(field, "House/Flat number is required")
			}
		case "buildingName":
			if len(strings.TrimSpace(d.BuildingName)) < 2 {
				add(field, "Building name is required")
			}
		case "streetName":
			if len(strings.TrimSpace(d.StreetName)) < 2 {
				add(field, "Street name is required")
			}
		case "pinCode":
			if !pinRegex.MatchString(strings.TrimSpace(d.PinCode)) {
				add(field, "Please enter a valid 6-digit pin code")
			}
		case "city":
			city := strings.TrimSpace(d.City)
			if len(city) < 2 {
				add(field, "City name is required")
			} else if !nameRegex.MatchString(city) {
				add(field, "City should only contain letters and spaces")
			}
		case "startDate":
			if strings.TrimSpace(d.StartDate) == "" {
				add(field, "Start date is required")
			}
		case "startTime":
			if strings.TrimSpace(d.StartTime) == "" {
				add(field, "Start time is required")
			}
		case "endDate":
			if strings.TrimSpace(d.EndDate) == "" {
				add(field, "End date is required")
			}
		case "endTime":
			if strings.TrimSpace(d.EndTime) == "" {
				add(field, "End time is required")
			}
		case "message":
			if len(d.Message) > 500 {
				add(field, "Message must be less than 500 characters")
			}
		}
	}

	return errs
}

// ValidateDraft runs the full client-side schema plus the cross-field date
// rules, for the final submit gate.
func ValidateDraft(d *entity.InquiryDraft, now time.Time) []FieldError {
	fields := append(append([]string{}, PersonalFields...), GameFields...)
	fields = append(fields, AddressFields...)
	fields = append(fields, "message")
	errs := ValidateDraftFields(d, fields)

	start, startErr := entity.ParseInstant(d.StartDate, d.StartTime)
	end, endErr := entity.ParseInstant(d.EndDate, d.EndTime)
	if startErr == nil && endErr == nil {
		if !end.After(start) {
			errs = append(errs, FieldError{Field: "endDate", Message: "End date and time must be after start date and time"})
		}
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		if start.Before(today) {
			errs = append(errs, FieldError{Field: "startDate", Message: "Start date cannot be in the past"})
		}
	}

	return errs
}
