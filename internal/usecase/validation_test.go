package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consoleforeveryone/rental-api/internal/entity"
)

func validInput() SubmitInquiryInput {
	return SubmitInquiryInput{
		Name:                "Asha Rao",
		Email:               "asha@example.com",
		Phone:               "9876543210",
		SelectedGames:       []string{"Elden Ring"},
		NumberOfControllers: 2,
		HouseNumber:         "12",
		BuildingName:        "Lake View",
		StreetName:          "MG Road",
		PinCode:             "560001",
		City:                "Bangalore",
		StartDate:           "2099-01-10",
		StartTime:           "10:00",
		EndDate:             "2099-01-11",
		EndTime:             "10:00",
	}
}

func testNow() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local)
}

func TestValidateSubmitInquiryAccepted(t *testing.T) {
	candidate, err := ValidateSubmitInquiry(validInput(), testNow(), true)
	require.NoError(t, err)
	assert.Equal(t, "9876543210", candidate.Phone)
	assert.True(t, candidate.End.After(candidate.Start))
}

func TestValidateSubmitInquiryRequiredFields(t *testing.T) {
	cases := []struct {
		field  string
		mutate func(*SubmitInquiryInput)
	}{
		{"name", func(i *SubmitInquiryInput) { i.Name = "" }},
		{"email", func(i *SubmitInquiryInput) { i.Email = "" }},
		{"phone", func(i *SubmitInquiryInput) { i.Phone = "" }},
		{"selectedGames", func(i *SubmitInquiryInput) { i.SelectedGames = nil }},
		{"houseNumber", func(i *SubmitInquiryInput) { i.HouseNumber = "" }},
		{"buildingName", func(i *SubmitInquiryInput) { i.BuildingName = "" }},
		{"streetName", func(i *SubmitInquiryInput) { i.StreetName = "" }},
		{"pinCode", func(i *SubmitInquiryInput) { i.PinCode = "" }},
		{"city", func(i *SubmitInquiryInput) { i.City = "" }},
		{"startDate", func(i *SubmitInquiryInput) { i.StartDate = "" }},
		{"startTime", func(i *SubmitInquiryInput) { i.StartTime = "" }},
		{"endDate", func(i *SubmitInquiryInput) { i.EndDate = "" }},
		{"endTime", func(i *SubmitInquiryInput) { i.EndTime = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			input := validInput()
			tc.mutate(&input)

			_, err := ValidateSubmitInquiry(input, testNow(), true)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.field, vErr.Field)
			assert.Equal(t, tc.field+" is required", vErr.Message)
		})
	}
}

func TestValidateSubmitInquiryEmail(t *testing.T) {
	input := validInput()
	input.Email = "not-an-email"

	_, err := ValidateSubmitInquiry(input, testNow(), true)
	require.Error(t, err)
	assert.Equal(t, "Invalid email format", err.Error())
}

func TestValidateSubmitInquiryPhone(t *testing.T) {
	valid := []string{"9876543210", "+919876543210", "919876543210", "6123456789"}
	for _, phone := range valid {
		input := validInput()
		input.Phone = phone

		candidate, err := ValidateSubmitInquiry(input, testNow(), true)
		require.NoError(t, err, "phone %q", phone)
		assert.Equal(t, phone[len(phone)-10:], candidate.Phone)
	}

	invalid := []string{"1234567890", "98765432", "98765432101", "+929876543210", "abcdefghij"}
	for _, phone := range invalid {
		input := validInput()
		input.Phone = phone

		_, err := ValidateSubmitInquiry(input, testNow(), true)
		require.Error(t, err, "phone %q", phone)
		assert.Equal(t, "Invalid phone number format", err.Error())
	}
}

func TestValidateSubmitInquiryEmptyGames(t *testing.T) {
	input := validInput()
	input.SelectedGames = []string{}

	_, err := ValidateSubmitInquiry(input, testNow(), true)
	require.Error(t, err)
	assert.Equal(t, "Please select at least one game", err.Error())
}

func TestValidateSubmitInquiryEndBeforeStart(t *testing.T) {
	input := validInput()
	input.EndDate = "2099-01-09"

	_, err := ValidateSubmitInquiry(input, testNow(), true)
	require.Error(t, err)
	assert.Equal(t, "End date and time must be after start date and time", err.Error())
}

func TestValidateSubmitInquirySameDaySwappedTimes(t *testing.T) {
	input := validInput()
	input.StartDate = "2099-01-10"
	input.StartTime = "18:00"
	input.EndDate = "2099-01-10"
	input.EndTime = "10:00"

	_, err := ValidateSubmitInquiry(input, testNow(), true)
	require.Error(t, err)
	assert.Equal(t, "End date and time must be after start date and time", err.Error())
}

func TestValidateSubmitInquiryEqualInstants(t *testing.T) {
	input := validInput()
	input.EndDate = input.StartDate
	input.EndTime = input.StartTime

	_, err := ValidateSubmitInquiry(input, testNow(), true)
	require.Error(t, err)
	assert.Equal(t, "End date and time must be after start date and time", err.Error())
}

func TestValidateSubmitInquiryFutureStartToggle(t *testing.T) {
	input := validInput()
	input.StartDate = "2020-01-10"
	input.EndDate = "2020-01-11"

	_, err := ValidateSubmitInquiry(input, testNow(), true)
	require.Error(t, err)
	assert.Equal(t, "Start date and time must be in the future", err.Error())

	// Same payload passes with the check disabled.
	_, err = ValidateSubmitInquiry(input, testNow(), false)
	assert.NoError(t, err)
}

func TestValidateSubmitInquiryDurationBoundary(t *testing.T) {
	// 59 minutes is rejected.
	input := validInput()
	input.EndDate = input.StartDate
	input.EndTime = "10:59"

	_, err := ValidateSubmitInquiry(input, testNow(), true)
	require.Error(t, err)
	assert.Equal(t, "Minimum rental duration is 1 hour", err.Error())

	// Exactly 60 minutes is accepted.
	input.EndTime = "11:00"
	_, err = ValidateSubmitInquiry(input, testNow(), true)
	assert.NoError(t, err)
}

func TestValidateSubmitInquiryUnparseableDate(t *testing.T) {
	input := validInput()
	input.StartDate = "tomorrow"

	_, err := ValidateSubmitInquiry(input, testNow(), true)
	require.Error(t, err)
	assert.Equal(t, "Invalid date or time format", err.Error())
}

func TestValidateDraftFieldsAccumulates(t *testing.T) {
	d := entity.NewInquiryDraft()
	d.Name = "A"
	d.Email = "bad"
	d.Phone = "123"

	errs := ValidateDraftFields(d, PersonalFields)
	require.Len(t, errs, 3)

	fields := []string{errs[0].Field, errs[1].Field, errs[2].Field}
	assert.Equal(t, []string{"name", "email", "phone"}, fields)
}

func TestValidateDraftControllersBounds(t *testing.T) {
	d := entity.NewInquiryDraft()
	d.SelectedGames = []string{"FIFA 24"}

	d.NumberOfControllers = 0
	errs := ValidateDraftFields(d, GameFields)
	require.Len(t, errs, 1)
	assert.Equal(t, "At least 1 controller required", errs[0].Message)

	d.NumberOfControllers = 5
	errs = ValidateDraftFields(d, GameFields)
	require.Len(t, errs, 1)
	assert.Equal(t, "Maximum 4 controllers allowed", errs[0].Message)

	d.NumberOfControllers = 4
	assert.Empty(t, ValidateDraftFields(d, GameFields))
}

func TestValidateDraftPastStartDate(t *testing.T) {
	d := fullDraft()
	d.StartDate = "2020-01-10"
	d.EndDate = "2020-01-11"

	errs := ValidateDraft(d, testNow())
	require.Len(t, errs, 1)
	assert.Equal(t, "startDate", errs[0].Field)
	assert.Equal(t, "Start date cannot be in the past", errs[0].Message)
}

func fullDraft() *entity.InquiryDraft {
	return &entity.InquiryDraft{
		Name:                "Asha Rao",
		Email:               "asha@example.com",
		Phone:               "9876543210",
		SelectedGames:       []string{"Elden Ring"},
		NumberOfControllers: 2,
		HouseNumber:         "12",
		BuildingName:        "Lake View",
		StreetName:          "MG Road",
		PinCode:             "560001",
		City:                "Bangalore",
		StartDate:           "2099-01-10",
		StartTime:           "10:00",
		EndDate:             "2099-01-11",
		EndTime:             "10:00",
	}
}
