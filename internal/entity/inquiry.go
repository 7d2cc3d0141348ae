package entity

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrDuplicateInquiry = errors.New("a duplicate entry was found")

// Value Object: Address
type Address struct {
	HouseNumber  string `json:"houseNumber"`
	BuildingName string `json:"buildingName"`
	StreetName   string `json:"streetName"`
	PinCode      string `json:"pinCode"`
	City         string `json:"city"`
}

// FullAddress joins the non-empty parts in display order:
// house, building, street, city, pin.
func (a Address) FullAddress() string {
	parts := []string{a.HouseNumber, a.BuildingName, a.StreetName, a.City, a.PinCode}
	nonEmpty := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, ", ")
}

// Inquiry is the persisted rental request. It is insert-only: once created
// the service never updates or deletes it.
type Inquiry struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Email               string    `json:"email"`
	Phone               string    `json:"phone"` // 10 digits, +91 prefix stripped
	SelectedGames       []string  `json:"selectedGames"`
	CustomGames         string    `json:"customGames,omitempty"`
	NumberOfControllers int       `json:"numberOfControllers"`
	Address             Address   `json:"address"`
	StartDate           string    `json:"startDate"` // YYYY-MM-DD
	StartTime           string    `json:"startTime"` // HH:MM
	EndDate             string    `json:"endDate"`
	EndTime             string    `json:"endTime"`
	Message             string    `json:"message,omitempty"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"created_at"`
}

func NewInquiry() *Inquiry {
	return &Inquiry{
		ID:        uuid.New().String(),
		Status:    "pending",
		CreatedAt: time.Now(),
	}
}

// StartInstant composes StartDate and StartTime into a single instant.
func (i *Inquiry) StartInstant() (time.Time, error) {
	return ParseInstant(i.StartDate, i.StartTime)
}

// EndInstant composes EndDate and EndTime into a single instant.
func (i *Inquiry) EndInstant() (time.Time, error) {
	return ParseInstant(i.EndDate, i.EndTime)
}

// ParseInstant combines a YYYY-MM-DD date and an HH:MM time.
func ParseInstant(date, clock string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", date+" "+clock, time.Local)
}

// DurationDays is the rental length in whole days for display, rounded up
// so a 25-hour rental counts as 2 days.
func DurationDays(start, end time.Time) int {
	return int(math.Ceil(end.Sub(start).Hours() / 24))
}
