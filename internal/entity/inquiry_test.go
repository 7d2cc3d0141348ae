package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullAddress(t *testing.T) {
	addr := Address{
		HouseNumber:  "12",
		BuildingName: "Lake View",
		StreetName:   "MG Road",
		PinCode:      "560001",
		City:         "Bangalore",
	}
	assert.Equal(t, "12, Lake View, MG Road, Bangalore, 560001", addr.FullAddress())
}

func TestFullAddressSkipsEmptyParts(t *testing.T) {
	addr := Address{
		HouseNumber: "12",
		StreetName:  "MG Road",
		City:        "Bangalore",
	}
	assert.Equal(t, "12, MG Road, Bangalore", addr.FullAddress())

	addr.BuildingName = "   "
	assert.Equal(t, "12, MG Road, Bangalore", addr.FullAddress(), "whitespace-only parts are skipped")
}

func TestNewInquiryDefaults(t *testing.T) {
	inquiry := NewInquiry()
	assert.NotEmpty(t, inquiry.ID)
	assert.Equal(t, "pending", inquiry.Status)
	assert.False(t, inquiry.CreatedAt.IsZero())
}

func TestParseInstant(t *testing.T) {
	got, err := ParseInstant("2099-01-10", "18:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2099, 1, 10, 18, 30, 0, 0, time.Local), got)

	_, err = ParseInstant("tomorrow", "18:30")
	assert.Error(t, err)
}

func TestDurationDays(t *testing.T) {
	base := time.Date(2099, 1, 10, 10, 0, 0, 0, time.Local)

	cases := []struct {
		hours int
		want  int
	}{
		{1, 1},
		{24, 1},
		{25, 2},
		{48, 2},
		{49, 3},
	}
	for _, tc := range cases {
		got := DurationDays(base, base.Add(time.Duration(tc.hours)*time.Hour))
		assert.Equal(t, tc.want, got, "%d hours", tc.hours)
	}
}
