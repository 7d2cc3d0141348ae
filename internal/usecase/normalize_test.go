package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"9876543210", "9876543210", true},
		{"+919876543210", "9876543210", true},
		{"919876543210", "9876543210", true},
		{"6000000000", "6000000000", true},
		{"5876543210", "", false}, // first digit must be 6-9
		{"98765", "", false},
		{"+9198765432101", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := NormalizePhone(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}
