package resend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testInput() SendEmailInput {
	return SendEmailInput{
		From:    "Console For Everyone <hello@consoleforeveryone.com>",
		To:      "asha@example.com",
		Subject: "New PS5 Rental Inquiry from Asha Rao",
		HTML:    "<p>hello</p>",
	}
}

func TestSendEmailSuccess(t *testing.T) {
	var gotAuth string
	var gotPayload sendEmailRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/emails", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(sendEmailResponse{ID: "re_123"})
	}))
	defer srv.Close()

	client := NewClientWithBaseURL("test-key", srv.URL)
	id, err := client.SendEmail(context.Background(), testInput())

	require.NoError(t, err)
	assert.Equal(t, "re_123", id)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, []string{"asha@example.com"}, gotPayload.To)
	assert.Equal(t, "New PS5 Rental Inquiry from Asha Rao", gotPayload.Subject)
}

func TestSendEmailAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(errorResponse{Name: "validation_error", Message: "API key is invalid", StatusCode: 401})
	}))
	defer srv.Close()

	client := NewClientWithBaseURL("bad-key", srv.URL)
	_, err := client.SendEmail(context.Background(), testInput())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key is invalid")
	assert.Contains(t, err.Error(), "401")
}

func TestSendEmailOpaqueError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClientWithBaseURL("test-key", srv.URL)
	_, err := client.SendEmail(context.Background(), testInput())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestSendEmailRequiresAPIKey(t *testing.T) {
	client := NewClient("")
	assert.False(t, client.Configured())

	_, err := client.SendEmail(context.Background(), testInput())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
