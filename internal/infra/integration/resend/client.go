package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.resend.com"

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// NewClientWithBaseURL is used by tests to point the client at a stub server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// SendEmail submits one transactional email and returns the provider's id.
func (c *Client) SendEmail(ctx context.Context, input SendEmailInput) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("resend API key not configured")
	}

	url := fmt.Sprintf("%s/emails", c.baseURL)

	payload := sendEmailRequest{
		From:    input.From,
		To:      []string{input.To},
		Subject: input.Subject,
		HTML:    input.HTML,
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("resend request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Message != "" {
			return "", fmt.Errorf("resend failed: %s (status %d)", apiErr.Message, resp.StatusCode)
		}
		return "", fmt.Errorf("resend failed with status %d", resp.StatusCode)
	}

	var response sendEmailResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("failed to decode resend response: %w", err)
	}

	return response.ID, nil
}
