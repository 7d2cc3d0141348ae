package handlers

import (
	"net/http"
	"time"

	"github.com/consoleforeveryone/rental-api/internal/infra/mail"
)

// HealthHandler reports which email provider credentials are configured
// without exercising either provider.
type HealthHandler struct {
	Gateway *mail.Gateway
}

type emailServiceStatus struct {
	Configured bool `json:"configured"`
	Primary    bool `json:"primary,omitempty"`
	Fallback   bool `json:"fallback,omitempty"`
}

type healthResponse struct {
	Status        string                        `json:"status"`
	EmailServices map[string]emailServiceStatus `json:"emailServices"`
	Timestamp     string                        `json:"timestamp"`
}

func NewHealthHandler(gateway *mail.Gateway) *HealthHandler {
	return &HealthHandler{Gateway: gateway}
}

// Handle serves GET /inquiries/health.
func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	response := healthResponse{
		Status: "healthy",
		EmailServices: map[string]emailServiceStatus{
			"primary": {
				Configured: h.Gateway.Primary().Configured(),
				Primary:    true,
			},
			"secondary": {
				Configured: h.Gateway.Secondary().Configured(),
				Fallback:   true,
			},
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}

	writeJSON(w, http.StatusOK, response)
}
