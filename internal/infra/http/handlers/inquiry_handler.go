package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/consoleforeveryone/rental-api/internal/entity"
	"github.com/consoleforeveryone/rental-api/internal/usecase"
)

type InquiryHandler struct {
	SubmitUC *usecase.SubmitInquiryUseCase

	// EchoDetails adds the underlying error to 500 responses; enabled
	// only outside production.
	EchoDetails bool
}

func NewInquiryHandler(uc *usecase.SubmitInquiryUseCase, echoDetails bool) *InquiryHandler {
	return &InquiryHandler{
		SubmitUC:    uc,
		EchoDetails: echoDetails,
	}
}

// Submit handles POST /inquiries.
func (h *InquiryHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var input usecase.SubmitInquiryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	output, err := h.SubmitUC.Execute(r.Context(), input)
	if err != nil {
		h.writeSubmitError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

func (h *InquiryHandler) writeSubmitError(w http.ResponseWriter, err error) {
	var vErr *usecase.ValidationError
	if errors.As(err, &vErr) {
		writeError(w, http.StatusBadRequest, vErr.Message)
		return
	}

	if errors.Is(err, entity.ErrDuplicateInquiry) {
		writeError(w, http.StatusConflict, "A duplicate entry was found")
		return
	}

	log.Printf("[INQUIRY] Submit failed: %v", err)

	body := map[string]string{"error": "Internal server error"}
	if h.EchoDetails {
		body["details"] = err.Error()
	}
	writeJSON(w, http.StatusInternalServerError, body)
}
