package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/pr-poehali-dev/cs2-case-openings/internal/domain"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// Encode buffers are sized for a drop outcome with its reel. Buffers that grew
// past encodeBufferMax are dropped instead of pooled.
const (
	encodeBufferSize = 8 << 10
	encodeBufferMax  = 64 << 10
)

var encodeBuffers = sync.Pool{
	New: func() any { return bytes.NewBuffer(make([]byte, 0, encodeBufferSize)) },
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := encodeBuffers.Get().(*bytes.Buffer)
	defer func() {
		if buf.Cap() <= encodeBufferMax {
			buf.Reset()
			encodeBuffers.Put(buf)
		}
	}()

	// Encode before writing the header so an encoding failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped response.
// Client errors log at warn, everything else at error.
func respondServiceError(w http.ResponseWriter, r *http.Request, action string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(action+" failed", "error", err, "status", status)
	} else {
		log.Warn(action+" rejected", "error", err, "status", status)
	}
	respondError(w, status, msg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgUnavailableError    = "Server is temporarily unavailable. Please try again later."
	ErrMsgConflictRetryError  = "Another operation on this account is in progress. Please retry."
	ErrMsgRequestIDReusedErr  = "That request id was already used for a different operation"
	ErrMsgNotEnoughMoneyError = "Not enough balance"
	ErrMsgAccountNotFoundErr  = "Account not found"
	ErrMsgItemNotFoundError   = "You don't have that item"
	ErrMsgDuplicateItemError  = "An item was selected more than once"
	ErrMsgNothingToSellError  = "Nothing to sell"
	ErrMsgInvalidAmountError  = "Amount must be positive"
	ErrMsgSelectionCountError = "A contract needs between 3 and 10 items"
	ErrMsgChanceRangeError    = "Upgrade chance must be between 10 and 90"
	ErrMsgCaseNotFoundError   = "Case not found"
	ErrMsgTargetNotFoundError = "Upgrade target not found"
	ErrMsgBadCaseError        = "That case cannot be opened"
	ErrMsgTargetNotUpgradeErr = "Pick a target worth more than the item you stake"
	ErrMsgTargetMismatchError = "That chance does not match the chosen target"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// Unknown errors become a generic 500 so internal details never reach the client.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInsufficientBalance):
		return http.StatusPaymentRequired, ErrMsgNotEnoughMoneyError
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound, ErrMsgAccountNotFoundErr
	case errors.Is(err, domain.ErrCaseNotFound):
		return http.StatusNotFound, ErrMsgCaseNotFoundError
	case errors.Is(err, domain.ErrTargetNotFound):
		return http.StatusNotFound, ErrMsgTargetNotFoundError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusUnprocessableEntity, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrDuplicateSelection):
		return http.StatusUnprocessableEntity, ErrMsgDuplicateItemError
	case errors.Is(err, domain.ErrNothingToSell):
		return http.StatusUnprocessableEntity, ErrMsgNothingToSellError
	case errors.Is(err, domain.ErrInvalidSelectionCount):
		return http.StatusBadRequest, ErrMsgSelectionCountError
	case errors.Is(err, domain.ErrInvalidChanceRange):
		return http.StatusBadRequest, ErrMsgChanceRangeError
	case errors.Is(err, domain.ErrTargetNotUpgrade):
		return http.StatusUnprocessableEntity, ErrMsgTargetNotUpgradeErr
	case errors.Is(err, domain.ErrTargetChanceMismatch):
		return http.StatusUnprocessableEntity, ErrMsgTargetMismatchError
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest, ErrMsgInvalidAmountError
	case errors.Is(err, domain.ErrInvalidCaseDefinition), errors.Is(err, domain.ErrEmptyOutcomePool):
		return http.StatusUnprocessableEntity, ErrMsgBadCaseError
	case errors.Is(err, domain.ErrRequestIDReused):
		return http.StatusConflict, ErrMsgRequestIDReusedErr
	case errors.Is(err, domain.ErrConcurrentConflict):
		return http.StatusConflict, ErrMsgConflictRetryError
	case errors.Is(err, domain.ErrServiceClosed):
		return http.StatusServiceUnavailable, ErrMsgUnavailableError
	case errors.Is(err, domain.ErrPersistenceFailure):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
