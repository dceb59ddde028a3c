package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pr-poehali-dev/cs2-case-openings/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body, validates it, and returns appropriate errors.
// If it returns an error, the HTTP response has already been written and the handler should return.
//
// Example usage:
//
//	var req OpenCaseBody
//	if err := DecodeAndValidateRequest(r, w, &req, ActionOpenCase); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if key := r.Header.Get(HeaderIdempotencyKey); key != "" {
		if err := GetValidator().ValidateVar(key, tagRequestID); err != nil {
			respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
				Error:  ErrMsgInvalidRequestSummary,
				Fields: map[string]string{HeaderIdempotencyKey: requestIDRule},
			})
			return err
		}
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// GetPathParam returns a required chi URL parameter, writing a 400 when it is empty
func GetPathParam(r *http.Request, w http.ResponseWriter, name string) (string, bool) {
	value := chi.URLParam(r, name)
	if value == "" {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingPathParam, name))
		return "", false
	}
	return value, true
}

// GetAccountIDParam returns the accountID path parameter once it has the
// shape of an account id, writing a 400 otherwise
func GetAccountIDParam(r *http.Request, w http.ResponseWriter) (string, bool) {
	accountID, ok := GetPathParam(r, w, ParamAccountID)
	if !ok {
		return "", false
	}
	if err := GetValidator().ValidateVar(accountID, tagAccountID); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: map[string]string{ParamAccountID: accountIDRule},
		})
		return "", false
	}
	return accountID, true
}

// GetOptionalQueryParam retrieves an optional query parameter from the request.
// Unlike GetPathParam, this does not write an error response if the parameter is missing.
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetLimitParam parses the optional limit query parameter. Zero means the service default.
func GetLimitParam(r *http.Request, w http.ResponseWriter) (int, bool) {
	raw := GetOptionalQueryParam(r, QueryLimit, "0")
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
		return 0, false
	}
	return limit, true
}

// requestID prefers the Idempotency-Key header over the body field
func requestID(r *http.Request, fromBody string) string {
	if key := r.Header.Get(HeaderIdempotencyKey); key != "" {
		return key
	}
	return fromBody
}

// parseItemIDs converts validated UUID strings. Validation has already run, so an
// error here means a handler skipped it.
func parseItemIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, len(raw))
	for i, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}
