package helpers

import (
	"encoding/json"
	"errors"
	"net/http"

	"eventhub/internal/domain"
)

// Error codes for API error responses. Use these with WriteJSONError.
const (
	ErrCodeInvalidRequest = domain.CodeInvalidRequest
	ErrCodeInvalidCursor  = domain.CodeInvalidCursor
	ErrCodeUnauthorized   = "unauthorized"
	ErrCodeForbidden      = "forbidden"
	ErrCodeNotFound       = "not_found"
	ErrCodeRateLimited    = "rate_limited"
	ErrCodeInternalError  = "internal_error"
	ErrCodeNotConfigured  = "not_configured"
)

// APIError is the error object in the standardized API response envelope.
// swagger:model APIError
type APIError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// APIResponse is the standardized envelope for all API responses.
// On success Data (and Meta for lists and lookups) is set. On error only Error is set.
// swagger:model APIResponse
type APIResponse struct {
	Data  any       `json:"data,omitempty"`
	Meta  any       `json:"meta,omitempty"`
	Error *APIError `json:"error,omitempty"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and encodes body.
func WriteJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// WriteJSONSuccess encodes an APIResponse with the given data and no meta.
func WriteJSONSuccess(w http.ResponseWriter, statusCode int, data any) {
	WriteJSON(w, statusCode, APIResponse{Data: data})
}

// WriteJSONSuccessWithMeta encodes an APIResponse with data and meta.
func WriteJSONSuccessWithMeta(w http.ResponseWriter, statusCode int, data, meta any) {
	WriteJSON(w, statusCode, APIResponse{Data: data, Meta: meta})
}

// WriteJSONError encodes an APIResponse carrying only an error code and message.
func WriteJSONError(w http.ResponseWriter, statusCode int, code, message string) {
	WriteJSON(w, statusCode, APIResponse{Error: &APIError{Code: code, Message: message}})
}

// WriteJSONErrorDetails is WriteJSONError with a details object.
func WriteJSONErrorDetails(w http.ResponseWriter, statusCode int, code, message string, details map[string]any) {
	WriteJSON(w, statusCode, APIResponse{Error: &APIError{Code: code, Message: message, Details: details}})
}

// WriteDomainError maps a client-facing domain error to its status and code.
// It returns false for anything it does not recognise; callers treat that as an internal error.
func WriteDomainError(w http.ResponseWriter, err error) bool {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		WriteJSONErrorDetails(w, http.StatusBadRequest, ve.Code, ve.Message, ve.Details)
	case errors.Is(err, domain.ErrNotFound):
		WriteJSONError(w, http.StatusNotFound, ErrCodeNotFound, "event not found")
	case errors.Is(err, domain.ErrNotConfigured):
		WriteJSONError(w, http.StatusServiceUnavailable, ErrCodeNotConfigured, "event storage is not configured")
	default:
		return false
	}
	return true
}
