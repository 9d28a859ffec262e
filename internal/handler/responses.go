package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/Farmstead_Go/internal/domain"
	"github.com/osse101/Farmstead_Go/internal/logger"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent at this point
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgNotFoundError      = "Resource not found."
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// messages users can act upon. Internal failures get a generic message.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrDatabaseError):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrProfileNotFound),
		errors.Is(err, domain.ErrPlotNotFound),
		errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrDistrictNotFound):
		return http.StatusNotFound, err.Error()
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// rejectionStatus picks the status for an operation the rules refused.
// Missing targets are 404, malformed intents 400, everything else is a
// well-formed request the current state does not allow.
func rejectionStatus(reason error) int {
	switch {
	case errors.Is(reason, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(reason, domain.ErrPlotNotFound),
		errors.Is(reason, domain.ErrItemNotFound),
		errors.Is(reason, domain.ErrDistrictNotFound):
		return http.StatusNotFound
	default:
		return http.StatusConflict
	}
}

// respondServiceError logs err and writes the mapped response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	logger.FromContext(r.Context()).Error(opName+" failed", "error", err, "status", status)
	respondError(w, status, msg)
}
