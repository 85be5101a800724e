package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/OMD2Planner_Go/internal/domain"
	"github.com/osse101/OMD2Planner_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error      string `json:"error"`
	Suggestion string `json:"suggestion,omitempty"`
}

// bufferPool is a pool of bytes.Buffer to reduce allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 1024))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	buf.Reset()
	bufferPool.Put(buf)
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode before writing headers so an encoding failure can still be a 500
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

// respondServiceError logs err under logMsg and writes the mapped user-facing response
func respondServiceError(w http.ResponseWriter, r *http.Request, logMsg string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(logMsg, "status", status, "error", err)
	} else {
		log.Warn(logMsg, "status", status, "error", err)
	}
	respondError(w, status, msg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgUnavailableError   = "Session storage is temporarily unavailable. Please try again later."

	ErrMsgItemNotFoundError    = "Item not found"
	ErrMsgUpgradeNotFoundError = "Upgrade not found"
	ErrMsgSessionNotFoundError = "Session not found"
	ErrMsgInvalidSnapshotError = "The shared build could not be read"
	ErrMsgInvalidTabError      = "Invalid tab. Valid options: myitems, Trap, Weapon, Trinket"
	ErrMsgInvalidInputError    = "Invalid request. Please check your inputs."
	ErrMsgInvalidCatalogError  = "Catalog is invalid"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// Internal error text is never echoed for 5xx responses.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrUpgradeNotFound):
		return http.StatusNotFound, ErrMsgUpgradeNotFoundError
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound, ErrMsgSessionNotFoundError
	case errors.Is(err, domain.ErrInvalidSnapshot):
		return http.StatusBadRequest, ErrMsgInvalidSnapshotError
	case errors.Is(err, domain.ErrInvalidTab):
		return http.StatusBadRequest, ErrMsgInvalidTabError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, ErrMsgUnavailableError
	case errors.Is(err, domain.ErrInvalidCatalog):
		return http.StatusInternalServerError, ErrMsgInvalidCatalogError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
