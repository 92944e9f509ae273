package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tarihce/tarihce-engine/pkg/apperrors"
)

// ErrorResponse writes a JSON error response and returns any encoding error.
func ErrorResponse(w http.ResponseWriter, statusCode int, errorCode, message string) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(map[string]any{
		"error":   errorCode,
		"message": message,
		"success": false,
	})
}

// WriteJSON writes a JSON response and returns any encoding error.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	if statusCode != http.StatusOK {
		w.WriteHeader(statusCode)
	}
	return json.NewEncoder(w).Encode(data)
}

// MapError writes the HTTP response for a service error. The error kind
// decides the status; raw backend errors never reach the response body.
func MapError(w http.ResponseWriter, err error) error {
	switch {
	case errors.Is(err, apperrors.ErrInvalidInput):
		return ErrorResponse(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, apperrors.ErrNotFound):
		return ErrorResponse(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, apperrors.ErrAlreadyExists):
		return ErrorResponse(w, http.StatusConflict, "already_exists", err.Error())
	case errors.Is(err, apperrors.ErrGenerationFailed):
		return ErrorResponse(w, http.StatusServiceUnavailable, "generation_unavailable",
			"Content generation is temporarily unavailable. Please try again later.")
	default:
		return ErrorResponse(w, http.StatusInternalServerError, "internal_error",
			"An internal error occurred. Please try again later.")
	}
}
