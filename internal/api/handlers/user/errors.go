package user

import (
	"encoding/json"
	"log"
	"net/http"

	"Threddit/internal/core/blobs"
	"Threddit/internal/core/users"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// writeError writes a JSON error response
func writeError(w http.ResponseWriter, statusCode int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(errorResponse{
		Error:   errorType,
		Message: message,
	}); err != nil {
		log.Printf("Failed to encode error response: %v", err)
	}
}

// writeJSON writes a JSON success response
func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// handleServiceError maps service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case users.IsNotFound(err):
		writeError(w, http.StatusNotFound, "UserNotFound",
			"User does not exist in database.")

	case err == users.ErrNoAvatar:
		writeError(w, http.StatusNotFound, "NoAvatar", err.Error())

	case blobs.IsImageError(err):
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())

	// Avatar blob failures surface the upstream message with a 500 so
	// storage outages are distinguishable from bad payloads.
	case blobs.IsStoreError(err):
		writeError(w, http.StatusInternalServerError, "AvatarUploadFailed", err.Error())

	default:
		// Don't leak internal error details to clients
		log.Printf("Unexpected error in user handler: %v", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
	}
}
