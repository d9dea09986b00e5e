package post

import (
	"encoding/json"
	"log"
	"net/http"

	"Threddit/internal/core/blobs"
	"Threddit/internal/core/posts"
	"Threddit/internal/core/subreddits"
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

// handleServiceError maps service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case err == posts.ErrInvalidPostType:
		writeError(w, http.StatusForbidden, "InvalidPostType",
			"Valid post type must be provided.")

	case err == posts.ErrNotAuthor:
		writeError(w, http.StatusUnauthorized, "AccessDenied",
			"Access is denied.")

	case posts.IsValidationError(err):
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())

	case posts.IsNotFound(err):
		writeError(w, http.StatusNotFound, "PostNotFound",
			"Post does not exist in database.")

	case users.IsNotFound(err):
		writeError(w, http.StatusNotFound, "UserNotFound",
			"User does not exist in database.")

	case err == subreddits.ErrNotFound:
		writeError(w, http.StatusNotFound, "SubredditNotFound",
			"Subreddit does not exist in database.")

	// A blob store failure during create/update surfaces the upstream
	// message so the client can tell a storage outage from a bad payload.
	case blobs.IsStoreError(err):
		writeError(w, http.StatusUnauthorized, "ImageUploadFailed", err.Error())

	default:
		// Don't leak internal error details to clients
		log.Printf("Unexpected error in post handler: %v", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
	}
}
