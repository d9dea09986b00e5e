package subreddit

import (
	"encoding/json"
	"log"
	"net/http"

	"Threddit/internal/core/subreddits"
)

// ListHandler handles subreddit listing requests
type ListHandler struct {
	service subreddits.Service
}

// NewListHandler creates a new list handler
func NewListHandler(service subreddits.Service) *ListHandler {
	return &ListHandler{
		service: service,
	}
}

// HandleGetAll handles GET /api/subreddits
// Returns every subreddit ordered by name.
func (h *ListHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	subs, err := h.service.GetAll(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, subs)
}

// writeJSON writes a JSON success response
func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
