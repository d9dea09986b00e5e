package subreddit

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Threddit/internal/api/middleware"
	"Threddit/internal/core/subreddits"
)

type subscribeResponse struct {
	SubredditID string `json:"subredditId"`
	Subscribed  bool   `json:"subscribed"`
}

// SubscribeHandler handles subscription toggle requests
type SubscribeHandler struct {
	service subreddits.Service
}

// NewSubscribeHandler creates a new subscribe handler
func NewSubscribeHandler(service subreddits.Service) *SubscribeHandler {
	return &SubscribeHandler{
		service: service,
	}
}

// HandleToggle handles POST /api/subreddits/subscribe/{id}
// Subscribes the authenticated user when no subscription exists and
// unsubscribes otherwise.
func (h *SubscribeHandler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	subredditID := chi.URLParam(r, "id")
	if subredditID == "" {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "subreddit id is required")
		return
	}

	subscribed, err := h.service.ToggleSubscription(r.Context(), userID, subredditID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, subscribeResponse{
		SubredditID: subredditID,
		Subscribed:  subscribed,
	})
}
