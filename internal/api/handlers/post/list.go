package post

import (
	"encoding/json"
	"log"
	"net/http"

	"Threddit/internal/api/middleware"
	"Threddit/internal/core/posts"
)

// ListHandler handles paginated post listing requests
type ListHandler struct {
	service posts.Service
}

// NewListHandler creates a new list handler
func NewListHandler(service posts.Service) *ListHandler {
	return &ListHandler{
		service: service,
	}
}

// HandleGetAll handles GET /api/posts
// Returns one page of all posts, ordered by the sortby query parameter.
func (h *ListHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	page, limit, ok := parsePageLimit(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "InvalidRequest",
			"page and limit must be positive integers")
		return
	}

	sortBy := r.URL.Query().Get("sortby")

	result, err := h.service.GetPosts(r.Context(), page, limit, sortBy)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// HandleGetSubscribed handles GET /api/posts/subscribed
// Returns a hot-ordered page of posts from the authenticated user's
// subscribed subreddits.
func (h *ListHandler) HandleGetSubscribed(w http.ResponseWriter, r *http.Request) {
	page, limit, ok := parsePageLimit(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "InvalidRequest",
			"page and limit must be positive integers")
		return
	}

	userID := middleware.GetUserID(r)
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	result, err := h.service.GetSubscribedPosts(r.Context(), userID, page, limit)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// HandleSearch handles GET /api/posts/search
// Returns a hot-ordered page of posts matching the query in title or text
// body, case-insensitively.
func (h *ListHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "query is required")
		return
	}

	page, limit, ok := parsePageLimit(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "InvalidRequest",
			"page and limit must be positive integers")
		return
	}

	result, err := h.service.SearchPosts(r.Context(), query, page, limit)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// writeJSON writes a JSON success response
func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// Log encoding errors but don't return error response (headers already sent)
		log.Printf("Failed to encode response: %v", err)
	}
}
