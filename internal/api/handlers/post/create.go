package post

import (
	"encoding/json"
	"net/http"

	"Threddit/internal/api/middleware"
	"Threddit/internal/core/posts"
)

// CreateHandler handles post creation requests
type CreateHandler struct {
	service posts.Service
}

// NewCreateHandler creates a new create handler
func NewCreateHandler(service posts.Service) *CreateHandler {
	return &CreateHandler{
		service: service,
	}
}

// HandleCreate handles POST /api/posts
// Creates a new post owned by the authenticated user.
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	// Limit request body size to prevent DoS attacks
	// 10MB covers the 6MB base64 image cap plus the rest of the payload
	r.Body = http.MaxBytesReader(w, r.Body, 10*1024*1024)

	var req posts.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeError(w, http.StatusRequestEntityTooLarge, "RequestTooLarge",
				"Request body too large (max 10MB)")
			return
		}
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	// Extract authenticated user id from request context (injected by auth middleware)
	userID := middleware.GetUserID(r)
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	if req.Subreddit == "" {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "subreddit is required")
		return
	}

	// The author always comes from the session, never the payload.
	req.AuthorID = userID

	created, err := h.service.CreatePost(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}
