package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Threddit/internal/core/posts"
)

// GetHandler handles single-post fetch requests
type GetHandler struct {
	service posts.Service
}

// NewGetHandler creates a new get handler
func NewGetHandler(service posts.Service) *GetHandler {
	return &GetHandler{
		service: service,
	}
}

// HandleGetComments handles GET /api/posts/{id}/comments
// Returns the post with its full comment tree.
func (h *GetHandler) HandleGetComments(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "id")
	if postID == "" {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "post id is required")
		return
	}

	result, err := h.service.GetPostWithComments(r.Context(), postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
