package user

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Threddit/internal/core/posts"
	"Threddit/internal/core/users"
)

// profileResponse pairs a user's details with a page of their posts.
type profileResponse struct {
	UserDetails *users.User           `json:"userDetails"`
	Posts       *posts.PaginatedPosts `json:"posts"`
}

// GetHandler handles user profile requests
type GetHandler struct {
	userService users.Service
	postService posts.Service
}

// NewGetHandler creates a new profile handler
func NewGetHandler(userService users.Service, postService posts.Service) *GetHandler {
	return &GetHandler{
		userService: userService,
		postService: postService,
	}
}

// HandleGetProfile handles GET /api/users/{username}
// Returns the user's details together with a newest-first page of their
// posts. The username match is case-insensitive.
func (h *GetHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	page, limit, ok := parsePageLimit(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "InvalidRequest",
			"page and limit must be positive integers")
		return
	}

	user, err := h.userService.GetUser(r.Context(), username)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	authorPosts, err := h.postService.GetAuthorPosts(r.Context(), user.ID, page, limit)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, profileResponse{
		UserDetails: user,
		Posts:       authorPosts,
	})
}

func parsePageLimit(r *http.Request) (page, limit int, ok bool) {
	page, ok = parsePositiveInt(r.URL.Query().Get("page"), 1)
	if !ok {
		return 0, 0, false
	}

	limit, ok = parsePositiveInt(r.URL.Query().Get("limit"), 25)
	if !ok {
		return 0, 0, false
	}

	return page, limit, true
}

func parsePositiveInt(raw string, fallback int) (int, bool) {
	if raw == "" {
		return fallback, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
