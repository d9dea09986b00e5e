package user

import (
	"encoding/json"
	"net/http"

	"Threddit/internal/api/middleware"
	"Threddit/internal/core/users"
)

type setAvatarRequest struct {
	AvatarImage string `json:"avatarImage"`
}

type setAvatarResponse struct {
	Avatar *users.Avatar `json:"avatar"`
}

// AvatarHandler handles avatar upload and removal requests
type AvatarHandler struct {
	service users.Service
}

// NewAvatarHandler creates a new avatar handler
func NewAvatarHandler(service users.Service) *AvatarHandler {
	return &AvatarHandler{
		service: service,
	}
}

// HandleSetAvatar handles POST /api/users/avatar
// Uploads a base64 image payload as the authenticated user's avatar.
func (h *AvatarHandler) HandleSetAvatar(w http.ResponseWriter, r *http.Request) {
	// 10MB covers the 6MB base64 image cap plus the JSON envelope
	r.Body = http.MaxBytesReader(w, r.Body, 10*1024*1024)

	var req setAvatarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeError(w, http.StatusRequestEntityTooLarge, "RequestTooLarge",
				"Request body too large (max 10MB)")
			return
		}
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	userID := middleware.GetUserID(r)
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	if req.AvatarImage == "" {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "avatarImage is required")
		return
	}

	avatar, err := h.service.SetAvatar(r.Context(), userID, req.AvatarImage)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, setAvatarResponse{Avatar: avatar})
}

// HandleRemoveAvatar handles DELETE /api/users/avatar
// Deletes the authenticated user's avatar blob and clears the record.
func (h *AvatarHandler) HandleRemoveAvatar(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	if err := h.service.RemoveAvatar(r.Context(), userID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
