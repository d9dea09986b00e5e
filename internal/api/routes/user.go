package routes

import (
	"Threddit/internal/api/handlers/user"
	"Threddit/internal/api/middleware"
	"Threddit/internal/core/posts"
	"Threddit/internal/core/users"

	"github.com/go-chi/chi/v5"
)

// RegisterUserRoutes registers user profile and avatar endpoints on the router
func RegisterUserRoutes(r chi.Router, userService users.Service, postService posts.Service, auth *middleware.SessionAuthMiddleware) {
	getHandler := user.NewGetHandler(userService, postService)
	avatarHandler := user.NewAvatarHandler(userService)

	// Avatar routes must register before the {username} wildcard so
	// "avatar" never resolves as a username
	r.With(auth.RequireAuth).Post("/api/users/avatar", avatarHandler.HandleSetAvatar)
	r.With(auth.RequireAuth).Delete("/api/users/avatar", avatarHandler.HandleRemoveAvatar)

	// Public profile: user details plus a page of their posts
	r.Get("/api/users/{username}", getHandler.HandleGetProfile)
}
