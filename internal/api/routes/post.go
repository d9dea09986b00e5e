package routes

import (
	"Threddit/internal/api/handlers/post"
	"Threddit/internal/api/middleware"
	"Threddit/internal/core/posts"

	"github.com/go-chi/chi/v5"
)

// RegisterPostRoutes registers post endpoints on the router
func RegisterPostRoutes(r chi.Router, service posts.Service, auth *middleware.SessionAuthMiddleware) {
	// Initialize handlers
	listHandler := post.NewListHandler(service)
	getHandler := post.NewGetHandler(service)
	createHandler := post.NewCreateHandler(service)
	updateHandler := post.NewUpdateHandler(service)
	deleteHandler := post.NewDeleteHandler(service)

	// Query endpoints (GET) - public
	r.Get("/api/posts", listHandler.HandleGetAll)
	r.Get("/api/posts/search", listHandler.HandleSearch)
	r.Get("/api/posts/{id}/comments", getHandler.HandleGetComments)

	// The subscribed feed needs an identity to resolve subscriptions
	r.With(auth.RequireAuth).Get("/api/posts/subscribed", listHandler.HandleGetSubscribed)

	// Mutation endpoints - require authentication; only authors can edit
	// or delete their own posts
	r.With(auth.RequireAuth).Post("/api/posts", createHandler.HandleCreate)
	r.With(auth.RequireAuth).Patch("/api/posts/{id}", updateHandler.HandleUpdate)
	r.With(auth.RequireAuth).Delete("/api/posts/{id}", deleteHandler.HandleDelete)
}
