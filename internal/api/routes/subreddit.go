package routes

import (
	"Threddit/internal/api/handlers/subreddit"
	"Threddit/internal/api/middleware"
	"Threddit/internal/core/subreddits"

	"github.com/go-chi/chi/v5"
)

// RegisterSubredditRoutes registers subreddit endpoints on the router
func RegisterSubredditRoutes(r chi.Router, service subreddits.Service, auth *middleware.SessionAuthMiddleware) {
	listHandler := subreddit.NewListHandler(service)
	subscribeHandler := subreddit.NewSubscribeHandler(service)

	r.Get("/api/subreddits", listHandler.HandleGetAll)

	r.With(auth.RequireAuth).Post("/api/subreddits/subscribe/{id}", subscribeHandler.HandleToggle)
}
