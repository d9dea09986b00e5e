package subreddits

import (
	"context"
	"strings"
)

type subredditService struct {
	repo Repository
}

// NewSubredditService creates a new subreddit service
func NewSubredditService(repo Repository) Service {
	return &subredditService{repo: repo}
}

func (s *subredditService) GetByID(ctx context.Context, id string) (*Subreddit, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *subredditService) GetAll(ctx context.Context) ([]*Subreddit, error) {
	return s.repo.GetAll(ctx)
}

func (s *subredditService) ListSubscribedIDs(ctx context.Context, userID string) ([]string, error) {
	return s.repo.ListSubscribedIDs(ctx, userID)
}

// ToggleSubscription flips the user's membership in the subreddit.
func (s *subredditService) ToggleSubscription(ctx context.Context, userID, subredditID string) (bool, error) {
	// Resolve first so a bad id surfaces as not-found, not a silent no-op.
	if _, err := s.repo.GetByID(ctx, subredditID); err != nil {
		return false, err
	}
	return s.repo.ToggleSubscription(ctx, userID, subredditID)
}
