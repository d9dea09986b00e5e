package subreddits

import "context"

// Repository defines the interface for subreddit data persistence
type Repository interface {
	GetByID(ctx context.Context, id string) (*Subreddit, error)
	GetAll(ctx context.Context) ([]*Subreddit, error)

	// ListSubscribedIDs returns the ids of all subreddits the user is
	// subscribed to. An empty slice means no subscriptions.
	ListSubscribedIDs(ctx context.Context, userID string) ([]string, error)

	// ToggleSubscription subscribes the user when no subscription exists
	// and unsubscribes otherwise. Returns the resulting state.
	ToggleSubscription(ctx context.Context, userID, subredditID string) (subscribed bool, err error)
}

// Service defines the interface for subreddit business logic
type Service interface {
	GetByID(ctx context.Context, id string) (*Subreddit, error)
	GetAll(ctx context.Context) ([]*Subreddit, error)
	ListSubscribedIDs(ctx context.Context, userID string) ([]string, error)
	ToggleSubscription(ctx context.Context, userID, subredditID string) (bool, error)
}
