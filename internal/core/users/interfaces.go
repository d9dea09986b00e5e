package users

import "context"

// UserRepository defines the interface for user data persistence
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*User, error)

	// GetByUsername performs a case-insensitive exact match on username.
	GetByUsername(ctx context.Context, username string) (*User, error)

	// UpdateAvatar replaces the user's avatar record and returns the
	// updated user. Returns ErrNotFound if the user does not exist.
	UpdateAvatar(ctx context.Context, id string, avatar Avatar) (*User, error)
}

// Service defines the interface for user business logic
type Service interface {
	// GetUser looks up a user by username, case-insensitively.
	GetUser(ctx context.Context, username string) (*User, error)

	// GetByID resolves the acting user's identity.
	GetByID(ctx context.Context, id string) (*User, error)

	// SetAvatar uploads a base64 image payload as the user's new avatar
	// and returns the stored avatar record.
	SetAvatar(ctx context.Context, userID, imageDataURL string) (*Avatar, error)

	// RemoveAvatar deletes the user's avatar blob and clears the record.
	// Returns ErrNoAvatar when there is nothing to remove.
	RemoveAvatar(ctx context.Context, userID string) error
}
