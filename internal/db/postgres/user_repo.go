package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"Threddit/internal/core/users"
)

const userSelect = `
	SELECT u.id, u.username, u.post_karma, u.comment_karma,
	       u.avatar_exists, u.avatar_link, u.avatar_id,
	       u.created_at, u.updated_at,
	       ARRAY(SELECT ss.subreddit_id::text
	             FROM subreddit_subscriptions ss
	             WHERE ss.user_id = u.id)
	FROM users u`

type postgresUserRepo struct {
	db *sql.DB
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *sql.DB) users.UserRepository {
	return &postgresUserRepo{db: db}
}

// GetByID retrieves a user by their id.
func (r *postgresUserRepo) GetByID(ctx context.Context, id string) (*users.User, error) {
	return r.getOne(ctx, userSelect+` WHERE u.id = $1`, id)
}

// GetByUsername retrieves a user by username, case-insensitively. The
// stored casing is preserved in the result.
func (r *postgresUserRepo) GetByUsername(ctx context.Context, username string) (*users.User, error) {
	return r.getOne(ctx, userSelect+` WHERE LOWER(u.username) = LOWER($1)`, username)
}

// UpdateAvatar replaces the user's avatar record and returns the updated
// user.
func (r *postgresUserRepo) UpdateAvatar(ctx context.Context, id string, avatar users.Avatar) (*users.User, error) {
	var link, imageID sql.NullString
	if avatar.Exists {
		link = sql.NullString{String: avatar.ImageLink, Valid: true}
		imageID = sql.NullString{String: avatar.ImageID, Valid: true}
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE users
		 SET avatar_exists = $2, avatar_link = $3, avatar_id = $4, updated_at = NOW()
		 WHERE id = $1`,
		id, avatar.Exists, link, imageID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update avatar: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		return nil, users.ErrNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *postgresUserRepo) getOne(ctx context.Context, query string, arg interface{}) (*users.User, error) {
	var (
		user             users.User
		avatarLink       sql.NullString
		avatarID         sql.NullString
		subscribedSubIDs pq.StringArray
	)

	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.Username,
		&user.KarmaPoints.PostKarma, &user.KarmaPoints.CommentKarma,
		&user.Avatar.Exists, &avatarLink, &avatarID,
		&user.CreatedAt, &user.UpdatedAt,
		&subscribedSubIDs,
	)
	if err == sql.ErrNoRows {
		return nil, users.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user.Avatar.Exists {
		user.Avatar.ImageLink = avatarLink.String
		user.Avatar.ImageID = avatarID.String
	}
	user.SubscribedSubs = []string(subscribedSubIDs)

	return &user, nil
}
