package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"Threddit/internal/core/subreddits"
)

type postgresSubredditRepo struct {
	db *sql.DB
}

// NewSubredditRepository creates a new PostgreSQL subreddit repository
func NewSubredditRepository(db *sql.DB) subreddits.Repository {
	return &postgresSubredditRepo{db: db}
}

// GetByID retrieves a subreddit by its id.
func (r *postgresSubredditRepo) GetByID(ctx context.Context, id string) (*subreddits.Subreddit, error) {
	var sub subreddits.Subreddit

	err := r.db.QueryRowContext(ctx,
		`SELECT id, subreddit_name, created_at FROM subreddits WHERE id = $1`, id,
	).Scan(&sub.ID, &sub.SubredditName, &sub.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, subreddits.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get subreddit: %w", err)
	}

	return &sub, nil
}

// GetAll lists every subreddit by name.
func (r *postgresSubredditRepo) GetAll(ctx context.Context) ([]*subreddits.Subreddit, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, subreddit_name, created_at FROM subreddits ORDER BY subreddit_name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query subreddits: %w", err)
	}
	defer closeRows(rows)

	results := []*subreddits.Subreddit{}
	for rows.Next() {
		var sub subreddits.Subreddit
		if err := rows.Scan(&sub.ID, &sub.SubredditName, &sub.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan subreddit: %w", err)
		}
		results = append(results, &sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating subreddits: %w", err)
	}

	return results, nil
}

// ListSubscribedIDs returns the ids of every subreddit the user is
// subscribed to.
func (r *postgresSubredditRepo) ListSubscribedIDs(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT subreddit_id FROM subreddit_subscriptions WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query subscriptions: %w", err)
	}
	defer closeRows(rows)

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan subscription: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating subscriptions: %w", err)
	}

	return ids, nil
}

// ToggleSubscription flips the user's membership in a subreddit. The
// delete-then-insert pair runs in one transaction so concurrent toggles
// cannot double-subscribe.
func (r *postgresSubredditRepo) ToggleSubscription(ctx context.Context, userID, subredditID string) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			slog.Error("failed to rollback subscription toggle", slog.String("error", err.Error()))
		}
	}()

	result, err := tx.ExecContext(ctx,
		`DELETE FROM subreddit_subscriptions WHERE user_id = $1 AND subreddit_id = $2`,
		userID, subredditID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to remove subscription: %w", err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check rows affected: %w", err)
	}

	subscribed := false
	if removed == 0 {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO subreddit_subscriptions (user_id, subreddit_id) VALUES ($1, $2)`,
			userID, subredditID,
		); err != nil {
			return false, fmt.Errorf("failed to add subscription: %w", err)
		}
		subscribed = true
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit subscription toggle: %w", err)
	}

	return subscribed, nil
}
