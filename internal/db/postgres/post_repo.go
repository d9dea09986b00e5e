package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lib/pq"

	"Threddit/internal/core/posts"
)

// postSelect is the shared projection for post reads. Author and
// subreddit identities are resolved by join; the upvoter set and comment
// count come from correlated subqueries so list reads stay a single
// round trip.
const postSelect = `
	SELECT p.id, p.title, p.post_type, p.text_submission, p.link_submission,
	       p.image_link, p.image_id, p.points_count, p.vote_ratio,
	       p.hot_algo, p.controversial_algo, p.created_at, p.updated_at,
	       u.id, u.username, s.id, s.subreddit_name,
	       ARRAY(SELECT pu.user_id::text FROM post_upvotes pu WHERE pu.post_id = p.id),
	       (SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id)
	FROM posts p
	JOIN users u ON u.id = p.author_id
	JOIN subreddits s ON s.id = p.subreddit_id`

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

// Create inserts the post, its seed upvotes and the author's karma
// increment in a single transaction.
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) (*posts.Post, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			slog.Error("failed to rollback post create", slog.String("error", err.Error()))
		}
	}()

	var imageLink, imageID sql.NullString
	if post.ImageSubmission != nil {
		imageLink = sql.NullString{String: post.ImageSubmission.ImageLink, Valid: true}
		imageID = sql.NullString{String: post.ImageSubmission.ImageID, Valid: true}
	}

	query := `
		INSERT INTO posts (title, author_id, subreddit_id, post_type,
		                   text_submission, link_submission, image_link, image_id,
		                   points_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`

	err = tx.QueryRowContext(ctx, query,
		post.Title, post.Author.ID, post.Subreddit.ID, string(post.PostType),
		nullStrPtr(post.TextSubmission), nullStrPtr(post.LinkSubmission), imageLink, imageID,
		post.PointsCount,
	).Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert post: %w", err)
	}

	for _, userID := range post.UpvotedBy {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO post_upvotes (post_id, user_id) VALUES ($1, $2)`,
			post.ID, userID,
		); err != nil {
			return nil, fmt.Errorf("failed to insert seed upvote: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE users SET post_karma = post_karma + 1, updated_at = NOW() WHERE id = $1`,
		post.Author.ID,
	); err != nil {
		return nil, fmt.Errorf("failed to increment post karma: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit post create: %w", err)
	}

	return post, nil
}

// GetByID retrieves a post with author and subreddit resolved, no comments.
func (r *postgresPostRepo) GetByID(ctx context.Context, id string) (*posts.Post, error) {
	row := r.db.QueryRowContext(ctx, postSelect+` WHERE p.id = $1`, id)

	post, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	return post, nil
}

// GetWithComments retrieves a post with its full comment tree, resolving
// comment and reply authors.
func (r *postgresPostRepo) GetWithComments(ctx context.Context, id string) (*posts.Post, error) {
	post, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	comments, err := r.loadComments(ctx, id)
	if err != nil {
		return nil, err
	}
	post.Comments = comments
	post.CommentCount = len(comments)

	return post, nil
}

func (r *postgresPostRepo) loadComments(ctx context.Context, postID string) ([]posts.Comment, error) {
	query := `
		SELECT c.id, c.body, c.points_count, c.created_at, cu.id, cu.username
		FROM comments c
		JOIN users cu ON cu.id = c.commented_by
		WHERE c.post_id = $1
		ORDER BY c.created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer closeRows(rows)

	comments := []posts.Comment{}
	commentIDs := []string{}
	index := map[string]int{}

	for rows.Next() {
		var c posts.Comment
		var author posts.AuthorRef
		if err := rows.Scan(&c.ID, &c.CommentBody, &c.PointsCount, &c.CreatedAt, &author.ID, &author.Username); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		c.CommentedBy = &author
		c.Replies = []posts.Reply{}
		index[c.ID] = len(comments)
		comments = append(comments, c)
		commentIDs = append(commentIDs, c.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}

	if len(commentIDs) == 0 {
		return comments, nil
	}

	replyQuery := `
		SELECT r.id, r.comment_id, r.body, r.points_count, r.created_at, ru.id, ru.username
		FROM comment_replies r
		JOIN users ru ON ru.id = r.replied_by
		WHERE r.comment_id = ANY($1)
		ORDER BY r.created_at ASC`

	replyRows, err := r.db.QueryContext(ctx, replyQuery, pq.Array(commentIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to query replies: %w", err)
	}
	defer closeRows(replyRows)

	for replyRows.Next() {
		var reply posts.Reply
		var commentID string
		var author posts.AuthorRef
		if err := replyRows.Scan(&reply.ID, &commentID, &reply.ReplyBody, &reply.PointsCount, &reply.CreatedAt, &author.ID, &author.Username); err != nil {
			return nil, fmt.Errorf("failed to scan reply: %w", err)
		}
		reply.RepliedBy = &author
		if i, ok := index[commentID]; ok {
			comments[i].Replies = append(comments[i].Replies, reply)
		}
	}
	if err := replyRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating replies: %w", err)
	}

	return comments, nil
}

// Update persists the post's content fields and updated_at stamp.
func (r *postgresPostRepo) Update(ctx context.Context, post *posts.Post) error {
	var imageLink, imageID sql.NullString
	if post.ImageSubmission != nil {
		imageLink = sql.NullString{String: post.ImageSubmission.ImageLink, Valid: true}
		imageID = sql.NullString{String: post.ImageSubmission.ImageID, Valid: true}
	}

	query := `
		UPDATE posts
		SET text_submission = $2, link_submission = $3,
		    image_link = $4, image_id = $5, updated_at = $6
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		post.ID, nullStrPtr(post.TextSubmission), nullStrPtr(post.LinkSubmission),
		imageLink, imageID, post.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		return posts.ErrNotFound
	}

	return nil
}

// Delete removes the post row. Upvotes and comments cascade via foreign
// keys, which also removes the post from the author's and subreddit's
// post lists (both are relations, not arrays).
func (r *postgresPostRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		return posts.ErrNotFound
	}

	return nil
}

// CountAll returns the total number of posts.
func (r *postgresPostRepo) CountAll(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}
	return count, nil
}

// List returns one page of posts ordered by the sortBy token. The ORDER BY
// clause comes from a whitelist map; unknown tokens mean natural order.
func (r *postgresPostRepo) List(ctx context.Context, sortBy string, limit, offset int) ([]*posts.Post, error) {
	query := postSelect
	if clause := posts.SortClause(sortBy); clause != "" {
		query += " ORDER BY " + clause
	}
	query += ` LIMIT $1 OFFSET $2`

	return r.queryPosts(ctx, query, limit, offset)
}

// CountBySubreddits counts posts across the given subreddit set.
func (r *postgresPostRepo) CountBySubreddits(ctx context.Context, subredditIDs []string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM posts WHERE subreddit_id = ANY($1)`,
		pq.Array(subredditIDs),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count subscribed posts: %w", err)
	}
	return count, nil
}

// ListBySubreddits returns a hot-ordered page restricted to the given
// subreddits.
func (r *postgresPostRepo) ListBySubreddits(ctx context.Context, subredditIDs []string, limit, offset int) ([]*posts.Post, error) {
	query := postSelect + `
	WHERE p.subreddit_id = ANY($1)
	ORDER BY p.hot_algo DESC
	LIMIT $2 OFFSET $3`

	return r.queryPosts(ctx, query, pq.Array(subredditIDs), limit, offset)
}

// CountSearch counts posts matching the search query.
func (r *postgresPostRepo) CountSearch(ctx context.Context, query string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM posts p
		 WHERE p.title ILIKE '%' || $1 || '%' OR p.text_submission ILIKE '%' || $1 || '%'`,
		escapeLike(query),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count search results: %w", err)
	}
	return count, nil
}

// Search returns a hot-ordered page of posts whose title or text body
// contains the query, case-insensitively.
func (r *postgresPostRepo) Search(ctx context.Context, query string, limit, offset int) ([]*posts.Post, error) {
	sqlQuery := postSelect + `
	WHERE p.title ILIKE '%' || $1 || '%' OR p.text_submission ILIKE '%' || $1 || '%'
	ORDER BY p.hot_algo DESC
	LIMIT $2 OFFSET $3`

	return r.queryPosts(ctx, sqlQuery, escapeLike(query), limit, offset)
}

// CountByAuthor counts the author's posts.
func (r *postgresPostRepo) CountByAuthor(ctx context.Context, authorID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM posts WHERE author_id = $1`, authorID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count author posts: %w", err)
	}
	return count, nil
}

// ListByAuthor returns the author's posts newest-first.
func (r *postgresPostRepo) ListByAuthor(ctx context.Context, authorID string, limit, offset int) ([]*posts.Post, error) {
	query := postSelect + `
	WHERE p.author_id = $1
	ORDER BY p.created_at DESC
	LIMIT $2 OFFSET $3`

	return r.queryPosts(ctx, query, authorID, limit, offset)
}

func (r *postgresPostRepo) queryPosts(ctx context.Context, query string, args ...interface{}) ([]*posts.Post, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer closeRows(rows)

	results := []*posts.Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}
		results = append(results, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating post rows: %w", err)
	}

	return results, nil
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanPost scans one postSelect row into a Post.
func scanPost(row rowScanner) (*posts.Post, error) {
	var (
		post               posts.Post
		author             posts.AuthorRef
		subreddit          posts.SubredditRef
		textSub, linkSub   sql.NullString
		imageLink, imageID sql.NullString
		upvoters           pq.StringArray
	)

	err := row.Scan(
		&post.ID, &post.Title, &post.PostType, &textSub, &linkSub,
		&imageLink, &imageID, &post.PointsCount, &post.VoteRatio,
		&post.HotAlgo, &post.ControversialAlgo, &post.CreatedAt, &post.UpdatedAt,
		&author.ID, &author.Username, &subreddit.ID, &subreddit.SubredditName,
		&upvoters, &post.CommentCount,
	)
	if err != nil {
		return nil, err
	}

	post.Author = &author
	post.Subreddit = &subreddit
	post.UpvotedBy = []string(upvoters)

	if textSub.Valid {
		post.TextSubmission = &textSub.String
	}
	if linkSub.Valid {
		post.LinkSubmission = &linkSub.String
	}
	if imageLink.Valid || imageID.Valid {
		post.ImageSubmission = &posts.ImageRef{
			ImageLink: imageLink.String,
			ImageID:   imageID.String,
		}
	}

	return &post, nil
}

// escapeLike escapes LIKE wildcards in user input so a search for "100%"
// matches the literal string instead of everything.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

// nullStrPtr converts *string to sql.NullString.
func nullStrPtr(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func closeRows(rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		slog.Warn("failed to close rows", slog.String("error", err.Error()))
	}
}
