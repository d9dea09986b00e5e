package posts

import "context"

// Repository defines the interface for post data persistence.
//
// List results resolve author username and subreddit name but never carry
// comments; GetWithComments resolves the full comment tree including
// comment and reply authors.
type Repository interface {
	// Create persists the post together with its seed upvote rows and the
	// author's karma increment in a single transaction.
	Create(ctx context.Context, post *Post) (*Post, error)

	GetByID(ctx context.Context, id string) (*Post, error)
	GetWithComments(ctx context.Context, id string) (*Post, error)

	// Update persists the post's content fields and updated_at stamp.
	Update(ctx context.Context, post *Post) error

	// Delete removes the post row; upvotes and comments cascade, and the
	// author/subreddit post lists shrink by relation.
	Delete(ctx context.Context, id string) error

	CountAll(ctx context.Context) (int, error)
	List(ctx context.Context, sortBy string, limit, offset int) ([]*Post, error)

	CountBySubreddits(ctx context.Context, subredditIDs []string) (int, error)
	// ListBySubreddits returns a hot-ordered page restricted to the given
	// subreddits.
	ListBySubreddits(ctx context.Context, subredditIDs []string, limit, offset int) ([]*Post, error)

	CountSearch(ctx context.Context, query string) (int, error)
	// Search returns a hot-ordered page of posts whose title or text body
	// contains query, case-insensitively.
	Search(ctx context.Context, query string, limit, offset int) ([]*Post, error)

	CountByAuthor(ctx context.Context, authorID string) (int, error)
	// ListByAuthor returns the author's posts newest-first.
	ListByAuthor(ctx context.Context, authorID string, limit, offset int) ([]*Post, error)
}

// Service defines the interface for post business logic
type Service interface {
	GetPosts(ctx context.Context, page, limit int, sortBy string) (*PaginatedPosts, error)
	GetSubscribedPosts(ctx context.Context, userID string, page, limit int) (*PaginatedPosts, error)
	SearchPosts(ctx context.Context, query string, page, limit int) (*PaginatedPosts, error)
	GetPostWithComments(ctx context.Context, id string) (*Post, error)
	GetAuthorPosts(ctx context.Context, authorID string, page, limit int) (*PaginatedPosts, error)

	CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error)
	UpdatePost(ctx context.Context, req UpdatePostRequest) (*Post, error)
	DeletePost(ctx context.Context, postID, userID string) error
}
