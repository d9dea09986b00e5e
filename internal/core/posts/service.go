package posts

import (
	"context"
	"fmt"
	"log"
	"time"

	"Threddit/internal/core/blobs"
	"Threddit/internal/core/pagination"
	"Threddit/internal/core/subreddits"
	"Threddit/internal/core/users"
)

type postService struct {
	repo             Repository
	userService      users.Service
	subredditService subreddits.Service
	store            blobs.Store
}

// NewPostService creates a new post service. store may be nil in setups
// that never handle Image posts (e.g. unit tests of text-only paths).
func NewPostService(
	repo Repository,
	userService users.Service,
	subredditService subreddits.Service,
	store blobs.Store,
) Service {
	return &postService{
		repo:             repo,
		userService:      userService,
		subredditService: subredditService,
		store:            store,
	}
}

// GetPosts returns one page of all posts ordered by sortBy.
func (s *postService) GetPosts(ctx context.Context, page, limit int, sortBy string) (*PaginatedPosts, error) {
	total, err := s.repo.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count posts: %w", err)
	}

	pages := pagination.Paginate(page, limit, total)
	results, err := s.repo.List(ctx, sortBy, limit, pages.StartIndex)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return &PaginatedPosts{
		Previous: pages.Previous,
		Results:  results,
		Next:     pages.Next,
	}, nil
}

// GetSubscribedPosts returns a hot-ordered page of posts from the
// subreddits the user is subscribed to.
func (s *postService) GetSubscribedPosts(ctx context.Context, userID string, page, limit int) (*PaginatedPosts, error) {
	// Resolve the acting user first: an unknown identity is a 404, not an
	// empty feed.
	if _, err := s.userService.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	subIDs, err := s.subredditService.ListSubscribedIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve subscriptions: %w", err)
	}

	if len(subIDs) == 0 {
		return &PaginatedPosts{Results: []*Post{}}, nil
	}

	total, err := s.repo.CountBySubreddits(ctx, subIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to count subscribed posts: %w", err)
	}

	pages := pagination.Paginate(page, limit, total)
	results, err := s.repo.ListBySubreddits(ctx, subIDs, limit, pages.StartIndex)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribed posts: %w", err)
	}

	return &PaginatedPosts{
		Previous: pages.Previous,
		Results:  results,
		Next:     pages.Next,
	}, nil
}

// SearchPosts returns a hot-ordered page of posts matching query in title
// or text body, case-insensitively.
func (s *postService) SearchPosts(ctx context.Context, query string, page, limit int) (*PaginatedPosts, error) {
	total, err := s.repo.CountSearch(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count search results: %w", err)
	}

	pages := pagination.Paginate(page, limit, total)
	results, err := s.repo.Search(ctx, query, limit, pages.StartIndex)
	if err != nil {
		return nil, fmt.Errorf("failed to search posts: %w", err)
	}

	return &PaginatedPosts{
		Previous: pages.Previous,
		Results:  results,
		Next:     pages.Next,
	}, nil
}

// GetPostWithComments resolves a single post with its full comment tree.
func (s *postService) GetPostWithComments(ctx context.Context, id string) (*Post, error) {
	return s.repo.GetWithComments(ctx, id)
}

// GetAuthorPosts returns the author's posts newest-first.
func (s *postService) GetAuthorPosts(ctx context.Context, authorID string, page, limit int) (*PaginatedPosts, error) {
	total, err := s.repo.CountByAuthor(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to count author posts: %w", err)
	}

	pages := pagination.Paginate(page, limit, total)
	results, err := s.repo.ListByAuthor(ctx, authorID, limit, pages.StartIndex)
	if err != nil {
		return nil, fmt.Errorf("failed to list author posts: %w", err)
	}

	return &PaginatedPosts{
		Previous: pages.Previous,
		Results:  results,
		Next:     pages.Next,
	}, nil
}

// CreatePost creates a new post owned by the acting user.
// Flow:
// 1. Validate the submission shape against the post type
// 2. Resolve author and target subreddit (404 when either is missing)
// 3. Image posts: decode the data URL and upload the blob first — an
//    upload failure aborts before anything is persisted
// 4. Persist the post seeded with the author's upvote and pointsCount=1;
//    the repository bundles the post row, the seed upvote and the author's
//    postKarma increment into one transaction
// 5. Return the post with author/subreddit identities resolved
func (s *postService) CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error) {
	submission, err := ValidateSubmission(PostType(req.PostType), req.TextSubmission, req.LinkSubmission, req.ImageSubmission)
	if err != nil {
		return nil, err
	}

	if req.Title == "" {
		return nil, NewValidationError("title", "title is required")
	}

	author, err := s.userService.GetByID(ctx, req.AuthorID)
	if err != nil {
		return nil, err
	}

	subreddit, err := s.subredditService.GetByID(ctx, req.Subreddit)
	if err != nil {
		return nil, err
	}

	post := &Post{
		Title:       req.Title,
		PostType:    submission.Type,
		Author:      &AuthorRef{ID: author.ID, Username: author.Username},
		Subreddit:   &SubredditRef{ID: subreddit.ID, SubredditName: subreddit.SubredditName},
		UpvotedBy:   []string{author.ID},
		PointsCount: 1,
	}

	switch submission.Type {
	case PostTypeText:
		post.TextSubmission = &submission.Text
	case PostTypeLink:
		post.LinkSubmission = &submission.Link
	case PostTypeImage:
		ref, err := s.uploadImage(ctx, submission.ImageDataURL)
		if err != nil {
			return nil, err
		}
		post.ImageSubmission = ref
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	log.Printf("[POST-CREATE] Author: %s, Subreddit: %s, Type: %s, ID: %s",
		author.Username, subreddit.SubredditName, post.PostType, created.ID)

	return s.repo.GetByID(ctx, created.ID)
}

// UpdatePost edits a post's content. The post type is immutable, so only
// the submission field matching it is re-validated and replaced.
func (s *postService) UpdatePost(ctx context.Context, req UpdatePostRequest) (*Post, error) {
	post, err := s.repo.GetByID(ctx, req.PostID)
	if err != nil {
		return nil, err
	}

	user, err := s.userService.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	if post.Author == nil || post.Author.ID != user.ID {
		return nil, ErrNotAuthor
	}

	submission, err := ValidateSubmission(post.PostType, req.TextSubmission, req.LinkSubmission, req.ImageSubmission)
	if err != nil {
		return nil, err
	}

	switch post.PostType {
	case PostTypeText:
		post.TextSubmission = &submission.Text
	case PostTypeLink:
		post.LinkSubmission = &submission.Link
	case PostTypeImage:
		// The replaced blob is left in place; deleting it here would break
		// clients still holding the old link.
		ref, err := s.uploadImage(ctx, submission.ImageDataURL)
		if err != nil {
			return nil, err
		}
		post.ImageSubmission = ref
	}

	post.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	log.Printf("[POST-UPDATE] Author: %s, ID: %s", user.Username, post.ID)

	return s.repo.GetWithComments(ctx, post.ID)
}

// DeletePost removes a post and, best-effort, its image blob.
func (s *postService) DeletePost(ctx context.Context, postID, userID string) error {
	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	user, err := s.userService.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if post.Author == nil || post.Author.ID != user.ID {
		return ErrNotAuthor
	}

	// The owning subreddit must still resolve before we touch anything.
	if _, err := s.subredditService.GetByID(ctx, post.Subreddit.ID); err != nil {
		return err
	}

	// Blob deletion is deliberately non-fatal: an orphaned blob is cheaper
	// than a post that cannot be deleted.
	if post.ImageSubmission != nil && post.ImageSubmission.ImageID != "" && s.store != nil {
		if err := s.store.Delete(ctx, post.ImageSubmission.ImageID); err != nil {
			log.Printf("[POST-DELETE] Warning: failed to delete image blob %s: %v", post.ImageSubmission.ImageID, err)
		}
	}

	if err := s.repo.Delete(ctx, postID); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	log.Printf("[POST-DELETE] Author: %s, ID: %s", user.Username, postID)
	return nil
}

// uploadImage decodes an inbound data URL and uploads it under a fresh
// unique key. Store failures pass through unwrapped so handlers can
// surface the upstream message.
func (s *postService) uploadImage(ctx context.Context, dataURL string) (*ImageRef, error) {
	img, err := blobs.ParseImageDataURL(dataURL)
	if err != nil {
		return nil, NewValidationError("imageSubmission", err.Error())
	}

	if s.store == nil {
		return nil, fmt.Errorf("no blob store configured for image posts")
	}

	key := blobs.NewImageKey(img.Extension)
	ref, err := s.store.Upload(ctx, key, img.Data, img.MimeType)
	if err != nil {
		return nil, err
	}

	return &ImageRef{ImageLink: ref.Link, ImageID: ref.Key}, nil
}
