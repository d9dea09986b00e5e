package posts

import (
	"time"

	"Threddit/internal/core/pagination"
)

// PostType enumerates the three submission kinds. The type of a post is
// immutable after creation and determines which submission field is set.
type PostType string

const (
	PostTypeText  PostType = "Text"
	PostTypeLink  PostType = "Link"
	PostTypeImage PostType = "Image"
)

// Valid reports whether t is one of the known post types.
func (t PostType) Valid() bool {
	switch t {
	case PostTypeText, PostTypeLink, PostTypeImage:
		return true
	}
	return false
}

// ImageRef is the stored reference to an uploaded image submission.
type ImageRef struct {
	ImageLink string `json:"imageLink"`
	ImageID   string `json:"imageId"`
}

// AuthorRef is the resolved identity of a post's author.
type AuthorRef struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// SubredditRef is the resolved identity of a post's subreddit.
type SubredditRef struct {
	ID            string `json:"id"`
	SubredditName string `json:"subredditName"`
}

// Reply is a nested response to a comment.
type Reply struct {
	CreatedAt   time.Time  `json:"createdAt"`
	RepliedBy   *AuthorRef `json:"repliedBy"`
	ID          string     `json:"id"`
	ReplyBody   string     `json:"replyBody"`
	PointsCount int        `json:"pointsCount"`
}

// Comment is a top-level comment on a post with its replies.
type Comment struct {
	CreatedAt   time.Time  `json:"createdAt"`
	CommentedBy *AuthorRef `json:"commentedBy"`
	ID          string     `json:"id"`
	CommentBody string     `json:"commentBody"`
	Replies     []Reply    `json:"replies"`
	PointsCount int        `json:"pointsCount"`
}

// Post is a user-submitted item of type Text, Link or Image, owned by one
// author and one subreddit. Exactly one submission field matching PostType
// is populated. The ranking scores are maintained by the vote pipeline;
// this service only reads them as sort keys.
//
// Comments is nil on list results (bandwidth) and populated only by the
// single-post fetch.
type Post struct {
	CreatedAt         time.Time     `json:"createdAt"`
	UpdatedAt         time.Time     `json:"updatedAt"`
	TextSubmission    *string       `json:"textSubmission,omitempty"`
	LinkSubmission    *string       `json:"linkSubmission,omitempty"`
	ImageSubmission   *ImageRef     `json:"imageSubmission,omitempty"`
	Author            *AuthorRef    `json:"author"`
	Subreddit         *SubredditRef `json:"subreddit"`
	ID                string        `json:"id"`
	Title             string        `json:"title"`
	PostType          PostType      `json:"postType"`
	UpvotedBy         []string      `json:"upvotedBy"`
	Comments          []Comment     `json:"comments,omitempty"`
	PointsCount       int           `json:"pointsCount"`
	VoteRatio         float64       `json:"voteRatio"`
	HotAlgo           float64       `json:"hotAlgo"`
	ControversialAlgo float64       `json:"controversialAlgo"`
	CommentCount      int           `json:"commentCount"`
}

// Submission is the validated, normalized payload for a post's type.
// Only the field matching Type is set.
type Submission struct {
	Type         PostType
	Text         string
	Link         string
	ImageDataURL string
}

// CreatePostRequest is the input for creating a new post. AuthorID is set
// by the handler from the authenticated identity, never by the client.
type CreatePostRequest struct {
	Title           string `json:"title"`
	Subreddit       string `json:"subreddit"`
	PostType        string `json:"postType"`
	TextSubmission  string `json:"textSubmission"`
	LinkSubmission  string `json:"linkSubmission"`
	ImageSubmission string `json:"imageSubmission"`
	AuthorID        string `json:"-"`
}

// UpdatePostRequest is the input for editing a post's content. The post's
// type cannot change, so only the field matching it is consulted.
type UpdatePostRequest struct {
	TextSubmission  string `json:"textSubmission"`
	LinkSubmission  string `json:"linkSubmission"`
	ImageSubmission string `json:"imageSubmission"`
	PostID          string `json:"-"`
	UserID          string `json:"-"`
}

// PaginatedPosts is the page envelope returned by every list operation.
type PaginatedPosts struct {
	Previous *pagination.PageRef `json:"previous"`
	Next     *pagination.PageRef `json:"next"`
	Results  []*Post             `json:"results"`
}
