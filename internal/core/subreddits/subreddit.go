package subreddits

import "time"

// Subreddit is a named community owning a collection of posts.
type Subreddit struct {
	CreatedAt     time.Time `json:"createdAt"`
	ID            string    `json:"id"`
	SubredditName string    `json:"subredditName"`
}
