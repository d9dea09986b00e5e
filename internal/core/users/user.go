package users

import "time"

// Avatar is the optional blob reference for a user's profile image.
// When Exists is false the link and id fields are empty.
type Avatar struct {
	Exists    bool   `json:"exists"`
	ImageLink string `json:"imageLink,omitempty"`
	ImageID   string `json:"imageId,omitempty"`
}

// Karma holds the per-user contribution counters.
type Karma struct {
	PostKarma    int `json:"postKarma"`
	CommentKarma int `json:"commentKarma"`
}

// User represents a forum user. Usernames are unique case-insensitively;
// the stored casing is preserved for display.
type User struct {
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	KarmaPoints    Karma     `json:"karmaPoints"`
	Avatar         Avatar    `json:"avatar"`
	SubscribedSubs []string  `json:"subscribedSubs,omitempty"`
}
