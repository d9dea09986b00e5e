package subreddits

import "errors"

// ErrNotFound is returned when a subreddit id does not resolve
var ErrNotFound = errors.New("subreddit does not exist in database")

// IsNotFound checks if error means the subreddit could not be resolved
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
