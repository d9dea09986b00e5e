package users

import "errors"

var (
	// ErrNotFound is returned when a user id or username does not resolve
	ErrNotFound = errors.New("user does not exist in database")

	// ErrNoAvatar is returned when removing an avatar that was never set
	ErrNoAvatar = errors.New("no avatar to remove")
)

// IsNotFound checks if error means the user could not be resolved
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
