package posts

import (
	"errors"
	"fmt"
)

// Sentinel errors for common post operations
var (
	// ErrNotFound is returned when a post id does not resolve
	ErrNotFound = errors.New("post does not exist in database")

	// ErrNotAuthor is returned when the acting user is not the post's author
	ErrNotAuthor = errors.New("access is denied")

	// ErrInvalidPostType is returned for an unrecognized postType value
	ErrInvalidPostType = errors.New("invalid post type")
)

// ValidationError represents a submission validation error with field context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error (%s): %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if error is a validation error
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}

// IsNotFound checks if error means the post could not be resolved
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
