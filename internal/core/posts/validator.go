package posts

// ValidateSubmission enforces the "exactly one submission field matching
// the post type" invariant and returns the normalized field set to persist.
//
// postType must be one of Text, Link, Image (anything else is
// ErrInvalidPostType, which handlers surface as 403 to match the API
// contract). The field matching the type must be non-empty and the other
// two must be absent.
func ValidateSubmission(postType PostType, text, link, image string) (Submission, error) {
	if !postType.Valid() {
		return Submission{}, ErrInvalidPostType
	}

	switch postType {
	case PostTypeText:
		if text == "" {
			return Submission{}, NewValidationError("textSubmission", "text submission is required for a Text post")
		}
		if link != "" || image != "" {
			return Submission{}, NewValidationError("postType", "a Text post may only carry a text submission")
		}
		return Submission{Type: PostTypeText, Text: text}, nil

	case PostTypeLink:
		if link == "" {
			return Submission{}, NewValidationError("linkSubmission", "link submission is required for a Link post")
		}
		if text != "" || image != "" {
			return Submission{}, NewValidationError("postType", "a Link post may only carry a link submission")
		}
		return Submission{Type: PostTypeLink, Link: link}, nil

	default: // PostTypeImage
		if image == "" {
			return Submission{}, NewValidationError("imageSubmission", "image submission is required for an Image post")
		}
		if text != "" || link != "" {
			return Submission{}, NewValidationError("postType", "an Image post may only carry an image submission")
		}
		return Submission{Type: PostTypeImage, ImageDataURL: image}, nil
	}
}
