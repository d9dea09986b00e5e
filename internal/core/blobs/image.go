package blobs

import (
	"encoding/base64"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// MaxImageSize is the largest accepted decoded image payload (6MB).
const MaxImageSize = 6291456

// dataURLRegex matches the prefix of a base64 image data URL, capturing
// the MIME type and the extension, e.g. "data:image/png;base64,".
var dataURLRegex = regexp.MustCompile(`^data:(image/([a-zA-Z0-9.+-]+));base64,`)

// ImageError reports an image payload the caller sent that cannot be
// decoded or exceeds limits. Distinct from StoreError, which reports
// upstream storage failures.
type ImageError struct {
	Message string
}

func (e *ImageError) Error() string {
	return e.Message
}

// IsImageError checks if an error is an ImageError
func IsImageError(err error) bool {
	var imgErr *ImageError
	return errors.As(err, &imgErr)
}

// Image is a decoded inbound image submission.
type Image struct {
	Data      []byte
	MimeType  string
	Extension string
}

// ParseImageDataURL decodes a base64 image data URL into raw bytes plus
// the MIME type and file extension inferred from the prefix. Payloads
// without a parseable prefix fall back to image/jpeg, matching what most
// clients actually send.
func ParseImageDataURL(dataURL string) (*Image, error) {
	if dataURL == "" {
		return nil, &ImageError{Message: "image payload is empty"}
	}

	mimeType := "image/jpeg"
	extension := "jpeg"
	encoded := dataURL

	if matches := dataURLRegex.FindStringSubmatch(dataURL); matches != nil {
		mimeType = normalizeMimeType(matches[1])
		extension = matches[2]
		encoded = dataURL[len(matches[0]):]
	} else if idx := strings.Index(dataURL, ";base64,"); idx >= 0 {
		// Unrecognized data URL prefix: keep the jpeg fallback but still
		// strip the prefix so the payload decodes.
		encoded = dataURL[idx+len(";base64,"):]
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, &ImageError{Message: "failed to decode base64 image payload: " + err.Error()}
	}

	if len(data) == 0 {
		return nil, &ImageError{Message: "image payload is empty"}
	}
	if len(data) > MaxImageSize {
		return nil, &ImageError{Message: fmt.Sprintf("image size %d bytes exceeds maximum of %d bytes (6MB)", len(data), MaxImageSize)}
	}

	return &Image{
		Data:      data,
		MimeType:  mimeType,
		Extension: extension,
	}, nil
}

// NewImageKey generates a globally unique blob key with the given file
// extension, e.g. "3f1a...-b2c.png".
func NewImageKey(extension string) string {
	return uuid.NewString() + "." + extension
}

// normalizeMimeType converts non-standard MIME types to their standard
// equivalents. Common case: clients sending image/jpg instead of image/jpeg.
func normalizeMimeType(mimeType string) string {
	switch mimeType {
	case "image/jpg":
		return "image/jpeg"
	default:
		return mimeType
	}
}
