package blobs

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseImageDataURL(t *testing.T) {
	raw := []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a}
	encoded := base64.StdEncoding.EncodeToString(raw)

	t.Run("png prefix infers type and extension", func(t *testing.T) {
		img, err := ParseImageDataURL("data:image/png;base64," + encoded)
		require.NoError(t, err)

		assert.Equal(t, raw, img.Data)
		assert.Equal(t, "image/png", img.MimeType)
		assert.Equal(t, "png", img.Extension)
	})

	t.Run("jpg normalized to jpeg mime type", func(t *testing.T) {
		img, err := ParseImageDataURL("data:image/jpg;base64," + encoded)
		require.NoError(t, err)

		assert.Equal(t, "image/jpeg", img.MimeType)
		assert.Equal(t, "jpg", img.Extension)
	})

	t.Run("bare base64 falls back to jpeg", func(t *testing.T) {
		img, err := ParseImageDataURL(encoded)
		require.NoError(t, err)

		assert.Equal(t, raw, img.Data)
		assert.Equal(t, "image/jpeg", img.MimeType)
		assert.Equal(t, "jpeg", img.Extension)
	})

	t.Run("unrecognized data URL prefix still decodes", func(t *testing.T) {
		img, err := ParseImageDataURL("data:application/octet-stream;base64," + encoded)
		require.NoError(t, err)

		assert.Equal(t, raw, img.Data)
		assert.Equal(t, "image/jpeg", img.MimeType)
	})

	t.Run("empty payload rejected", func(t *testing.T) {
		_, err := ParseImageDataURL("")
		require.Error(t, err)
		assert.True(t, IsImageError(err))
	})

	t.Run("invalid base64 rejected", func(t *testing.T) {
		_, err := ParseImageDataURL("data:image/png;base64,not-base64!!!")
		assert.Error(t, err)
	})

	t.Run("oversized payload rejected", func(t *testing.T) {
		big := base64.StdEncoding.EncodeToString(make([]byte, MaxImageSize+1))
		_, err := ParseImageDataURL("data:image/png;base64," + big)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exceeds maximum")
	})
}

func TestNewImageKey(t *testing.T) {
	key := NewImageKey("png")

	assert.True(t, strings.HasSuffix(key, ".png"))
	assert.NotEqual(t, key, NewImageKey("png"), "keys must be unique")
}
