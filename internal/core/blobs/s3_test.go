package blobs

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Threddit/internal/monitoring"
)

// fakeS3 implements s3API without touching the network.
type fakeS3 struct {
	putErr    error
	deleteErr error
	putKeys   []string
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	f.putKeys = append(f.putKeys, *params.Key)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3StoreUpload(t *testing.T) {
	t.Run("success links the bucket and counts the upload", func(t *testing.T) {
		fake := &fakeS3{}
		store := &s3Store{client: fake, bucket: "images", region: "us-east-1"}

		before := testutil.ToFloat64(monitoring.BlobUploads.WithLabelValues("success"))

		ref, err := store.Upload(context.Background(), "key.png", []byte{1, 2, 3}, "image/png")
		require.NoError(t, err)

		assert.Equal(t, "https://images.s3.us-east-1.amazonaws.com/key.png", ref.Link)
		assert.Equal(t, "key.png", ref.Key)
		assert.Equal(t, []string{"key.png"}, fake.putKeys)
		assert.Equal(t, before+1, testutil.ToFloat64(monitoring.BlobUploads.WithLabelValues("success")))
	})

	t.Run("put failure wraps and counts an error", func(t *testing.T) {
		fake := &fakeS3{putErr: errors.New("bucket unavailable")}
		store := &s3Store{client: fake, bucket: "images", region: "us-east-1"}

		before := testutil.ToFloat64(monitoring.BlobUploads.WithLabelValues("error"))

		_, err := store.Upload(context.Background(), "key.png", []byte{1, 2, 3}, "image/png")

		require.Error(t, err)
		assert.True(t, IsStoreError(err))
		assert.Equal(t, before+1, testutil.ToFloat64(monitoring.BlobUploads.WithLabelValues("error")))
	})

	t.Run("empty key rejected before the store is touched", func(t *testing.T) {
		fake := &fakeS3{}
		store := &s3Store{client: fake, bucket: "images", region: "us-east-1"}

		_, err := store.Upload(context.Background(), "", []byte{1}, "image/png")

		require.Error(t, err)
		assert.Empty(t, fake.putKeys)
	})
}

func TestS3StoreDelete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		store := &s3Store{client: &fakeS3{}, bucket: "images", region: "us-east-1"}
		assert.NoError(t, store.Delete(context.Background(), "key.png"))
	})

	t.Run("failure wrapped as store error", func(t *testing.T) {
		store := &s3Store{client: &fakeS3{deleteErr: errors.New("gone")}, bucket: "images", region: "us-east-1"}

		err := store.Delete(context.Background(), "key.png")

		require.Error(t, err)
		assert.True(t, IsStoreError(err))
	})
}
