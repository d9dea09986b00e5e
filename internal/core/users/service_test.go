package users

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"Threddit/internal/core/blobs"
)

// MockUserRepository is a mock implementation of UserRepository for testing
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserRepository) UpdateAvatar(ctx context.Context, id string, avatar Avatar) (*User, error) {
	args := m.Called(ctx, id, avatar)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

// MockStore is a mock implementation of blobs.Store for testing
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Upload(ctx context.Context, key string, data []byte, contentType string) (*blobs.BlobRef, error) {
	args := m.Called(ctx, key, data, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*blobs.BlobRef), args.Error(1)
}

func (m *MockStore) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func avatarPayload(t *testing.T) string {
	t.Helper()
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte{0x89, 0x50, 0x4e, 0x47})
}

func TestSetAvatar(t *testing.T) {
	t.Run("uploads as jpeg and persists the record", func(t *testing.T) {
		repo := new(MockUserRepository)
		store := new(MockStore)
		service := NewUserService(repo, store)

		repo.On("GetByID", mock.Anything, "user-1").Return(&User{ID: "user-1", Username: "alice"}, nil)

		store.On("Upload", mock.Anything,
			mock.MatchedBy(func(key string) bool { return strings.HasSuffix(key, ".jpg") }),
			mock.Anything, "image/jpeg",
		).Return(&blobs.BlobRef{Link: "https://bucket/key.jpg", Key: "key.jpg"}, nil)

		want := Avatar{Exists: true, ImageLink: "https://bucket/key.jpg", ImageID: "key.jpg"}
		repo.On("UpdateAvatar", mock.Anything, "user-1", want).
			Return(&User{ID: "user-1", Avatar: want}, nil)

		avatar, err := service.SetAvatar(context.Background(), "user-1", avatarPayload(t))
		require.NoError(t, err)

		assert.True(t, avatar.Exists)
		assert.Equal(t, "https://bucket/key.jpg", avatar.ImageLink)
		repo.AssertExpectations(t)
	})

	t.Run("unknown user", func(t *testing.T) {
		repo := new(MockUserRepository)
		store := new(MockStore)
		service := NewUserService(repo, store)

		repo.On("GetByID", mock.Anything, "ghost").Return(nil, ErrNotFound)

		_, err := service.SetAvatar(context.Background(), "ghost", avatarPayload(t))

		assert.True(t, IsNotFound(err))
		store.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("invalid payload never reaches the store", func(t *testing.T) {
		repo := new(MockUserRepository)
		store := new(MockStore)
		service := NewUserService(repo, store)

		repo.On("GetByID", mock.Anything, "user-1").Return(&User{ID: "user-1"}, nil)

		_, err := service.SetAvatar(context.Background(), "user-1", "data:image/png;base64,???")

		require.Error(t, err)
		assert.True(t, blobs.IsImageError(err))
		store.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("no store configured fails cleanly", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := NewUserService(repo, nil)

		repo.On("GetByID", mock.Anything, "user-1").Return(&User{ID: "user-1"}, nil)

		_, err := service.SetAvatar(context.Background(), "user-1", avatarPayload(t))

		require.Error(t, err)
		repo.AssertNotCalled(t, "UpdateAvatar", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("upload failure leaves the record untouched", func(t *testing.T) {
		repo := new(MockUserRepository)
		store := new(MockStore)
		service := NewUserService(repo, store)

		repo.On("GetByID", mock.Anything, "user-1").Return(&User{ID: "user-1"}, nil)
		store.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, &blobs.StoreError{Op: "upload", Err: errors.New("bucket unavailable")})

		_, err := service.SetAvatar(context.Background(), "user-1", avatarPayload(t))

		require.Error(t, err)
		assert.True(t, blobs.IsStoreError(err))
		repo.AssertNotCalled(t, "UpdateAvatar", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestRemoveAvatar(t *testing.T) {
	withAvatar := func() *User {
		return &User{
			ID: "user-1",
			Avatar: Avatar{
				Exists:    true,
				ImageLink: "https://bucket/key.jpg",
				ImageID:   "key.jpg",
			},
		}
	}

	t.Run("deletes the blob then clears the record", func(t *testing.T) {
		repo := new(MockUserRepository)
		store := new(MockStore)
		service := NewUserService(repo, store)

		repo.On("GetByID", mock.Anything, "user-1").Return(withAvatar(), nil)
		store.On("Delete", mock.Anything, "key.jpg").Return(nil)
		repo.On("UpdateAvatar", mock.Anything, "user-1", Avatar{Exists: false}).
			Return(&User{ID: "user-1"}, nil)

		err := service.RemoveAvatar(context.Background(), "user-1")

		require.NoError(t, err)
		repo.AssertExpectations(t)
		store.AssertExpectations(t)
	})

	t.Run("nothing to remove", func(t *testing.T) {
		repo := new(MockUserRepository)
		store := new(MockStore)
		service := NewUserService(repo, store)

		repo.On("GetByID", mock.Anything, "user-1").Return(&User{ID: "user-1"}, nil)

		err := service.RemoveAvatar(context.Background(), "user-1")

		assert.Equal(t, ErrNoAvatar, err)
		store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("blob delete failure keeps the record", func(t *testing.T) {
		repo := new(MockUserRepository)
		store := new(MockStore)
		service := NewUserService(repo, store)

		repo.On("GetByID", mock.Anything, "user-1").Return(withAvatar(), nil)
		store.On("Delete", mock.Anything, "key.jpg").
			Return(&blobs.StoreError{Op: "delete", Err: errors.New("unavailable")})

		err := service.RemoveAvatar(context.Background(), "user-1")

		require.Error(t, err)
		repo.AssertNotCalled(t, "UpdateAvatar", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestGetUser(t *testing.T) {
	t.Run("blank username is not found", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := NewUserService(repo, nil)

		_, err := service.GetUser(context.Background(), "   ")

		assert.True(t, IsNotFound(err))
		repo.AssertNotCalled(t, "GetByUsername", mock.Anything, mock.Anything)
	})

	t.Run("delegates trimmed lookup", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := NewUserService(repo, nil)

		repo.On("GetByUsername", mock.Anything, "Alice").
			Return(&User{ID: "user-1", Username: "Alice"}, nil)

		user, err := service.GetUser(context.Background(), " Alice ")
		require.NoError(t, err)
		assert.Equal(t, "Alice", user.Username)
	})
}
