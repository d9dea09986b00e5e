package users

import (
	"context"
	"fmt"
	"log"
	"strings"

	"Threddit/internal/core/blobs"
)

// Avatars are always stored as jpeg regardless of the uploaded payload's
// declared type; the frontend crops to a small square before submitting.
const avatarContentType = "image/jpeg"

type userService struct {
	userRepo UserRepository
	store    blobs.Store
}

// NewUserService creates a new user service. store may be nil in setups
// that never touch avatars (e.g. tests of lookup paths).
func NewUserService(userRepo UserRepository, store blobs.Store) Service {
	return &userService{
		userRepo: userRepo,
		store:    store,
	}
}

// GetUser looks up a user by username, case-insensitively.
func (s *userService) GetUser(ctx context.Context, username string) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrNotFound
	}

	return s.userRepo.GetByUsername(ctx, username)
}

// GetByID resolves a user by their id.
func (s *userService) GetByID(ctx context.Context, id string) (*User, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrNotFound
	}

	return s.userRepo.GetByID(ctx, id)
}

// SetAvatar uploads the image payload and records it as the user's avatar.
// Flow:
// 1. Resolve the acting user
// 2. Decode the base64 data URL
// 3. Upload under a fresh key (upload failure aborts, record untouched)
// 4. Persist the new avatar record
func (s *userService) SetAvatar(ctx context.Context, userID, imageDataURL string) (*Avatar, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	img, err := blobs.ParseImageDataURL(imageDataURL)
	if err != nil {
		return nil, err
	}

	if s.store == nil {
		return nil, fmt.Errorf("no blob store configured for avatars")
	}

	key := blobs.NewImageKey("jpg")
	ref, err := s.store.Upload(ctx, key, img.Data, avatarContentType)
	if err != nil {
		return nil, err
	}

	avatar := Avatar{
		Exists:    true,
		ImageLink: ref.Link,
		ImageID:   ref.Key,
	}

	saved, err := s.userRepo.UpdateAvatar(ctx, user.ID, avatar)
	if err != nil {
		return nil, fmt.Errorf("failed to save avatar: %w", err)
	}

	log.Printf("[AVATAR-SET] User: %s, Key: %s", user.ID, ref.Key)
	return &saved.Avatar, nil
}

// RemoveAvatar deletes the avatar blob and clears the record. A failed
// blob delete aborts the operation so the record keeps pointing at the
// blob that still exists.
func (s *userService) RemoveAvatar(ctx context.Context, userID string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if !user.Avatar.Exists {
		return ErrNoAvatar
	}

	if s.store == nil {
		return fmt.Errorf("no blob store configured for avatars")
	}

	if err := s.store.Delete(ctx, user.Avatar.ImageID); err != nil {
		return err
	}

	if _, err := s.userRepo.UpdateAvatar(ctx, user.ID, Avatar{Exists: false}); err != nil {
		return fmt.Errorf("failed to clear avatar: %w", err)
	}

	log.Printf("[AVATAR-REMOVE] User: %s, Key: %s", user.ID, user.Avatar.ImageID)
	return nil
}
