package user

import (
	"context"
	"fmt"

	userRepo "oxywell/database/repository/user"
	"oxywell/models"
)

// UserService manages profiles and bookmarks for authenticated users. The
// auth provider owns identity; every method takes the verified UID the auth
// middleware extracted from the ID token.
type UserService interface {
	SyncProfile(ctx context.Context, profile models.UserProfile) (*models.UserProfile, error)
	GetProfile(ctx context.Context, uid string) (*models.UserProfile, error)
	AddBookmark(ctx context.Context, uid, kind, itemID string) error
	RemoveBookmark(ctx context.Context, uid, kind, itemID string) error
	DeleteAccount(ctx context.Context, uid string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// bookmarkFields maps the public bookmark kind to its storage field.
var bookmarkFields = map[string]string{
	"guides":    userRepo.BookmarkGuides,
	"providers": userRepo.BookmarkProviders,
	"chambers":  userRepo.BookmarkChambers,
}

// SyncProfile creates or refreshes the profile for a signed-in user. Called
// on every sign-in so profile fields track the auth provider.
func (s *DefaultUserService) SyncProfile(ctx context.Context, profile models.UserProfile) (*models.UserProfile, error) {
	if profile.UID == "" {
		return nil, fmt.Errorf("profile sync requires a uid")
	}
	return s.Repo.UpsertProfile(ctx, profile)
}

func (s *DefaultUserService) GetProfile(ctx context.Context, uid string) (*models.UserProfile, error) {
	return s.Repo.GetByUID(ctx, uid)
}

func (s *DefaultUserService) AddBookmark(ctx context.Context, uid, kind, itemID string) error {
	field, ok := bookmarkFields[kind]
	if !ok {
		return fmt.Errorf("unknown bookmark kind %q", kind)
	}
	if itemID == "" {
		return fmt.Errorf("bookmark item id required")
	}
	return s.Repo.AddBookmark(ctx, uid, field, itemID)
}

func (s *DefaultUserService) RemoveBookmark(ctx context.Context, uid, kind, itemID string) error {
	field, ok := bookmarkFields[kind]
	if !ok {
		return fmt.Errorf("unknown bookmark kind %q", kind)
	}
	return s.Repo.RemoveBookmark(ctx, uid, field, itemID)
}

func (s *DefaultUserService) DeleteAccount(ctx context.Context, uid string) error {
	return s.Repo.Delete(ctx, uid)
}
