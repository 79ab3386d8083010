package userRepo

import (
	"context"
	"fmt"
	"time"

	"oxywell/database"
	"oxywell/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Bookmark collection names accepted by the bookmark operations.
const (
	BookmarkGuides    = "bookmarkedGuides"
	BookmarkProviders = "savedProviders"
	BookmarkChambers  = "savedChambers"
)

// UserRepository defines methods for user profile and bookmark access. Users
// are keyed by the UID the auth provider assigns.
type UserRepository interface {
	UpsertProfile(ctx context.Context, profile models.UserProfile) (*models.UserProfile, error)
	GetByUID(ctx context.Context, uid string) (*models.UserProfile, error)
	AddBookmark(ctx context.Context, uid, field, itemID string) error
	RemoveBookmark(ctx context.Context, uid, field, itemID string) error
	Delete(ctx context.Context, uid string) error
}

type mongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo returns a UserRepository backed by MongoDB.
func NewMongoUserRepo() UserRepository {
	db := database.MongoClient.Database("oxywell")
	return &mongoUserRepo{
		coll: db.Collection("users"),
	}
}

func validBookmarkField(field string) bool {
	return field == BookmarkGuides || field == BookmarkProviders || field == BookmarkChambers
}

// UpsertProfile creates or refreshes the profile document for a UID.
func (r *mongoUserRepo) UpsertProfile(ctx context.Context, profile models.UserProfile) (*models.UserProfile, error) {
	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"email":           profile.Email,
			"displayName":     profile.DisplayName,
			"photoUrl":        profile.PhotoURL,
			"newsletterOptIn": profile.NewsletterOptIn,
			"updatedAt":       now,
		},
		"$setOnInsert": bson.M{
			"uid":              profile.UID,
			"bookmarkedGuides": []string{},
			"savedProviders":   []string{},
			"savedChambers":    []string{},
			"createdAt":        now,
		},
	}
	opts := options.Update().SetUpsert(true)
	if _, err := r.coll.UpdateOne(ctx, bson.M{"uid": profile.UID}, update, opts); err != nil {
		return nil, fmt.Errorf("failed to upsert profile for uid %s: %w", profile.UID, err)
	}
	return r.GetByUID(ctx, profile.UID)
}

func (r *mongoUserRepo) GetByUID(ctx context.Context, uid string) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := r.coll.FindOne(ctx, bson.M{"uid": uid}).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to fetch user with uid %s: %w", uid, err)
	}
	return &profile, nil
}

// AddBookmark appends itemID to one of the bookmark arrays, ignoring
// duplicates.
func (r *mongoUserRepo) AddBookmark(ctx context.Context, uid, field, itemID string) error {
	if !validBookmarkField(field) {
		return fmt.Errorf("unknown bookmark field %q", field)
	}
	update := bson.M{"$addToSet": bson.M{field: itemID}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"uid": uid}, update)
	if err != nil {
		return fmt.Errorf("failed to add bookmark for uid %s: %w", uid, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("user with uid %s not found", uid)
	}
	return nil
}

// RemoveBookmark removes itemID from one of the bookmark arrays.
func (r *mongoUserRepo) RemoveBookmark(ctx context.Context, uid, field, itemID string) error {
	if !validBookmarkField(field) {
		return fmt.Errorf("unknown bookmark field %q", field)
	}
	update := bson.M{"$pull": bson.M{field: itemID}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"uid": uid}, update)
	if err != nil {
		return fmt.Errorf("failed to remove bookmark for uid %s: %w", uid, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("user with uid %s not found", uid)
	}
	return nil
}

func (r *mongoUserRepo) Delete(ctx context.Context, uid string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"uid": uid})
	if err != nil {
		return fmt.Errorf("failed to delete user with uid %s: %w", uid, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("user with uid %s not found", uid)
	}
	return nil
}
