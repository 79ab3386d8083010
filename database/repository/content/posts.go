package contentRepo

import (
	"context"
	"fmt"
	"time"

	"oxywell/database"
	"oxywell/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BlogPostRepository defines methods for blog post access.
type BlogPostRepository interface {
	Create(ctx context.Context, post models.BlogPost) (string, error)
	GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	ListPublished(ctx context.Context) ([]models.BlogPost, error)
	Update(ctx context.Context, post models.BlogPost) error
	Delete(ctx context.Context, id string) error
}

type mongoBlogPostRepo struct {
	coll *mongo.Collection
}

// NewMongoBlogPostRepo returns a BlogPostRepository backed by MongoDB.
func NewMongoBlogPostRepo() BlogPostRepository {
	db := database.MongoClient.Database("oxywell")
	return &mongoBlogPostRepo{
		coll: db.Collection("blog_posts"),
	}
}

func (r *mongoBlogPostRepo) Create(ctx context.Context, post models.BlogPost) (string, error) {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	post.CreatedAt = time.Now()
	post.UpdatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, post); err != nil {
		return "", fmt.Errorf("failed to create blog post: %w", err)
	}
	return post.ID, nil
}

func (r *mongoBlogPostRepo) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := r.coll.FindOne(ctx, bson.M{"slug": slug}).Decode(&post); err != nil {
		return nil, fmt.Errorf("failed to fetch post with slug %s: %w", slug, err)
	}
	return &post, nil
}

// ListPublished returns published posts, newest first.
func (r *mongoBlogPostRepo) ListPublished(ctx context.Context) ([]models.BlogPost, error) {
	opts := options.Find().SetSort(bson.D{{Key: "publishedAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"published": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve blog posts: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []models.BlogPost
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("failed to decode blog posts: %w", err)
	}
	return posts, nil
}

func (r *mongoBlogPostRepo) Update(ctx context.Context, post models.BlogPost) error {
	post.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": post.ID}, bson.M{"$set": post})
	if err != nil {
		return fmt.Errorf("failed to update post with id %s: %w", post.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("post with id %s not found", post.ID)
	}
	return nil
}

func (r *mongoBlogPostRepo) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete post with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("post with id %s not found", id)
	}
	return nil
}
