package content

import (
	"context"

	contentRepo "oxywell/database/repository/content"
	"oxywell/models"
)

// GuideSource supplies guide articles from the spreadsheet content backend.
type GuideSource interface {
	FetchGuides(ctx context.Context) ([]models.GuideArticle, error)
}

// ContentService serves the blog and guide content system.
type ContentService interface {
	ListGuides(ctx context.Context) ([]models.GuideArticle, error)
	GetGuideBySlug(ctx context.Context, slug string) (*models.GuideArticle, error)
	ListPosts(ctx context.Context) ([]models.BlogPost, error)
	GetPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	CreatePost(ctx context.Context, post models.BlogPost) (string, error)
}

// DefaultContentService is the production implementation: guides from the
// sheet source, posts from the repository, both behind the TTL cache.
type DefaultContentService struct {
	Guides GuideSource
	Posts  contentRepo.BlogPostRepository
	Cache  *ContentCache
}

func NewDefaultContentService(guides GuideSource, posts contentRepo.BlogPostRepository, cache *ContentCache) *DefaultContentService {
	return &DefaultContentService{
		Guides: guides,
		Posts:  posts,
		Cache:  cache,
	}
}
