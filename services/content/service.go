package content

import (
	"context"
	"fmt"

	"oxywell/models"
	"oxywell/utils"

	"go.uber.org/zap"
)

// ListGuides returns all guide articles, served from cache when warm.
func (s *DefaultContentService) ListGuides(ctx context.Context) ([]models.GuideArticle, error) {
	var cached []models.GuideArticle
	if s.Cache.get(ctx, guidesCacheKey, &cached) {
		return cached, nil
	}

	guides, err := s.Guides.FetchGuides(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guides: %w", err)
	}
	s.Cache.set(ctx, guidesCacheKey, guides)
	return guides, nil
}

// GetGuideBySlug returns one guide article.
func (s *DefaultContentService) GetGuideBySlug(ctx context.Context, slug string) (*models.GuideArticle, error) {
	guides, err := s.ListGuides(ctx)
	if err != nil {
		return nil, err
	}
	for i := range guides {
		if guides[i].Slug == slug {
			return &guides[i], nil
		}
	}
	return nil, fmt.Errorf("guide %s not found", slug)
}

// ListPosts returns published blog posts, newest first.
func (s *DefaultContentService) ListPosts(ctx context.Context) ([]models.BlogPost, error) {
	var cached []models.BlogPost
	if s.Cache.get(ctx, postsCacheKey, &cached) {
		return cached, nil
	}

	posts, err := s.Posts.ListPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	s.Cache.set(ctx, postsCacheKey, posts)
	return posts, nil
}

// GetPostBySlug returns one blog post.
func (s *DefaultContentService) GetPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	post, err := s.Posts.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("post %s not found: %w", slug, err)
	}
	return post, nil
}

// CreatePost stores a new post and invalidates the content cache.
func (s *DefaultContentService) CreatePost(ctx context.Context, post models.BlogPost) (string, error) {
	id, err := s.Posts.Create(ctx, post)
	if err != nil {
		return "", err
	}
	s.Cache.Invalidate(ctx)
	utils.GetLogger().Info("blog post created", zap.String("id", id), zap.String("slug", post.Slug))
	return id, nil
}
