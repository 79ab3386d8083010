package content

import (
	"context"
	"errors"
	"testing"

	"oxywell/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGuideSource struct {
	calls  int
	guides []models.GuideArticle
	err    error
}

func (f *fakeGuideSource) FetchGuides(ctx context.Context) ([]models.GuideArticle, error) {
	f.calls++
	return f.guides, f.err
}

type fakePostRepo struct {
	posts []models.BlogPost
}

func (r *fakePostRepo) Create(ctx context.Context, post models.BlogPost) (string, error) {
	r.posts = append(r.posts, post)
	return post.ID, nil
}

func (r *fakePostRepo) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	for i := range r.posts {
		if r.posts[i].Slug == slug {
			return &r.posts[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (r *fakePostRepo) ListPublished(ctx context.Context) ([]models.BlogPost, error) {
	var out []models.BlogPost
	for _, p := range r.posts {
		if p.Published {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePostRepo) Update(ctx context.Context, post models.BlogPost) error { return nil }
func (r *fakePostRepo) Delete(ctx context.Context, id string) error            { return nil }

func TestListGuidesPassesThrough(t *testing.T) {
	src := &fakeGuideSource{guides: []models.GuideArticle{
		{Slug: "what-is-hbot", Title: "What is HBOT?"},
		{Slug: "session-prep", Title: "Preparing for a Session"},
	}}
	svc := NewDefaultContentService(src, &fakePostRepo{}, nil)

	guides, err := svc.ListGuides(context.Background())
	require.NoError(t, err)
	assert.Len(t, guides, 2)
}

func TestGetGuideBySlug(t *testing.T) {
	src := &fakeGuideSource{guides: []models.GuideArticle{
		{Slug: "what-is-hbot", Title: "What is HBOT?"},
	}}
	svc := NewDefaultContentService(src, &fakePostRepo{}, nil)

	g, err := svc.GetGuideBySlug(context.Background(), "what-is-hbot")
	require.NoError(t, err)
	assert.Equal(t, "What is HBOT?", g.Title)

	_, err = svc.GetGuideBySlug(context.Background(), "missing")
	assert.Error(t, err)
}

func TestListGuidesSourceErrorPropagates(t *testing.T) {
	src := &fakeGuideSource{err: errors.New("sheet unavailable")}
	svc := NewDefaultContentService(src, &fakePostRepo{}, nil)

	_, err := svc.ListGuides(context.Background())
	assert.Error(t, err)
}

func TestListPostsOnlyPublished(t *testing.T) {
	repo := &fakePostRepo{posts: []models.BlogPost{
		{ID: "1", Slug: "live", Published: true},
		{ID: "2", Slug: "draft", Published: false},
	}}
	svc := NewDefaultContentService(&fakeGuideSource{}, repo, nil)

	posts, err := svc.ListPosts(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "live", posts[0].Slug)
}

func TestCreatePostStores(t *testing.T) {
	repo := &fakePostRepo{}
	svc := NewDefaultContentService(&fakeGuideSource{}, repo, nil)

	id, err := svc.CreatePost(context.Background(), models.BlogPost{ID: "p1", Slug: "new-post"})
	require.NoError(t, err)
	assert.Equal(t, "p1", id)

	got, err := svc.GetPostBySlug(context.Background(), "new-post")
	require.NoError(t, err)
	assert.Equal(t, "p1", got.ID)
}

func TestGuideFromRowShortRow(t *testing.T) {
	g := guideFromRow([]interface{}{"slug-only", "Title"})
	assert.Equal(t, "slug-only", g.Slug)
	assert.Equal(t, "Title", g.Title)
	assert.Empty(t, g.Tags)

	full := guideFromRow([]interface{}{
		"what-is-hbot", "What is HBOT?", "A primer.", "Body text.",
		"Basics", "https://img.example/hero.jpg", "hbot, oxygen , ", "2024-01-05",
	})
	assert.Equal(t, []string{"hbot", "oxygen"}, full.Tags)
	assert.Equal(t, "2024-01-05", full.PublishedAt)
}
