package service

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/blog"
)

type fakeBlogRepo struct {
	mu     sync.Mutex
	nextID int64
	posts  map[int64]blog.Post
	now    time.Time
}

func newFakeBlogRepo() *fakeBlogRepo {
	return &fakeBlogRepo{posts: make(map[int64]blog.Post), now: time.Now()}
}

func (f *fakeBlogRepo) List(ctx context.Context) ([]blog.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]blog.Post, 0, len(f.posts))
	for _, p := range f.posts {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (f *fakeBlogRepo) GetByID(ctx context.Context, id int64) (*blog.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.posts[id]
	if !ok {
		return nil, blog.ErrPostNotFound
	}
	return &p, nil
}

func (f *fakeBlogRepo) Create(ctx context.Context, req blog.CreatePostRequest) (*blog.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	f.now = f.now.Add(time.Second)
	p := blog.Post{
		ID:        f.nextID,
		Title:     req.Title,
		Excerpt:   req.Excerpt,
		Content:   req.Content,
		Author:    req.Author,
		Category:  req.Category,
		Tags:      req.Tags,
		Image:     req.Image,
		ReadTime:  req.ReadTime,
		CreatedAt: f.now,
	}
	f.posts[p.ID] = p
	return &p, nil
}

func (f *fakeBlogRepo) Update(ctx context.Context, id int64, req blog.UpdatePostRequest) (*blog.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.posts[id]
	if !ok {
		return nil, blog.ErrPostNotFound
	}
	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Excerpt != nil {
		p.Excerpt = *req.Excerpt
	}
	if req.Content != nil {
		p.Content = *req.Content
	}
	if req.Tags != nil {
		p.Tags = *req.Tags
	}
	f.posts[id] = p
	return &p, nil
}

func (f *fakeBlogRepo) Delete(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.posts[id]; !ok {
		return blog.ErrPostNotFound
	}
	delete(f.posts, id)
	return nil
}

func TestCreateAndGetPost(t *testing.T) {
	svc := NewBlogService(newFakeBlogRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, blog.CreatePostRequest{
		Title:   "Going with Go",
		Content: "Lessons from a first production service.",
		Tags:    []string{"go", "backend"},
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Going with Go", got.Title)
	assert.Equal(t, []string{"go", "backend"}, got.Tags)
}

func TestCreatePostValidation(t *testing.T) {
	svc := NewBlogService(newFakeBlogRepo())

	_, err := svc.Create(context.Background(), blog.CreatePostRequest{Title: "No content"})
	assert.Error(t, err)

	_, err = svc.Create(context.Background(), blog.CreatePostRequest{Content: "No title"})
	assert.Error(t, err)
}

func TestListNewestFirst(t *testing.T) {
	svc := NewBlogService(newFakeBlogRepo())
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		_, err := svc.Create(ctx, blog.CreatePostRequest{Title: title, Content: "body"})
		require.NoError(t, err)
	}

	posts, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "third", posts[0].Title)
	assert.Equal(t, "second", posts[1].Title)
	assert.Equal(t, "first", posts[2].Title)
}

func TestUpdatePostPartial(t *testing.T) {
	svc := NewBlogService(newFakeBlogRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, blog.CreatePostRequest{
		Title:   "Draft",
		Content: "Original body",
		Excerpt: "Short version",
	})
	require.NoError(t, err)

	title := "Published"
	updated, err := svc.Update(ctx, created.ID, blog.UpdatePostRequest{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "Published", updated.Title)
	assert.Equal(t, "Original body", updated.Content)
	assert.Equal(t, "Short version", updated.Excerpt)
}

func TestDeletePost(t *testing.T) {
	svc := NewBlogService(newFakeBlogRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, blog.CreatePostRequest{Title: "Gone soon", Content: "body"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, blog.ErrPostNotFound)

	err = svc.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, blog.ErrPostNotFound)
}
