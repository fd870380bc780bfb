package blog

import "context"

type Repository interface {
	// List returns every post, newest first.
	List(ctx context.Context) ([]Post, error)
	GetByID(ctx context.Context, id int64) (*Post, error)
	Create(ctx context.Context, req CreatePostRequest) (*Post, error)
	Update(ctx context.Context, id int64, req UpdatePostRequest) (*Post, error)
	Delete(ctx context.Context, id int64) error
}
