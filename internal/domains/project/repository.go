package project

import "context"

type Repository interface {
	// List returns every project ordered by the display order, id breaking ties.
	List(ctx context.Context) ([]Project, error)
	GetByID(ctx context.Context, id int64) (*Project, error)
	Create(ctx context.Context, req CreateProjectRequest) (*Project, error)
	Update(ctx context.Context, id int64, req UpdateProjectRequest) (*Project, error)
	Delete(ctx context.Context, id int64) error
}
