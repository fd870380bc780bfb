package education

import "context"

type Service interface {
	List(ctx context.Context) ([]Education, error)
	GetByID(ctx context.Context, id int64) (*Education, error)
	Create(ctx context.Context, req CreateEducationRequest) (*Education, error)
	Update(ctx context.Context, id int64, req UpdateEducationRequest) (*Education, error)
	Delete(ctx context.Context, id int64) error
}
