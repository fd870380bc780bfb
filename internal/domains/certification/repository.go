package certification

import "context"

type Repository interface {
	List(ctx context.Context) ([]Certification, error)
	GetByID(ctx context.Context, id int64) (*Certification, error)
	Create(ctx context.Context, req CreateCertificationRequest) (*Certification, error)
	Update(ctx context.Context, id int64, req UpdateCertificationRequest) (*Certification, error)
	Delete(ctx context.Context, id int64) error
}
