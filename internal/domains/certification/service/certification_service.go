package service

import (
	"context"
	"fmt"

	"portfolio-backend/internal/domains/certification"
)

type certificationService struct {
	repo certification.Repository
}

func NewCertificationService(repo certification.Repository) certification.Service {
	return &certificationService{repo: repo}
}

func (s *certificationService) List(ctx context.Context) ([]certification.Certification, error) {
	return s.repo.List(ctx)
}

func (s *certificationService) GetByID(ctx context.Context, id int64) (*certification.Certification, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *certificationService) Create(ctx context.Context, req certification.CreateCertificationRequest) (*certification.Certification, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create certification: %w", err)
	}
	return c, nil
}

func (s *certificationService) Update(ctx context.Context, id int64, req certification.UpdateCertificationRequest) (*certification.Certification, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, id, req)
}

func (s *certificationService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
