package service

import (
	"context"
	"fmt"

	"portfolio-backend/internal/domains/education"
)

type educationService struct {
	repo education.Repository
}

func NewEducationService(repo education.Repository) education.Service {
	return &educationService{repo: repo}
}

func (s *educationService) List(ctx context.Context) ([]education.Education, error) {
	return s.repo.List(ctx)
}

func (s *educationService) GetByID(ctx context.Context, id int64) (*education.Education, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *educationService) Create(ctx context.Context, req education.CreateEducationRequest) (*education.Education, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	e, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create education: %w", err)
	}
	return e, nil
}

func (s *educationService) Update(ctx context.Context, id int64, req education.UpdateEducationRequest) (*education.Education, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, id, req)
}

func (s *educationService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
