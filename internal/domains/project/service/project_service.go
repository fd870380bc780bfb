package service

import (
	"context"
	"fmt"

	"portfolio-backend/internal/domains/project"
)

type projectService struct {
	repo project.Repository
}

func NewProjectService(repo project.Repository) project.Service {
	return &projectService{repo: repo}
}

func (s *projectService) List(ctx context.Context) ([]project.Project, error) {
	return s.repo.List(ctx)
}

func (s *projectService) GetByID(ctx context.Context, id int64) (*project.Project, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *projectService) Create(ctx context.Context, req project.CreateProjectRequest) (*project.Project, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return p, nil
}

func (s *projectService) Update(ctx context.Context, id int64, req project.UpdateProjectRequest) (*project.Project, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, id, req)
}

func (s *projectService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
