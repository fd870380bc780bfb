package service

import (
	"context"
	"fmt"

	"portfolio-backend/internal/domains/blog"
)

type blogService struct {
	repo blog.Repository
}

func NewBlogService(repo blog.Repository) blog.Service {
	return &blogService{repo: repo}
}

func (s *blogService) List(ctx context.Context) ([]blog.Post, error) {
	return s.repo.List(ctx)
}

func (s *blogService) GetByID(ctx context.Context, id int64) (*blog.Post, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *blogService) Create(ctx context.Context, req blog.CreatePostRequest) (*blog.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return p, nil
}

func (s *blogService) Update(ctx context.Context, id int64, req blog.UpdatePostRequest) (*blog.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, id, req)
}

func (s *blogService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
