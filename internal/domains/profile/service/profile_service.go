package service

import (
	"context"
	"fmt"

	"portfolio-backend/internal/domains/profile"
)

type profileService struct {
	repo profile.Repository
}

func NewProfileService(repo profile.Repository) profile.Service {
	return &profileService{repo: repo}
}

func (s *profileService) GetCurrentProfile(ctx context.Context) (*profile.Profile, error) {
	return s.repo.GetCurrentProfile(ctx)
}

func (s *profileService) CreateProfile(ctx context.Context, req profile.CreateProfileRequest) (*profile.Profile, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.repo.UpsertProfile(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return p, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, id int64, req profile.UpdateProfileRequest) (*profile.Profile, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.repo.UpdateProfile(ctx, id, req)
}

func (s *profileService) GetCurrentAbout(ctx context.Context) (*profile.AboutMe, error) {
	return s.repo.GetCurrentAbout(ctx)
}

func (s *profileService) CreateAbout(ctx context.Context, req profile.CreateAboutRequest) (*profile.AboutMe, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a, err := s.repo.UpsertAbout(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create about: %w", err)
	}
	return a, nil
}

func (s *profileService) UpdateAbout(ctx context.Context, id int64, req profile.UpdateAboutRequest) (*profile.AboutMe, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.repo.UpdateAbout(ctx, id, req)
}
