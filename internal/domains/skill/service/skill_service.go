package service

import (
	"context"
	"fmt"

	"portfolio-backend/internal/domains/skill"
)

type skillService struct {
	repo skill.Repository
}

func NewSkillService(repo skill.Repository) skill.Service {
	return &skillService{repo: repo}
}

func (s *skillService) ListSkills(ctx context.Context) ([]skill.Skill, error) {
	return s.repo.ListSkills(ctx)
}

func (s *skillService) GetSkillByID(ctx context.Context, id int64) (*skill.Skill, error) {
	return s.repo.GetSkillByID(ctx, id)
}

func (s *skillService) CreateSkill(ctx context.Context, req skill.CreateSkillRequest) (*skill.Skill, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	categoryID, err := s.resolveCategory(ctx, req.CategoryID, req.Category)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.CreateSkill(ctx, req.Name, categoryID, req.Icon, req.Order)
	if err != nil {
		return nil, fmt.Errorf("create skill: %w", err)
	}
	return created, nil
}

func (s *skillService) UpdateSkill(ctx context.Context, id int64, req skill.UpdateSkillRequest) (*skill.Skill, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	params := skill.UpdateSkillParams{
		Name:  req.Name,
		Icon:  req.Icon,
		Order: req.Order,
	}

	if req.CategoryID != nil || req.Category != nil {
		var name string
		if req.Category != nil {
			name = *req.Category
		}
		categoryID, err := s.resolveCategory(ctx, req.CategoryID, name)
		if err != nil {
			return nil, err
		}
		params.CategoryID = &categoryID
	}

	return s.repo.UpdateSkill(ctx, id, params)
}

// resolveCategory turns a category reference into an id. An explicit id
// must exist; a name goes through the atomic find-or-create path.
func (s *skillService) resolveCategory(ctx context.Context, id *int64, name string) (int64, error) {
	if id != nil {
		c, err := s.repo.GetCategoryByID(ctx, *id)
		if err != nil {
			return 0, err
		}
		return c.ID, nil
	}

	c, err := s.repo.FindOrCreateCategory(ctx, skill.DefaultOwnerID, name)
	if err != nil {
		return 0, err
	}
	return c.ID, nil
}

func (s *skillService) DeleteSkill(ctx context.Context, id int64) error {
	return s.repo.DeleteSkill(ctx, id)
}

func (s *skillService) ListCategories(ctx context.Context) ([]skill.SkillCategory, error) {
	return s.repo.ListCategories(ctx)
}

func (s *skillService) GetCategoryByID(ctx context.Context, id int64) (*skill.SkillCategory, error) {
	return s.repo.GetCategoryByID(ctx, id)
}

func (s *skillService) CreateCategory(ctx context.Context, req skill.CreateCategoryRequest) (*skill.SkillCategory, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.repo.CreateCategory(ctx, skill.DefaultOwnerID, req)
}

func (s *skillService) UpdateCategory(ctx context.Context, id int64, req skill.UpdateCategoryRequest) (*skill.SkillCategory, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.repo.UpdateCategory(ctx, id, req)
}

func (s *skillService) DeleteCategory(ctx context.Context, id int64) error {
	return s.repo.DeleteCategory(ctx, id)
}
