package skill

import "context"

type Service interface {
	ListSkills(ctx context.Context) ([]Skill, error)
	GetSkillByID(ctx context.Context, id int64) (*Skill, error)
	CreateSkill(ctx context.Context, req CreateSkillRequest) (*Skill, error)
	UpdateSkill(ctx context.Context, id int64, req UpdateSkillRequest) (*Skill, error)
	DeleteSkill(ctx context.Context, id int64) error

	ListCategories(ctx context.Context) ([]SkillCategory, error)
	GetCategoryByID(ctx context.Context, id int64) (*SkillCategory, error)
	CreateCategory(ctx context.Context, req CreateCategoryRequest) (*SkillCategory, error)
	UpdateCategory(ctx context.Context, id int64, req UpdateCategoryRequest) (*SkillCategory, error)
	DeleteCategory(ctx context.Context, id int64) error
}
