package skill

import "context"

// UpdateSkillParams is the resolved partial update the repository applies.
// The category reference has already been resolved to an id by the service.
type UpdateSkillParams struct {
	Name       *string
	CategoryID *int64
	Icon       *string
	Order      *int
}

type Repository interface {
	// ListSkills returns every skill with its category attached, ordered
	// by display order, id breaking ties.
	ListSkills(ctx context.Context) ([]Skill, error)
	GetSkillByID(ctx context.Context, id int64) (*Skill, error)
	CreateSkill(ctx context.Context, name string, categoryID int64, icon string, order int) (*Skill, error)
	UpdateSkill(ctx context.Context, id int64, params UpdateSkillParams) (*Skill, error)
	DeleteSkill(ctx context.Context, id int64) error

	// ListCategories returns categories with their skills nested, both
	// levels ordered by display order.
	ListCategories(ctx context.Context) ([]SkillCategory, error)
	GetCategoryByID(ctx context.Context, id int64) (*SkillCategory, error)
	CreateCategory(ctx context.Context, userID int64, req CreateCategoryRequest) (*SkillCategory, error)
	// FindOrCreateCategory resolves a category name to a row, inserting it
	// if absent. Concurrent calls for the same name all land on one row.
	FindOrCreateCategory(ctx context.Context, userID int64, name string) (*SkillCategory, error)
	UpdateCategory(ctx context.Context, id int64, req UpdateCategoryRequest) (*SkillCategory, error)
	DeleteCategory(ctx context.Context, id int64) error
}
