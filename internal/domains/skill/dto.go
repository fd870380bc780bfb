package skill

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateSkillRequest attaches a skill to a category, referenced either by
// id or by name. A name that does not exist yet creates the category.
type CreateSkillRequest struct {
	Name       string `json:"name"`
	CategoryID *int64 `json:"categoryId"`
	Category   string `json:"category"`
	Icon       string `json:"icon"`
	Order      int    `json:"order"`
}

func (r CreateSkillRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("name is required"), validation.Length(1, 255)),
		validation.Field(&r.Category, validation.When(r.CategoryID == nil,
			validation.Required.Error("either categoryId or category is required"))),
		validation.Field(&r.Order, validation.Min(0)),
	)
}

type UpdateSkillRequest struct {
	Name       *string `json:"name"`
	CategoryID *int64  `json:"categoryId"`
	Category   *string `json:"category"`
	Icon       *string `json:"icon"`
	Order      *int    `json:"order"`
}

func (r UpdateSkillRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.When(r.Name != nil, validation.Length(1, 255))),
		validation.Field(&r.Category, validation.When(r.Category != nil,
			validation.Required.Error("category name must not be empty"),
			validation.Length(1, 255),
		)),
		validation.Field(&r.Order, validation.When(r.Order != nil, validation.Min(0))),
	)
}

type CreateCategoryRequest struct {
	Name  string `json:"name"`
	Order int    `json:"order"`
}

func (r CreateCategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("name is required"), validation.Length(1, 255)),
		validation.Field(&r.Order, validation.Min(0)),
	)
}

type UpdateCategoryRequest struct {
	Name  *string `json:"name"`
	Order *int    `json:"order"`
}

func (r UpdateCategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.When(r.Name != nil, validation.Length(1, 255))),
		validation.Field(&r.Order, validation.When(r.Order != nil, validation.Min(0))),
	)
}
