package skill

import "errors"

var (
	ErrSkillNotFound         = errors.New("skill not found")
	ErrCategoryNotFound      = errors.New("skill category not found")
	ErrCategoryAlreadyExists = errors.New("skill category already exists")
	// ErrCategoryNotEmpty rejects deleting a category that still has
	// skills attached. Skills are never deleted implicitly.
	ErrCategoryNotEmpty = errors.New("skill category still has skills")
)
