package skill

// DefaultOwnerID is the user every category belongs to. The site has a
// single content owner, but the (user_id, name) uniqueness key keeps the
// data model honest if that ever changes.
const DefaultOwnerID int64 = 1

// SkillCategory groups skills. Names are unique per owner, which is what
// makes find-or-create by name well defined.
type SkillCategory struct {
	ID     int64   `db:"id" json:"id"`
	Name   string  `db:"name" json:"name"`
	UserID int64   `db:"user_id" json:"userId"`
	Order  int     `db:"order" json:"order"`
	Skills []Skill `json:"skills,omitempty"`
}

// Skill is a single entry inside a category.
type Skill struct {
	ID         int64          `db:"id" json:"id"`
	Name       string         `db:"name" json:"name"`
	CategoryID int64          `db:"category_id" json:"categoryId"`
	Icon       string         `db:"icon" json:"icon"`
	Order      int            `db:"order" json:"order"`
	Category   *SkillCategory `json:"category,omitempty"`
}
