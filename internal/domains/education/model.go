package education

// Education is a single education history entry.
type Education struct {
	ID           int64    `db:"id" json:"id"`
	Degree       string   `db:"degree" json:"degree"`
	Institution  string   `db:"institution" json:"institution"`
	Period       string   `db:"period" json:"period"`
	Description  string   `db:"description" json:"description"`
	Achievements []string `db:"achievements" json:"achievements"`
	Order        int      `db:"order" json:"order"`
}
