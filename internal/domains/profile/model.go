package profile

import "time"

// Profile is the hero section of the site. It has a declared cardinality
// of exactly one: the row lives under the fixed singleton id, enforced by
// a CHECK constraint, instead of the "most recently updated row wins"
// convention the data model would otherwise need.
type Profile struct {
	ID               int64     `db:"id" json:"id"`
	Greeting         string    `db:"greeting" json:"greeting"`
	Name             string    `db:"name" json:"name"`
	Title            string    `db:"title" json:"title"`
	Description      string    `db:"description" json:"description"`
	Image            string    `db:"image" json:"image"`
	ImageAlt         string    `db:"image_alt" json:"imageAlt"`
	AvailableForWork bool      `db:"available_for_work" json:"availableForWork"`
	GithubURL        string    `db:"github_url" json:"githubUrl"`
	LinkedinURL      string    `db:"linkedin_url" json:"linkedinUrl"`
	UpdatedBy        string    `db:"updated_by" json:"updatedBy"`
	UpdatedAt        time.Time `db:"updated_at" json:"updatedAt"`
}

// AboutMe is the about page content, a singleton like Profile.
type AboutMe struct {
	ID          int64     `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Bio         string    `db:"bio" json:"bio"`
	Location    string    `db:"location" json:"location"`
	Email       string    `db:"email" json:"email"`
	Phone       string    `db:"phone" json:"phone"`
	Linkedin    string    `db:"linkedin" json:"linkedin"`
	Github      string    `db:"github" json:"github"`
	Twitter     string    `db:"twitter" json:"twitter"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// SingletonID is the fixed id of the one Profile row and the one AboutMe row.
const SingletonID int64 = 1

// UpdatedByAdmin marks every profile write; there is a single content owner.
const UpdatedByAdmin = "admin"
