package profile

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateProfileRequest configures the singleton profile. Posting when the
// row already exists updates it in place (the seeding path is an upsert).
type CreateProfileRequest struct {
	Greeting         string `json:"greeting"`
	Name             string `json:"name"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	Image            string `json:"image"`
	ImageAlt         string `json:"imageAlt"`
	AvailableForWork bool   `json:"availableForWork"`
	GithubURL        string `json:"githubUrl"`
	LinkedinURL      string `json:"linkedinUrl"`
}

func (r CreateProfileRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("name is required"), validation.Length(1, 255)),
		validation.Field(&r.Title, validation.Required.Error("title is required"), validation.Length(1, 255)),
	)
}

// UpdateProfileRequest applies a partial update: nil fields keep their
// prior values.
type UpdateProfileRequest struct {
	Greeting         *string `json:"greeting"`
	Name             *string `json:"name"`
	Title            *string `json:"title"`
	Description      *string `json:"description"`
	Image            *string `json:"image"`
	ImageAlt         *string `json:"imageAlt"`
	AvailableForWork *bool   `json:"availableForWork"`
	GithubURL        *string `json:"githubUrl"`
	LinkedinURL      *string `json:"linkedinUrl"`
}

func (r UpdateProfileRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.When(r.Name != nil, validation.Length(1, 255))),
		validation.Field(&r.Title, validation.When(r.Title != nil, validation.Length(1, 255))),
	)
}

type CreateAboutRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Bio         string `json:"bio"`
	Location    string `json:"location"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Linkedin    string `json:"linkedin"`
	Github      string `json:"github"`
	Twitter     string `json:"twitter"`
}

func (r CreateAboutRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("title is required"), validation.Length(1, 255)),
	)
}

type UpdateAboutRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Bio         *string `json:"bio"`
	Location    *string `json:"location"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Linkedin    *string `json:"linkedin"`
	Github      *string `json:"github"`
	Twitter     *string `json:"twitter"`
}

func (r UpdateAboutRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.When(r.Title != nil, validation.Length(1, 255))),
	)
}
