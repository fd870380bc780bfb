package project

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CreateProjectRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	Tags         []string `json:"tags"`
	Status       Status   `json:"status"`
	Github       string   `json:"github"`
	Demo         string   `json:"demo"`
	Technologies []string `json:"technologies"`
	Features     []string `json:"features"`
	Order        int      `json:"order"`
}

func (r CreateProjectRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("title is required"), validation.Length(1, 255)),
		validation.Field(&r.Status, validation.By(validStatus)),
		validation.Field(&r.Order, validation.Min(0)),
	)
}

type UpdateProjectRequest struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Image        *string   `json:"image"`
	Tags         *[]string `json:"tags"`
	Status       *Status   `json:"status"`
	Github       *string   `json:"github"`
	Demo         *string   `json:"demo"`
	Technologies *[]string `json:"technologies"`
	Features     *[]string `json:"features"`
	Order        *int      `json:"order"`
}

func (r UpdateProjectRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.When(r.Title != nil, validation.Length(1, 255))),
		validation.Field(&r.Status, validation.When(r.Status != nil, validation.By(validStatus))),
		validation.Field(&r.Order, validation.When(r.Order != nil, validation.Min(0))),
	)
}

func validStatus(value interface{}) error {
	var s Status
	switch v := value.(type) {
	case Status:
		s = v
	case *Status:
		if v == nil {
			return nil
		}
		s = *v
	}
	if s == "" {
		// Empty falls back to the NEW default on insert.
		return nil
	}
	if !s.IsValid() {
		return validation.NewError("validation_status", "must be one of NEW, UPCOMING, IN_PROGRESS, COMPLETED")
	}
	return nil
}
