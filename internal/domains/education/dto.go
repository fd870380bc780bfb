package education

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CreateEducationRequest struct {
	Degree       string   `json:"degree"`
	Institution  string   `json:"institution"`
	Period       string   `json:"period"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
	Order        int      `json:"order"`
}

func (r CreateEducationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Degree, validation.Required.Error("degree is required"), validation.Length(1, 255)),
		validation.Field(&r.Order, validation.Min(0)),
	)
}

type UpdateEducationRequest struct {
	Degree       *string   `json:"degree"`
	Institution  *string   `json:"institution"`
	Period       *string   `json:"period"`
	Description  *string   `json:"description"`
	Achievements *[]string `json:"achievements"`
	Order        *int      `json:"order"`
}

func (r UpdateEducationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Degree, validation.When(r.Degree != nil, validation.Length(1, 255))),
		validation.Field(&r.Order, validation.When(r.Order != nil, validation.Min(0))),
	)
}
