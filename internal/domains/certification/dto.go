package certification

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CreateCertificationRequest struct {
	Title         string `json:"title"`
	Issuer        string `json:"issuer"`
	Date          string `json:"date"`
	Description   string `json:"description"`
	Image         string `json:"image"`
	CredentialURL string `json:"credentialUrl"`
	Order         int    `json:"order"`
}

func (r CreateCertificationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("title is required"), validation.Length(1, 255)),
		validation.Field(&r.Order, validation.Min(0)),
	)
}

type UpdateCertificationRequest struct {
	Title         *string `json:"title"`
	Issuer        *string `json:"issuer"`
	Date          *string `json:"date"`
	Description   *string `json:"description"`
	Image         *string `json:"image"`
	CredentialURL *string `json:"credentialUrl"`
	Order         *int    `json:"order"`
}

func (r UpdateCertificationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.When(r.Title != nil, validation.Length(1, 255))),
		validation.Field(&r.Order, validation.When(r.Order != nil, validation.Min(0))),
	)
}
