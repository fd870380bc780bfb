package profile

import "context"

// Service exposes the profile and about-me singleton operations.
type Service interface {
	GetCurrentProfile(ctx context.Context) (*Profile, error)
	CreateProfile(ctx context.Context, req CreateProfileRequest) (*Profile, error)
	UpdateProfile(ctx context.Context, id int64, req UpdateProfileRequest) (*Profile, error)

	GetCurrentAbout(ctx context.Context) (*AboutMe, error)
	CreateAbout(ctx context.Context, req CreateAboutRequest) (*AboutMe, error)
	UpdateAbout(ctx context.Context, id int64, req UpdateAboutRequest) (*AboutMe, error)
}
