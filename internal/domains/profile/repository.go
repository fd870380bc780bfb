package profile

import "context"

// Repository is the data access contract for the two singleton entities.
type Repository interface {
	// GetCurrentProfile returns the singleton row, or (nil, nil) when the
	// profile has never been configured. "No row" is not an error here: the
	// UI must tell "not yet configured" apart from "server error".
	GetCurrentProfile(ctx context.Context) (*Profile, error)

	// UpsertProfile inserts the singleton row or updates it in place.
	UpsertProfile(ctx context.Context, req CreateProfileRequest) (*Profile, error)

	// UpdateProfile applies a partial update. Returns ErrProfileNotFound
	// when the singleton row does not exist or id does not match it.
	UpdateProfile(ctx context.Context, id int64, req UpdateProfileRequest) (*Profile, error)

	GetCurrentAbout(ctx context.Context) (*AboutMe, error)
	UpsertAbout(ctx context.Context, req CreateAboutRequest) (*AboutMe, error)
	UpdateAbout(ctx context.Context, id int64, req UpdateAboutRequest) (*AboutMe, error)
}
