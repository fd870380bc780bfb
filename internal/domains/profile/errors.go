package profile

import "errors"

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrAboutNotFound   = errors.New("about me not found")
)
