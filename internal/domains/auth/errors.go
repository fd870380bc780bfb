package auth

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")

	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is deliberately the same for "no such email"
	// and "wrong password" so the login endpoint cannot be used to probe
	// which accounts exist.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
