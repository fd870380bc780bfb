package auth

import "context"

// Service is the business logic contract for authentication.
type Service interface {
	// Register creates a new user. Returns ErrEmailAlreadyExists when the
	// email is taken; retrying a failed register leaves no partial state.
	Register(ctx context.Context, req RegisterRequest) (*UserDTO, error)

	// Login verifies credentials and issues a signed access token.
	// Unknown email and wrong password both yield ErrInvalidCredentials.
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
}
