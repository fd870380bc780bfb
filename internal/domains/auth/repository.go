package auth

import "context"

// Repository is the data access contract for users.
type Repository interface {
	// Create persists a new user and returns its assigned id.
	// Returns ErrEmailAlreadyExists on a duplicate email.
	Create(ctx context.Context, user *User) (int64, error)

	// FindByEmail looks a user up for login.
	// Returns ErrUserNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindByID returns ErrUserNotFound when absent.
	FindByID(ctx context.Context, id int64) (*User, error)

	// ExistsByEmail reports whether the email is already registered.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
