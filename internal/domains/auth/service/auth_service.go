package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"portfolio-backend/internal/domains/auth"
	"portfolio-backend/pkg/jwt"
)

// bcryptCost trades hashing speed for resistance to offline cracking.
const bcryptCost = 12

type authService struct {
	repo       auth.Repository
	jwtManager *jwt.Manager
}

// NewAuthService wires the repository and token manager into auth.Service.
func NewAuthService(repo auth.Repository, jwtManager *jwt.Manager) auth.Service {
	return &authService{
		repo:       repo,
		jwtManager: jwtManager,
	}
}

// Register creates the admin account.
func (s *authService) Register(ctx context.Context, req auth.RegisterRequest) (*auth.UserDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email exists: %w", err)
	}
	if exists {
		return nil, auth.ErrEmailAlreadyExists
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	newUser := &auth.User{
		Email:        req.Email,
		PasswordHash: string(passwordHash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// The unique index on email is the real guard; ExistsByEmail above just
	// gives a friendlier fast path.
	id, err := s.repo.Create(ctx, newUser)
	if err != nil {
		return nil, err
	}
	newUser.ID = id

	dto := newUser.ToDTO()
	return &dto, nil
}

// Login verifies credentials and issues the access token.
func (s *authService) Login(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		// Collapse "no such email" into the generic credentials error so the
		// response does not reveal which accounts exist. Anything else is a
		// storage failure and stays one.
		if errors.Is(err, auth.ErrUserNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(u.ID, u.Email)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	return &auth.LoginResponse{
		AccessToken: accessToken,
		User:        u.ToDTO(),
	}, nil
}
