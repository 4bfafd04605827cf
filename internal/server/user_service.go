package server

import (
	"context"
	"fmt"

	"github.com/alexkim/job-recommender/internal/config"
	"github.com/alexkim/job-recommender/internal/db"
)

// UserStore is the slice of the account store the user service needs.
// Narrowed to an interface so unit tests can run against an in-memory fake.
type UserStore interface {
	CreateUser(ctx context.Context, username, passwordHash string) (int64, error)
	GetUserByUsername(ctx context.Context, username string) (*db.User, error)
}

// UserService provides business logic for registration and login.
type UserService struct {
	store          UserStore
	passwordConfig *config.PasswordConfig
}

// NewUserService creates a new UserService with the given dependencies.
func NewUserService(store UserStore, passwordConfig *config.PasswordConfig) *UserService {
	return &UserService{
		store:          store,
		passwordConfig: passwordConfig,
	}
}

// Register creates a new user. A duplicate username surfaces as
// *db.ErrUsernameTaken; the store's unique constraint decides, so two
// concurrent registrations of the same name cannot both succeed.
func (s *UserService) Register(ctx context.Context, username, password string) (int64, error) {
	passwordHash, err := s.passwordConfig.HashPassword(password)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	id, err := s.store.CreateUser(ctx, username, passwordHash)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Login verifies credentials and returns the matching user.
// Unknown username and wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, username, password string) (*db.User, error) {
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	if user == nil {
		return nil, &ErrInvalidCredentials{}
	}

	if !s.passwordConfig.VerifyPassword(password, user.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}

	return user, nil
}
