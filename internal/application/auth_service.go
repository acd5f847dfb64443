package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/dwisetya/blockchain-api/internal/domain/entity"
	"github.com/dwisetya/blockchain-api/internal/domain/repository"
	"github.com/dwisetya/blockchain-api/pkg/helpers"
)

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so a caller cannot tell which check failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailAlreadyRegistered is returned when registering an email that
	// already has an account.
	ErrEmailAlreadyRegistered = errors.New("email already registered")
)

// AuthService implements login and registration. The token signer is injected
// at construction, never registered through mutable package state.
type AuthService struct {
	Repo   repository.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(repo repository.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Repo: repo, JWT: jwt, Logger: logger}
}

// LoginResult carries the authenticated user and their bearer token. The user
// entity never serializes its password hash.
type LoginResult struct {
	User  *entity.User `json:"user"`
	Token string       `json:"token"`
}

// Login verifies credentials and issues a bearer token over the user's
// identity.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("authentication failed: %w", err)
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	token, _, err := s.JWT.Generate(u.ID, u.Email, u.Name)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("token signing failed")
		}
		return nil, fmt.Errorf("authentication failed: %w", err)
	}
	return &LoginResult{User: u, Token: token}, nil
}

// Register creates an account with a hashed password. The unique index on
// users.email guarantees uniqueness under concurrent registrations; the
// lookup below only gives the common case a friendlier path.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*entity.User, error) {
	if _, err := s.Repo.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailAlreadyRegistered
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	u := &entity.User{Name: name, Email: email, PasswordHash: hash}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailAlreadyRegistered
		}
		return nil, fmt.Errorf("registration failed: %w", err)
	}
	return u, nil
}
