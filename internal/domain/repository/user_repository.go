package repository

import (
	"context"
	"errors"

	"github.com/dwisetya/blockchain-api/internal/domain/entity"
)

var (
	// ErrNotFound is returned when no user matches the predicate.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when an insert or update violates the
	// unique email constraint. The constraint is the source of truth for
	// email uniqueness; service-level lookups are only an optimization.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines the persistence operations for user records.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	Delete(ctx context.Context, id int64) error
}
