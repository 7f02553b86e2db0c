package ports

import (
	"context"

	"github.com/lawtrack/lawsuit-tracker/internal/core/domain"
)

// UserRepository persists accounts in the users collection.
type UserRepository interface {
	// Create inserts the user only if no account with the same username exists.
	// It returns domain.ErrUserExists otherwise.
	Create(ctx context.Context, user *domain.User) error
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// SetPasswordHash replaces a legacy plaintext password with its hash.
	SetPasswordHash(ctx context.Context, username, hash string) error
}
