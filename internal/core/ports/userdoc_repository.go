package ports

import (
	"context"

	"github.com/lawtrack/lawsuit-tracker/internal/core/domain"
)

// UserDocRepository persists document links.
type UserDocRepository interface {
	Create(ctx context.Context, d *domain.UserDoc) (string, error)
	ListByOwner(ctx context.Context, username string) ([]domain.UserDoc, error)
}
