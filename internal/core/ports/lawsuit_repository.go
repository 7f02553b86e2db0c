package ports

import (
	"context"

	"github.com/lawtrack/lawsuit-tracker/internal/core/domain"
)

// LawsuitRepository persists lawsuit records.
//
// UpdateStatus and Delete only touch a record whose id and owner both match;
// the returned bool reports whether a record was affected.
type LawsuitRepository interface {
	Create(ctx context.Context, l *domain.Lawsuit) (string, error)
	ListByOwner(ctx context.Context, username string) ([]domain.Lawsuit, error)
	UpdateStatus(ctx context.Context, id, username, status string) (bool, error)
	Delete(ctx context.Context, id, username string) (bool, error)
}
