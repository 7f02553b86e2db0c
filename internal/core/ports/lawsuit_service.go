package ports

import (
	"context"

	"github.com/lawtrack/lawsuit-tracker/internal/core/domain"
)

// AddLawsuitInput carries the client-supplied lawsuit fields.
type AddLawsuitInput struct {
	Username  string
	URL       string
	Plaintiff string
	Defendant string
	Note      string
	Status    string
	Created   int64
}

// LawsuitService defines use-case operations for lawsuits.
type LawsuitService interface {
	Add(ctx context.Context, in AddLawsuitInput) (*domain.Lawsuit, error)
	List(ctx context.Context, username string) ([]domain.Lawsuit, error)
	// UpdateStatus and Delete report whether the ownership check matched.
	UpdateStatus(ctx context.Context, username, id, status string) (bool, error)
	Delete(ctx context.Context, username, id string) (bool, error)
}
