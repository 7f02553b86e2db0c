package ports

import (
	"context"

	"github.com/lawtrack/lawsuit-tracker/internal/core/domain"
)

// AddUserDocInput carries the fields of a new document link.
type AddUserDocInput struct {
	Username string
	Title    string
	URL      string
}

type UserDocService interface {
	Add(ctx context.Context, in AddUserDocInput) (*domain.UserDoc, error)
	List(ctx context.Context, username string) ([]domain.Link, error)
}
