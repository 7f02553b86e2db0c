package service

import (
	"context"

	"github.com/lawtrack/lawsuit-tracker/internal/core/domain"
	"github.com/lawtrack/lawsuit-tracker/internal/core/ports"
)

type UserDocService struct {
	repo ports.UserDocRepository
}

func NewUserDocService(repo ports.UserDocRepository) *UserDocService {
	return &UserDocService{repo: repo}
}

func (s *UserDocService) Add(ctx context.Context, in ports.AddUserDocInput) (*domain.UserDoc, error) {
	if in.Username == "" || in.URL == "" {
		return nil, domain.ErrMissingField
	}

	d := &domain.UserDoc{
		Username: in.Username,
		Title:    in.Title,
		URL:      in.URL,
	}
	id, err := s.repo.Create(ctx, d)
	if err != nil {
		return nil, err
	}
	d.ID = id
	return d, nil
}

// List returns the title/url links saved by username.
func (s *UserDocService) List(ctx context.Context, username string) ([]domain.Link, error) {
	if username == "" {
		return nil, domain.ErrMissingField
	}

	docs, err := s.repo.ListByOwner(ctx, username)
	if err != nil {
		return nil, err
	}

	links := make([]domain.Link, 0, len(docs))
	for _, d := range docs {
		links = append(links, domain.Link{Title: d.Title, URL: d.URL})
	}
	return links, nil
}
