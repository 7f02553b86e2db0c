package service

import (
	"context"

	"github.com/lawtrack/lawsuit-tracker/internal/core/domain"
	"github.com/lawtrack/lawsuit-tracker/internal/core/ports"
)

type ThemeService struct {
	repo ports.ThemeRepository
}

func NewThemeService(repo ports.ThemeRepository) *ThemeService {
	return &ThemeService{repo: repo}
}

// Save overwrites the user's theme.
func (s *ThemeService) Save(ctx context.Context, username, theme string) error {
	if username == "" || theme == "" {
		return domain.ErrMissingField
	}
	return s.repo.Upsert(ctx, username, theme)
}

// Get returns the user's theme, or DefaultTheme when none is stored.
// The ping username is answered without a storage round trip.
func (s *ThemeService) Get(ctx context.Context, username string) (string, error) {
	if username == domain.PingUsername {
		return domain.DefaultTheme, nil
	}
	if username == "" {
		return "", domain.ErrMissingField
	}

	theme, ok, err := s.repo.Find(ctx, username)
	if err != nil {
		return "", err
	}
	if !ok || theme == "" {
		return domain.DefaultTheme, nil
	}
	return theme, nil
}
