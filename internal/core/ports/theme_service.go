package ports

import "context"

type ThemeService interface {
	Save(ctx context.Context, username, theme string) error
	Get(ctx context.Context, username string) (string, error)
}
