package ports

import "context"

// ThemeRepository persists per-user UI themes.
type ThemeRepository interface {
	// Find returns the stored theme and whether one exists.
	Find(ctx context.Context, username string) (string, bool, error)
	Upsert(ctx context.Context, username, theme string) error
}
