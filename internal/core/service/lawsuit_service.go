package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/lawtrack/lawsuit-tracker/internal/core/domain"
	"github.com/lawtrack/lawsuit-tracker/internal/core/ports"
)

type LawsuitService struct {
	repo   ports.LawsuitRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewLawsuitService(repo ports.LawsuitRepository, logger zerolog.Logger) *LawsuitService {
	return &LawsuitService{repo: repo, logger: logger, now: time.Now}
}

// Add stores a new lawsuit under a store-generated id. A zero Created is
// replaced with the current time.
func (s *LawsuitService) Add(ctx context.Context, in ports.AddLawsuitInput) (*domain.Lawsuit, error) {
	if in.Username == "" {
		return nil, domain.ErrMissingField
	}

	created := in.Created
	if created == 0 {
		created = s.now().UnixMilli()
	}

	l := &domain.Lawsuit{
		Username:  in.Username,
		URL:       in.URL,
		Plaintiff: in.Plaintiff,
		Defendant: in.Defendant,
		Note:      in.Note,
		Status:    in.Status,
		Created:   created,
	}

	id, err := s.repo.Create(ctx, l)
	if err != nil {
		return nil, err
	}
	l.ID = id
	return l, nil
}

func (s *LawsuitService) List(ctx context.Context, username string) ([]domain.Lawsuit, error) {
	if username == "" {
		return nil, domain.ErrMissingField
	}
	return s.repo.ListByOwner(ctx, username)
}

// UpdateStatus changes the status of a lawsuit owned by username. A missing
// record or an owner mismatch is not an error; the bool reports whether the
// update was applied.
func (s *LawsuitService) UpdateStatus(ctx context.Context, username, id, status string) (bool, error) {
	if username == "" || id == "" {
		return false, domain.ErrMissingField
	}

	applied, err := s.repo.UpdateStatus(ctx, id, username, status)
	if err != nil {
		return false, err
	}
	if !applied {
		s.logger.Debug().Str("id", id).Str("username", username).Msg("lawsuit status update ignored")
	}
	return applied, nil
}

// Delete removes a lawsuit owned by username under the same rules as UpdateStatus.
func (s *LawsuitService) Delete(ctx context.Context, username, id string) (bool, error) {
	if username == "" || id == "" {
		return false, domain.ErrMissingField
	}

	applied, err := s.repo.Delete(ctx, id, username)
	if err != nil {
		return false, err
	}
	if !applied {
		s.logger.Debug().Str("id", id).Str("username", username).Msg("lawsuit delete ignored")
	}
	return applied, nil
}
