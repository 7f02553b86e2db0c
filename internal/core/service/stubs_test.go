package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/lawtrack/lawsuit-tracker/internal/core/domain"
)

var errStore = errors.New("store unavailable")

// ---------------------------------------------------------------------------
// users
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users     map[string]*domain.User
	findErr   error
	setErr    error
	setCalled int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	if _, exists := r.users[user.Username]; exists {
		return domain.ErrUserExists
	}
	clone := *user
	r.users[user.Username] = &clone
	return nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) SetPasswordHash(_ context.Context, username, hash string) error {
	r.setCalled++
	if r.setErr != nil {
		return r.setErr
	}
	u, ok := r.users[username]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = hash
	u.LegacyPassword = ""
	return nil
}

// ---------------------------------------------------------------------------
// themes
// ---------------------------------------------------------------------------

type stubThemeRepo struct {
	themes map[string]string
	calls  int
	err    error
}

func newStubThemeRepo() *stubThemeRepo {
	return &stubThemeRepo{themes: make(map[string]string)}
}

func (r *stubThemeRepo) Find(_ context.Context, username string) (string, bool, error) {
	r.calls++
	if r.err != nil {
		return "", false, r.err
	}
	t, ok := r.themes[username]
	return t, ok, nil
}

func (r *stubThemeRepo) Upsert(_ context.Context, username, theme string) error {
	r.calls++
	if r.err != nil {
		return r.err
	}
	r.themes[username] = theme
	return nil
}

// ---------------------------------------------------------------------------
// lawsuits
// ---------------------------------------------------------------------------

type stubLawsuitRepo struct {
	byID map[string]*domain.Lawsuit
	seq  int
	err  error
}

func newStubLawsuitRepo() *stubLawsuitRepo {
	return &stubLawsuitRepo{byID: make(map[string]*domain.Lawsuit)}
}

func (r *stubLawsuitRepo) Create(_ context.Context, l *domain.Lawsuit) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	r.seq++
	id := "ls-" + strconv.Itoa(r.seq)
	clone := *l
	clone.ID = id
	r.byID[id] = &clone
	return id, nil
}

func (r *stubLawsuitRepo) ListByOwner(_ context.Context, username string) ([]domain.Lawsuit, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []domain.Lawsuit
	for _, l := range r.byID {
		if l.Username == username {
			out = append(out, *l)
		}
	}
	return out, nil
}

// UpdateStatus mirrors the id+owner filter of the Mongo adapter.
func (r *stubLawsuitRepo) UpdateStatus(_ context.Context, id, username, status string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	l, ok := r.byID[id]
	if !ok || !l.OwnedBy(username) {
		return false, nil
	}
	l.Status = status
	return true, nil
}

func (r *stubLawsuitRepo) Delete(_ context.Context, id, username string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	l, ok := r.byID[id]
	if !ok || !l.OwnedBy(username) {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}

// ---------------------------------------------------------------------------
// user docs
// ---------------------------------------------------------------------------

type stubUserDocRepo struct {
	docs []domain.UserDoc
	err  error
}

func (r *stubUserDocRepo) Create(_ context.Context, d *domain.UserDoc) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	id := "doc-" + strconv.Itoa(len(r.docs)+1)
	clone := *d
	clone.ID = id
	r.docs = append(r.docs, clone)
	return id, nil
}

func (r *stubUserDocRepo) ListByOwner(_ context.Context, username string) ([]domain.UserDoc, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []domain.UserDoc
	for _, d := range r.docs {
		if d.Username == username {
			out = append(out, d)
		}
	}
	return out, nil
}
