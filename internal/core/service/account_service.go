package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/lawtrack/lawsuit-tracker/internal/core/domain"
	"github.com/lawtrack/lawsuit-tracker/internal/core/ports"
)

// AccountService implements registration and login.
type AccountService struct {
	repo      ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
	now       func() time.Time
}

// NewAccountService builds an AccountService. An empty jwtSecret disables token issuing.
func NewAccountService(repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AccountService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AccountService{
		repo:      repo,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *AccountService) Register(ctx context.Context, in ports.RegisterInput) error {
	if in.Username == "" || in.Password == "" {
		return domain.ErrMissingField
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Username:     in.Username,
		PasswordHash: string(hash),
		VK:           in.VK,
		Created:      s.now().UTC(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return err
	}

	s.logger.Info().Str("username", in.Username).Msg("user registered")
	return nil
}

func (s *AccountService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if user.HasLegacyPassword() {
		if subtle.ConstantTimeCompare([]byte(user.LegacyPassword), []byte(password)) != 1 {
			return "", domain.ErrInvalidCredentials
		}
		s.upgradeLegacyPassword(ctx, username, password)
	} else if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	return s.generateToken(username)
}

// upgradeLegacyPassword replaces a plaintext password with its hash.
// Failures are logged and never fail the login.
func (s *AccountService) upgradeLegacyPassword(ctx context.Context, username, password string) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Warn().Err(err).Str("username", username).Msg("hash legacy password")
		return
	}
	if err := s.repo.SetPasswordHash(ctx, username, string(hash)); err != nil {
		s.logger.Warn().Err(err).Str("username", username).Msg("upgrade legacy password")
		return
	}
	s.logger.Info().Str("username", username).Msg("legacy password upgraded")
}

func (s *AccountService) generateToken(username string) (string, error) {
	if s.jwtSecret == "" {
		return "", nil
	}

	claims := jwt.MapClaims{
		"username": username,
		"exp":      s.now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
