package domain

import "errors"

var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingField       = errors.New("missing required field")
	ErrForbidden          = errors.New("access forbidden")
	ErrRateLimited        = errors.New("too many attempts")
)
