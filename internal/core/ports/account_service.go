package ports

import "context"

// RegisterInput carries the fields accepted by the register endpoint.
type RegisterInput struct {
	Username string
	Password string
	VK       string
}

// AccountService handles registration and login.
type AccountService interface {
	Register(ctx context.Context, in RegisterInput) error
	// Login verifies the credentials and returns a signed token, which is empty
	// when token signing is not configured.
	Login(ctx context.Context, username, password string) (string, error)
}
