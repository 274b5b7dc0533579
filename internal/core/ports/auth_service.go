package ports

import "context"

// RegisterInput carries the already format-validated registration fields.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// TokenResult is the bearer credential issued on successful authentication.
type TokenResult struct {
	AccessToken string
	TokenType   string
}

// AuthService defines registration and login use cases.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*TokenResult, error)
	Login(ctx context.Context, email, password string) (*TokenResult, error)
}

// LoginThrottle limits repeated failed login attempts per identity.
type LoginThrottle interface {
	// TooManyAttempts reports whether the identity is currently locked out.
	TooManyAttempts(ctx context.Context, email string) (bool, error)
	// Hit records a failed attempt.
	Hit(ctx context.Context, email string) error
	// Clear resets the counter after a successful login.
	Clear(ctx context.Context, email string) error
}
