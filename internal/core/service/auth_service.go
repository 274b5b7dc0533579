package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/storelane/catalog-system/internal/core/domain"
	"github.com/storelane/catalog-system/internal/core/ports"
)

const tokenType = "bearer"

// AuthService implements registration and login.
type AuthService struct {
	users     ports.UserRepository
	throttle  ports.LoginThrottle
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, throttle ports.LoginThrottle, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		users:     users,
		throttle:  throttle,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// Register persists a new user with a bcrypt-hashed password and immediately
// authenticates with the same credentials to issue a token. Format
// validation (required fields, email shape, confirmation match) happens at
// the boundary; email uniqueness is checked here against the store.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.TokenResult, error) {
	existing, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", created.ID).Str("email", created.Email).Msg("user registered")

	// Authenticating right after a successful create cannot normally fail;
	// the Unauthorized branch inside is defensive.
	return s.authenticate(created, input.Password)
}

// Login verifies credentials and issues a bearer token. The error message
// never distinguishes an unknown email from a wrong password.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.TokenResult, error) {
	if s.throttle != nil {
		locked, err := s.throttle.TooManyAttempts(ctx, email)
		if err != nil {
			s.logger.Warn().Err(err).Msg("login throttle check failed, proceeding")
		} else if locked {
			return nil, domain.ErrLoginThrottled
		}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		s.recordFailure(ctx, email)
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.authenticate(user, password)
	if err != nil {
		s.recordFailure(ctx, email)
		return nil, err
	}

	if s.throttle != nil {
		if err := s.throttle.Clear(ctx, email); err != nil {
			s.logger.Warn().Err(err).Msg("failed to clear login throttle")
		}
	}
	return token, nil
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.Hit(ctx, email); err != nil {
		s.logger.Warn().Err(err).Msg("failed to record login attempt")
	}
}

func (s *AuthService) authenticate(user *domain.User, password string) (*ports.TokenResult, error) {
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &ports.TokenResult{AccessToken: token, TokenType: tokenType}, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"name":  user.Name,
		"roles": user.RoleNames(),
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
