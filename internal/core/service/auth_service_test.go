package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/storelane/catalog-system/internal/core/domain"
	"github.com/storelane/catalog-system/internal/core/ports"
)

type stubThrottle struct {
	attempts map[string]int
	max      int
	cleared  []string
}

func newStubThrottle(max int) *stubThrottle {
	return &stubThrottle{attempts: make(map[string]int), max: max}
}

func (t *stubThrottle) TooManyAttempts(_ context.Context, email string) (bool, error) {
	return t.attempts[email] >= t.max, nil
}

func (t *stubThrottle) Hit(_ context.Context, email string) error {
	t.attempts[email]++
	return nil
}

func (t *stubThrottle) Clear(_ context.Context, email string) error {
	delete(t.attempts, email)
	t.cleared = append(t.cleared, email)
	return nil
}

func newAuthService(t *testing.T) (*stubUserRepo, *stubThrottle, *AuthService) {
	t.Helper()
	users := newStubUserRepo()
	throttle := newStubThrottle(5)
	return users, throttle, NewAuthService(users, throttle, "secret", time.Hour, zerolog.Nop())
}

func registerUser(t *testing.T, svc *AuthService, name, email, password string) *ports.TokenResult {
	t.Helper()
	token, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:     name,
		Email:    email,
		Password: password,
	})
	if err != nil {
		t.Fatalf("register %s: %v", email, err)
	}
	return token
}

func TestAuthService_Register_Success(t *testing.T) {
	users, _, svc := newAuthService(t)

	token := registerUser(t, svc, "Alice", "alice@example.com", "pass123")
	if token.AccessToken == "" || token.TokenType != "bearer" {
		t.Fatalf("unexpected token: %+v", token)
	}

	stored, _ := users.FindByEmail(context.Background(), "alice@example.com")
	if stored == nil {
		t.Fatalf("user not persisted")
	}
	if stored.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	_, _, svc := newAuthService(t)
	registerUser(t, svc, "Bob", "bob@example.com", "pass123")

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:     "Bobby",
		Email:    "bob@example.com",
		Password: "other",
	})
	if err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	_, _, svc := newAuthService(t)
	registerUser(t, svc, "Carol", "carol@example.com", "s3cret")

	token, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token.AccessToken == "" || token.TokenType != "bearer" {
		t.Fatalf("unexpected token: %+v", token)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token.AccessToken, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["name"] != "Carol" {
		t.Fatalf("expected name claim Carol, got %v", claims["name"])
	}
	if _, ok := claims["sub"].(float64); !ok {
		t.Fatalf("expected numeric sub claim, got %v", claims["sub"])
	}
}

func TestAuthService_Login_TokenCarriesRoles(t *testing.T) {
	users, _, svc := newAuthService(t)
	registerUser(t, svc, "Dora", "dora@example.com", "pass123")

	stored, _ := users.FindByEmail(context.Background(), "dora@example.com")
	if err := users.SyncRoles(context.Background(), stored.ID, []domain.Role{{ID: 1, Name: domain.RoleAdmin}}); err != nil {
		t.Fatalf("sync roles: %v", err)
	}

	token, err := svc.Login(context.Background(), "dora@example.com", "pass123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(token.AccessToken, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	}); err != nil {
		t.Fatalf("parse token: %v", err)
	}
	roles, ok := claims["roles"].([]interface{})
	if !ok || len(roles) != 1 || roles[0] != domain.RoleAdmin {
		t.Fatalf("unexpected roles claim: %v", claims["roles"])
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	_, throttle, svc := newAuthService(t)
	registerUser(t, svc, "Dave", "dave@example.com", "goodpass")

	if _, err := svc.Login(context.Background(), "dave@example.com", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if throttle.attempts["dave@example.com"] != 1 {
		t.Fatalf("expected one recorded attempt, got %d", throttle.attempts["dave@example.com"])
	}
}

func TestAuthService_Login_UnknownEmailSameError(t *testing.T) {
	_, _, svc := newAuthService(t)
	registerUser(t, svc, "Eve", "eve@example.com", "goodpass")

	errUnknown := func() error {
		_, err := svc.Login(context.Background(), "ghost@example.com", "goodpass")
		return err
	}()
	errWrongPass := func() error {
		_, err := svc.Login(context.Background(), "eve@example.com", "badpass")
		return err
	}()

	if errUnknown != domain.ErrInvalidCredentials || errWrongPass != domain.ErrInvalidCredentials {
		t.Fatalf("expected identical credential errors, got %v / %v", errUnknown, errWrongPass)
	}
}

func TestAuthService_Login_Throttled(t *testing.T) {
	_, _, svc := newAuthService(t)
	registerUser(t, svc, "Frank", "frank@example.com", "goodpass")

	for i := 0; i < 5; i++ {
		if _, err := svc.Login(context.Background(), "frank@example.com", "badpass"); err != domain.ErrInvalidCredentials {
			t.Fatalf("attempt %d: expected ErrInvalidCredentials, got %v", i, err)
		}
	}

	// Correct password, but the account is locked out now.
	if _, err := svc.Login(context.Background(), "frank@example.com", "goodpass"); err != domain.ErrLoginThrottled {
		t.Fatalf("expected ErrLoginThrottled, got %v", err)
	}
}

func TestAuthService_Login_SuccessClearsThrottle(t *testing.T) {
	_, throttle, svc := newAuthService(t)
	registerUser(t, svc, "Grace", "grace@example.com", "goodpass")

	_, _ = svc.Login(context.Background(), "grace@example.com", "badpass")
	if _, err := svc.Login(context.Background(), "grace@example.com", "goodpass"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if throttle.attempts["grace@example.com"] != 0 {
		t.Fatalf("expected throttle cleared, got %d attempts", throttle.attempts["grace@example.com"])
	}
}
