package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/storelane/catalog-system/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, string) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec.Code, body.Message
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err     error
		code    int
		message string
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
		{domain.ErrUnauthenticated, http.StatusUnauthorized, "You must be authenticated to access this content"},
		{domain.ErrSelfRoleUpdate, http.StatusForbidden, "You cannot update your own roles."},
		{domain.ErrAdminRoleUpdate, http.StatusForbidden, "You don't have permission to update the roles of a admin."},
		{domain.ErrAdminRoleGrant, http.StatusForbidden, "You don't have permission to give admin to others users."},
		{domain.ErrProductNotFound, http.StatusNotFound, "Product not found"},
		{domain.ErrUserNotFound, http.StatusNotFound, "User not found"},
		{domain.ErrEmailTaken, http.StatusUnprocessableEntity, "The email has already been taken."},
		{domain.ErrProductNameTaken, http.StatusUnprocessableEntity, "The name is already been used."},
		{domain.ErrLoginThrottled, http.StatusTooManyRequests, "Too many login attempts. Please try again later."},
	}

	for _, tc := range cases {
		code, message := renderError(t, tc.err)
		if code != tc.code {
			t.Fatalf("%v: expected status %d, got %d", tc.err, tc.code, code)
		}
		if message != tc.message {
			t.Fatalf("%v: expected message %q, got %q", tc.err, tc.message, message)
		}
	}
}

func TestErrorHandler_EchoErrorPassesThrough(t *testing.T) {
	code, message := renderError(t, echo.NewHTTPError(http.StatusUnprocessableEntity, "The name is required."))
	if code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", code)
	}
	if message != "The name is required." {
		t.Fatalf("unexpected message: %q", message)
	}
}

func TestErrorHandler_UnknownErrorIsOpaque500(t *testing.T) {
	code, message := renderError(t, errors.New("pq: connection reset"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if message != "internal server error" {
		t.Fatalf("internal detail leaked: %q", message)
	}
}
