package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/storelane/catalog-system/internal/core/domain"
	"github.com/storelane/catalog-system/internal/core/ports"
)

func TestUserHandler_Show_NonNumericID(t *testing.T) {
	handler := NewUserHandler(&stubUserService{})

	c, _ := newQueryContext(t, "/users/abc")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	if err := handler.Show(c); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserHandler_Index_ReturnsSummaries(t *testing.T) {
	stub := &stubUserService{
		indexFn: func(_ context.Context) ([]ports.UserSummaryDTO, error) {
			return []ports.UserSummaryDTO{
				{ID: 1, Name: "Admin", Email: "admin@example.com"},
				{ID: 2, Name: "Worker", Email: "worker@example.com"},
			}, nil
		},
	}
	handler := NewUserHandler(stub)

	c, rec := newQueryContext(t, "/users")
	if err := handler.Index(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_UpdateRoles_Success(t *testing.T) {
	var got ports.UpdateRolesInput
	stub := &stubUserService{
		updateRolesFn: func(_ context.Context, input ports.UpdateRolesInput) error {
			got = input
			return nil
		},
	}
	handler := NewUserHandler(stub)

	c, rec := newJSONContext(t, http.MethodPut, "/users/3/roles", `{"roles":[1,2]}`)
	c.SetParamNames("id")
	c.SetParamValues("3")
	c.Set("user_id", int64(1))

	if err := handler.UpdateRoles(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if got.TargetUserID != 3 || got.ActingUserID != 1 {
		t.Fatalf("unexpected input: %+v", got)
	}
	if len(got.RoleIDs) != 2 || got.RoleIDs[0] != 1 || got.RoleIDs[1] != 2 {
		t.Fatalf("unexpected role ids: %v", got.RoleIDs)
	}
}

func TestUserHandler_UpdateRoles_EmptyListAllowed(t *testing.T) {
	var got ports.UpdateRolesInput
	stub := &stubUserService{
		updateRolesFn: func(_ context.Context, input ports.UpdateRolesInput) error {
			got = input
			return nil
		},
	}
	handler := NewUserHandler(stub)

	c, rec := newJSONContext(t, http.MethodPut, "/users/3/roles", `{"roles":[]}`)
	c.SetParamNames("id")
	c.SetParamValues("3")
	c.Set("user_id", int64(1))

	if err := handler.UpdateRoles(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if len(got.RoleIDs) != 0 {
		t.Fatalf("expected empty role ids, got %v", got.RoleIDs)
	}
}

func TestUserHandler_UpdateRoles_PolicyErrorPropagates(t *testing.T) {
	stub := &stubUserService{
		updateRolesFn: func(_ context.Context, _ ports.UpdateRolesInput) error {
			return domain.ErrSelfRoleUpdate
		},
	}
	handler := NewUserHandler(stub)

	c, _ := newJSONContext(t, http.MethodPut, "/users/1/roles", `{"roles":[1]}`)
	c.SetParamNames("id")
	c.SetParamValues("1")
	c.Set("user_id", int64(1))

	if err := handler.UpdateRoles(c); err != domain.ErrSelfRoleUpdate {
		t.Fatalf("expected ErrSelfRoleUpdate, got %v", err)
	}
}
