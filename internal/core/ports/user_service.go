package ports

import "context"

// UserDTO is the full response-safe projection of a user: identity plus the
// ordered list of role names, never the password hash.
type UserDTO struct {
	ID    int64    `json:"id"`
	Email string   `json:"email"`
	Name  string   `json:"name"`
	Roles []string `json:"roles"`
}

// UserSummaryDTO is the listing projection: identity only, no roles.
type UserSummaryDTO struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// UpdateRolesInput carries a role-sync request. ActingUserID identifies the
// authenticated caller explicitly; the service resolves it fresh from the
// store rather than reading ambient session state.
type UpdateRolesInput struct {
	TargetUserID int64
	RoleIDs      []int64
	ActingUserID int64
}

// UserService defines the user directory and role-mutation use cases.
type UserService interface {
	Show(ctx context.Context, id int64) (*UserDTO, error)
	Index(ctx context.Context) ([]UserSummaryDTO, error)
	UpdateRoles(ctx context.Context, input UpdateRolesInput) error
}
