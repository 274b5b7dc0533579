package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/storelane/catalog-system/internal/core/domain"
	"github.com/storelane/catalog-system/internal/core/ports"
)

// UserService implements the user directory and the role-mutation policy.
type UserService struct {
	users  ports.UserRepository
	roles  ports.RoleRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, roles ports.RoleRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, roles: roles, logger: logger}
}

func (s *UserService) Show(ctx context.Context, id int64) (*ports.UserDTO, error) {
	user, err := s.getUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ports.UserDTO{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Roles: user.RoleNames(),
	}, nil
}

// Index lists all users in id order. The summary projection carries no
// roles and no password material.
func (s *UserService) Index(ctx context.Context) ([]ports.UserSummaryDTO, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]ports.UserSummaryDTO, len(users))
	for i, u := range users {
		out[i] = ports.UserSummaryDTO{ID: u.ID, Email: u.Email, Name: u.Name}
	}
	return out, nil
}

// UpdateRoles replaces the target user's entire role set after running the
// authorization policy. The checks run in a fixed order and the first
// failure wins; no mutation happens on any failing path.
func (s *UserService) UpdateRoles(ctx context.Context, input ports.UpdateRolesInput) error {
	target, err := s.getUserByID(ctx, input.TargetUserID)
	if err != nil {
		return err
	}

	acting, err := s.users.FindByID(ctx, input.ActingUserID)
	if err != nil {
		return err
	}
	if acting == nil {
		return domain.ErrUnauthenticated
	}

	if target.ID == acting.ID {
		return domain.ErrSelfRoleUpdate
	}

	actorIsAdmin := acting.HasRole(domain.RoleAdmin)
	if target.HasRole(domain.RoleAdmin) && !actorIsAdmin {
		return domain.ErrAdminRoleUpdate
	}

	// Unknown role ids are silently dropped during resolution.
	roles, err := s.roles.FindByIDs(ctx, input.RoleIDs)
	if err != nil {
		return err
	}
	if domain.ContainsRole(roles, domain.RoleAdmin) && !actorIsAdmin {
		return domain.ErrAdminRoleGrant
	}

	if err := s.users.SyncRoles(ctx, target.ID, roles); err != nil {
		return err
	}

	s.logger.Info().
		Int64("target_id", target.ID).
		Int64("acting_id", acting.ID).
		Strs("roles", roleNames(roles)).
		Msg("roles synced")
	return nil
}

func (s *UserService) getUserByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func roleNames(roles []domain.Role) []string {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = r.Name
	}
	return names
}
