package ports

import (
	"context"

	"github.com/storelane/catalog-system/internal/core/domain"
)

// UserRepository defines persistence operations for users. Lookup methods
// return (nil, nil) when no user matches; callers decide which typed error
// that maps to. Returned users carry their resolved Roles.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindAll returns every user in id order.
	FindAll(ctx context.Context) ([]*domain.User, error)
	// SyncRoles replaces the user's entire role set with exactly the given
	// roles. An empty slice leaves the user with zero roles.
	SyncRoles(ctx context.Context, userID int64, roles []domain.Role) error
}
