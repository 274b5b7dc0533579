package ports

import (
	"context"

	"github.com/storelane/catalog-system/internal/core/domain"
)

// RoleRepository defines persistence operations for roles.
type RoleRepository interface {
	// FindByIDs resolves the given ids to roles. Unknown ids are skipped,
	// not reported as errors.
	FindByIDs(ctx context.Context, ids []int64) ([]domain.Role, error)
	FindByName(ctx context.Context, name string) (*domain.Role, error)
	Create(ctx context.Context, name string) (*domain.Role, error)
}
