package ports

import (
	"context"

	"github.com/storelane/catalog-system/internal/core/domain"
)

// ListProductsFilter carries the query parameters for listing products.
type ListProductsFilter struct {
	// Search is matched as a case-sensitive substring of name OR
	// description. Empty matches everything.
	Search string
	Page   int // 1-based
	Size   int // items per page
}

// ProductRepository defines persistence operations for catalog products.
// Lookup methods return (nil, nil) when no product matches.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	FindByName(ctx context.Context, name string) (*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id int64) error
	// List returns the requested page in id order plus the total number of
	// matching products. A page past the end yields an empty slice.
	List(ctx context.Context, filter ListProductsFilter) ([]*domain.Product, int64, error)
}
