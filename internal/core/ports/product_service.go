package ports

import "context"

// ProductInput carries the fields for creating or updating a product.
// Format constraints (required, price > 0) are checked at the boundary;
// name uniqueness is enforced by the service against the store.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
}

// ProductDTO is the response-safe projection of a product.
type ProductDTO struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// ProductListItem is the lightweight projection used in paginated listings.
// It intentionally omits the description.
type ProductListItem struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ProductPage is a bounded slice of a filtered result set plus pagination
// metadata.
type ProductPage struct {
	Total       int64             `json:"total"`
	PerPage     int               `json:"per_page"`
	CurrentPage int               `json:"current_page"`
	LastPage    int               `json:"last_page"`
	Items       []ProductListItem `json:"data"`
}

// ProductService defines use-case operations for the product catalog.
type ProductService interface {
	Show(ctx context.Context, id int64) (*ProductDTO, error)
	Store(ctx context.Context, input ProductInput) (*ProductDTO, error)
	Update(ctx context.Context, id int64, input ProductInput) (*ProductDTO, error)
	Destroy(ctx context.Context, id int64) error
	Index(ctx context.Context, filter string, size, page int) (*ProductPage, error)
}
