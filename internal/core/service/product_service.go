package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/storelane/catalog-system/internal/core/domain"
	"github.com/storelane/catalog-system/internal/core/ports"
)

// ProductService implements catalog CRUD and the filtered, paginated listing.
type ProductService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

func (s *ProductService) Show(ctx context.Context, id int64) (*ports.ProductDTO, error) {
	product, err := s.getProductByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapProductToDTO(product), nil
}

func (s *ProductService) getProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

// Store creates a new product. Name uniqueness is enforced here against the
// store; price positivity is guaranteed by boundary validation.
func (s *ProductService) Store(ctx context.Context, input ports.ProductInput) (*ports.ProductDTO, error) {
	if err := s.checkNameAvailable(ctx, input.Name, 0); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	product := &domain.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("product_id", created.ID).Str("name", created.Name).Msg("product created")
	return mapProductToDTO(created), nil
}

// Update overwrites name, description and price of an existing product.
func (s *ProductService) Update(ctx context.Context, id int64, input ports.ProductInput) (*ports.ProductDTO, error) {
	product, err := s.getProductByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkNameAvailable(ctx, input.Name, id); err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return mapProductToDTO(product), nil
}

// Destroy deletes a product permanently. There is no soft delete.
func (s *ProductService) Destroy(ctx context.Context, id int64) error {
	if _, err := s.getProductByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("product_id", id).Msg("product deleted")
	return nil
}

// checkNameAvailable enforces catalog-wide name uniqueness, excluding the
// record being updated.
func (s *ProductService) checkNameAvailable(ctx context.Context, name string, excludeID int64) error {
	existing, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != excludeID {
		return domain.ErrProductNameTaken
	}
	return nil
}

// Index returns one page of products whose name or description contains
// filter as a case-sensitive substring. A page past the last page returns an
// empty item list with the real total, never an error.
func (s *ProductService) Index(ctx context.Context, filter string, size, page int) (*ports.ProductPage, error) {
	products, total, err := s.repo.List(ctx, ports.ListProductsFilter{
		Search: filter,
		Page:   page,
		Size:   size,
	})
	if err != nil {
		return nil, err
	}

	items := make([]ports.ProductListItem, len(products))
	for i, p := range products {
		items[i] = ports.ProductListItem{ID: p.ID, Name: p.Name, Price: p.Price}
	}

	return &ports.ProductPage{
		Total:       total,
		PerPage:     size,
		CurrentPage: page,
		LastPage:    lastPage(total, size),
		Items:       items,
	}, nil
}

// lastPage is ceil(total/size), floored at 1 so an empty result set still
// reports a valid page range.
func lastPage(total int64, size int) int {
	last := int((total + int64(size) - 1) / int64(size))
	if last < 1 {
		return 1
	}
	return last
}

func mapProductToDTO(p *domain.Product) *ports.ProductDTO {
	return &ports.ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
	}
}
