package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/storelane/catalog-system/internal/core/domain"
	"github.com/storelane/catalog-system/internal/core/ports"
)

type stubProductService struct {
	showFn    func(ctx context.Context, id int64) (*ports.ProductDTO, error)
	storeFn   func(ctx context.Context, input ports.ProductInput) (*ports.ProductDTO, error)
	updateFn  func(ctx context.Context, id int64, input ports.ProductInput) (*ports.ProductDTO, error)
	destroyFn func(ctx context.Context, id int64) error
	indexFn   func(ctx context.Context, filter string, size, page int) (*ports.ProductPage, error)
}

func (s *stubProductService) Show(ctx context.Context, id int64) (*ports.ProductDTO, error) {
	return s.showFn(ctx, id)
}

func (s *stubProductService) Store(ctx context.Context, input ports.ProductInput) (*ports.ProductDTO, error) {
	return s.storeFn(ctx, input)
}

func (s *stubProductService) Update(ctx context.Context, id int64, input ports.ProductInput) (*ports.ProductDTO, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubProductService) Destroy(ctx context.Context, id int64) error {
	return s.destroyFn(ctx, id)
}

func (s *stubProductService) Index(ctx context.Context, filter string, size, page int) (*ports.ProductPage, error) {
	return s.indexFn(ctx, filter, size, page)
}

func newQueryContext(t *testing.T, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestProductHandler_Index_ForwardsQueryParams(t *testing.T) {
	stub := &stubProductService{
		indexFn: func(_ context.Context, filter string, size, page int) (*ports.ProductPage, error) {
			if filter != "Potter" || size != 2 || page != 3 {
				t.Fatalf("unexpected query: filter=%q size=%d page=%d", filter, size, page)
			}
			return &ports.ProductPage{Total: 0, PerPage: size, CurrentPage: page, LastPage: 1, Items: []ports.ProductListItem{}}, nil
		},
	}
	handler := NewProductHandler(stub, 4, 1)

	c, rec := newQueryContext(t, "/products?filter=Potter&size=2&page=3")
	if err := handler.Index(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProductHandler_Index_DefaultsOnMissingOrInvalidParams(t *testing.T) {
	for _, target := range []string{"/products", "/products?size=abc&page=-1", "/products?size=0&page=0"} {
		stub := &stubProductService{
			indexFn: func(_ context.Context, filter string, size, page int) (*ports.ProductPage, error) {
				if size != 4 || page != 1 {
					t.Fatalf("%s: expected defaults 4/1, got size=%d page=%d", target, size, page)
				}
				return &ports.ProductPage{PerPage: size, CurrentPage: page, LastPage: 1, Items: []ports.ProductListItem{}}, nil
			},
		}
		handler := NewProductHandler(stub, 4, 1)

		c, _ := newQueryContext(t, target)
		if err := handler.Index(c); err != nil {
			t.Fatalf("%s: handler error: %v", target, err)
		}
	}
}

func TestProductHandler_Show_Success(t *testing.T) {
	stub := &stubProductService{
		showFn: func(_ context.Context, id int64) (*ports.ProductDTO, error) {
			if id != 42 {
				t.Fatalf("expected id 42, got %d", id)
			}
			return &ports.ProductDTO{ID: 42, Name: "Widget", Description: "A widget.", Price: 9.99}, nil
		},
	}
	handler := NewProductHandler(stub, 4, 1)

	c, rec := newQueryContext(t, "/products/42")
	c.SetParamNames("id")
	c.SetParamValues("42")

	if err := handler.Show(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Widget") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestProductHandler_Show_NonNumericID(t *testing.T) {
	handler := NewProductHandler(&stubProductService{}, 4, 1)

	c, _ := newQueryContext(t, "/products/abc")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	if err := handler.Show(c); err != domain.ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductHandler_Store_ValidationFailures(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"short name", `{"name":"ab","description":"long enough text","price":10}`},
		{"short description", `{"name":"Widget","description":"short","price":10}`},
		{"zero price", `{"name":"Widget","description":"long enough text","price":0}`},
		{"negative price", `{"name":"Widget","description":"long enough text","price":-3}`},
	}

	for _, tc := range cases {
		handler := NewProductHandler(&stubProductService{}, 4, 1)
		c, _ := newJSONContext(t, http.MethodPost, "/products", tc.body)

		err := handler.Store(c)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusUnprocessableEntity {
			t.Fatalf("%s: expected 422 HTTPError, got %v", tc.name, err)
		}
	}
}

func TestProductHandler_Store_Success(t *testing.T) {
	stub := &stubProductService{
		storeFn: func(_ context.Context, input ports.ProductInput) (*ports.ProductDTO, error) {
			if input.Name != "Widget" || input.Price != 12.5 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &ports.ProductDTO{ID: 1, Name: input.Name, Description: input.Description, Price: input.Price}, nil
		},
	}
	handler := NewProductHandler(stub, 4, 1)

	c, rec := newJSONContext(t, http.MethodPost, "/products",
		`{"name":"Widget","description":"A very useful widget","price":12.5}`)

	if err := handler.Store(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestProductHandler_Update_NotFoundPropagates(t *testing.T) {
	stub := &stubProductService{
		updateFn: func(_ context.Context, _ int64, _ ports.ProductInput) (*ports.ProductDTO, error) {
			return nil, domain.ErrProductNotFound
		},
	}
	handler := NewProductHandler(stub, 4, 1)

	c, _ := newJSONContext(t, http.MethodPut, "/products/99",
		`{"name":"Widget","description":"A very useful widget","price":12.5}`)
	c.SetParamNames("id")
	c.SetParamValues("99")

	if err := handler.Update(c); err != domain.ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductHandler_Destroy_Success(t *testing.T) {
	deleted := int64(0)
	stub := &stubProductService{
		destroyFn: func(_ context.Context, id int64) error {
			deleted = id
			return nil
		},
	}
	handler := NewProductHandler(stub, 4, 1)

	c, rec := newQueryContext(t, "/products/5")
	c.SetParamNames("id")
	c.SetParamValues("5")

	if err := handler.Destroy(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if deleted != 5 {
		t.Fatalf("expected delete of 5, got %d", deleted)
	}
}
