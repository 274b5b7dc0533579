package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/storelane/catalog-system/internal/api/metrics"
	"github.com/storelane/catalog-system/internal/core/domain"
	"github.com/storelane/catalog-system/internal/core/ports"
)

// ProductHandler handles HTTP requests for catalog operations.
type ProductHandler struct {
	service     ports.ProductService
	defaultSize int
	defaultPage int
}

func NewProductHandler(service ports.ProductService, defaultSize, defaultPage int) *ProductHandler {
	return &ProductHandler{service: service, defaultSize: defaultSize, defaultPage: defaultPage}
}

// Index lists products with filtering and pagination.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        filter  query     string  false  "Substring matched against name or description (case sensitive)"
// @Param        size    query     int     false  "Items per page"
// @Param        page    query     int     false  "Page number (1-based)"
// @Success      200     {object}  ports.ProductPage
// @Router       /products [get]
func (h *ProductHandler) Index(c echo.Context) error {
	filter := c.QueryParam("filter")
	size := positiveIntParam(c.QueryParam("size"), h.defaultSize)
	page := positiveIntParam(c.QueryParam("page"), h.defaultPage)

	result, err := h.service.Index(c.Request().Context(), filter, size, page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// Show returns a single product by id.
//
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        id   path      int  true  "Product id"
// @Success      200  {object}  ports.ProductDTO
// @Failure      404  {object}  map[string]string
// @Router       /products/{id} [get]
func (h *ProductHandler) Show(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return domain.ErrProductNotFound
	}

	product, err := h.service.Show(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Store creates a new product.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      productRequest  true  "Product details"
// @Success      201   {object}  ports.ProductDTO
// @Failure      422   {object}  map[string]string
// @Router       /products [post]
func (h *ProductHandler) Store(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.service.Store(c.Request().Context(), ports.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		return err
	}

	metrics.ProductWritesTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, product)
}

// Update overwrites an existing product.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int             true  "Product id"
// @Param        body  body      productRequest  true  "Product details"
// @Success      200   {object}  ports.ProductDTO
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return domain.ErrProductNotFound
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.service.Update(c.Request().Context(), id, ports.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		return err
	}

	metrics.ProductWritesTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, product)
}

// Destroy deletes a product permanently.
//
// @Summary      Delete a product
// @Tags         products
// @Security     BearerAuth
// @Param        id  path  int  true  "Product id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /products/{id} [delete]
func (h *ProductHandler) Destroy(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return domain.ErrProductNotFound
	}

	if err := h.service.Destroy(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.ProductWritesTotal.WithLabelValues("delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

// pathID parses the :id route parameter. Non-numeric ids behave like ids
// that do not exist.
func pathID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// positiveIntParam parses a positive integer query parameter, falling back
// to def when absent or invalid.
func positiveIntParam(raw string, def int) int {
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
