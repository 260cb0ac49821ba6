package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/northmart/commerce-system/internal/api/metrics"
	"github.com/northmart/commerce-system/internal/api/middleware"
	"github.com/northmart/commerce-system/internal/core/ports"
)

// ProductHandler serves the public catalog routes and the admin mutations.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List handles GET /products with search, filter and pagination.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        keyword   query  string  false  "Case-insensitive substring match on name"
// @Param        category  query  string  false  "Exact category match"
// @Param        brand     query  string  false  "Case-insensitive substring match on brand"
// @Param        minPrice  query  number  false  "Inclusive lower price bound"
// @Param        maxPrice  query  number  false  "Inclusive upper price bound"
// @Param        page      query  int     false  "Page number (default 1)"
// @Param        limit     query  int     false  "Page size (default 8)"
// @Success      200  {object}  productListResponse
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	page, err := h.service.List(c.Request().Context(), parseCatalogQuery(c))
	if err != nil {
		return err
	}

	metrics.CatalogQueriesTotal.Inc()
	return c.JSON(http.StatusOK, productListResponse{
		Success:       true,
		TotalProducts: page.TotalProducts,
		Count:         len(page.Products),
		CurrentPage:   page.CurrentPage,
		TotalPages:    page.TotalPages,
		Products:      page.Products,
	})
}

// Get handles GET /product/:id.
//
// @Summary      Get a single product
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  productResponse
// @Failure      404  {object}  map[string]any
// @Router       /product/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, productResponse{Success: true, Product: product})
}

// Create handles POST /admin/product/new. The created record is stamped
// with the acting admin's identity.
//
// @Summary      Create a product (admin)
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      productRequest  true  "Product fields"
// @Success      201   {object}  productResponse
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Failure      403   {object}  map[string]any
// @Router       /admin/product/new [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	principal := middleware.Principal(c)
	if principal == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "please login to access this resource")
	}

	product, err := h.service.Create(c.Request().Context(), req.toInput(), principal.ID)
	if err != nil {
		return err
	}

	metrics.ProductMutationsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, productResponse{Success: true, Product: product})
}

// Update handles PUT /admin/product/:id as a full-document update with
// validation re-run.
//
// @Summary      Update a product (admin)
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      string          true  "Product ID"
// @Param        body  body      productRequest  true  "Product fields"
// @Success      200   {object}  productResponse
// @Failure      404   {object}  map[string]any
// @Router       /admin/product/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}

	metrics.ProductMutationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, productResponse{Success: true, Product: product})
}

// Delete handles DELETE /admin/product/:id.
//
// @Summary      Delete a product (admin)
// @Tags         products
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]any
// @Router       /admin/product/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	metrics.ProductMutationsTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Success: true, Message: "product deleted"})
}

func (r *productRequest) toInput() ports.ProductInput {
	return ports.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Category:    r.Category,
		Brand:       r.Brand,
		Stock:       r.Stock,
	}
}
