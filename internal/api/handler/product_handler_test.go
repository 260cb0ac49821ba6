package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/northmart/commerce-system/internal/api/middleware"
	"github.com/northmart/commerce-system/internal/core/domain"
	"github.com/northmart/commerce-system/internal/core/ports"
)

type stubProductService struct {
	listFn   func(ctx context.Context, q ports.CatalogQuery) (*ports.ProductPage, error)
	getFn    func(ctx context.Context, id string) (*domain.Product, error)
	createFn func(ctx context.Context, input ports.ProductInput, ownerID string) (*domain.Product, error)
	updateFn func(ctx context.Context, id string, input ports.ProductInput) (*domain.Product, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubProductService) List(ctx context.Context, q ports.CatalogQuery) (*ports.ProductPage, error) {
	return s.listFn(ctx, q)
}

func (s *stubProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.getFn(ctx, id)
}

func (s *stubProductService) Create(ctx context.Context, input ports.ProductInput, ownerID string) (*domain.Product, error) {
	return s.createFn(ctx, input, ownerID)
}

func (s *stubProductService) Update(ctx context.Context, id string, input ports.ProductInput) (*domain.Product, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubProductService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func TestProductHandler_List(t *testing.T) {
	stub := &stubProductService{
		listFn: func(_ context.Context, q ports.CatalogQuery) (*ports.ProductPage, error) {
			if q.Keyword != "phone" {
				t.Fatalf("unexpected query: %+v", q)
			}
			return &ports.ProductPage{
				Products:      []*domain.Product{{ID: "p1", Name: "Phone"}},
				TotalProducts: 9,
				CurrentPage:   1,
				TotalPages:    2,
			}, nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/products?keyword=phone", "")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["totalProducts"] != float64(9) || resp["count"] != float64(1) {
		t.Fatalf("unexpected counts: %+v", resp)
	}
	if resp["currentPage"] != float64(1) || resp["totalPages"] != float64(2) {
		t.Fatalf("unexpected paging: %+v", resp)
	}
}

func TestProductHandler_Get_NotFound(t *testing.T) {
	stub := &stubProductService{
		getFn: func(_ context.Context, id string) (*domain.Product, error) {
			return nil, domain.ErrProductNotFound
		},
	}
	h := NewProductHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/product/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Get(c); err != domain.ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductHandler_Create_StampsPrincipal(t *testing.T) {
	stub := &stubProductService{
		createFn: func(_ context.Context, input ports.ProductInput, ownerID string) (*domain.Product, error) {
			if ownerID != "admin_1" {
				t.Fatalf("expected owner admin_1, got %s", ownerID)
			}
			return &domain.Product{ID: "p1", Name: input.Name, Price: input.Price, OwnerID: ownerID}, nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/admin/product/new",
		`{"name":"Phone","price":199.99,"category":"electronics","brand":"Acme","stock":3}`)
	c.Set(middleware.PrincipalKey, &domain.User{ID: "admin_1", Role: domain.RoleAdmin})

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestProductHandler_Create_NegativePrice(t *testing.T) {
	stub := &stubProductService{
		createFn: func(_ context.Context, input ports.ProductInput, ownerID string) (*domain.Product, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewProductHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/admin/product/new", `{"name":"Phone","price":-1}`)
	c.Set(middleware.PrincipalKey, &domain.User{ID: "admin_1", Role: domain.RoleAdmin})

	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestProductHandler_Update(t *testing.T) {
	stub := &stubProductService{
		updateFn: func(_ context.Context, id string, input ports.ProductInput) (*domain.Product, error) {
			if id != "p1" || input.Name != "Phone v2" {
				t.Fatalf("unexpected args: %s %+v", id, input)
			}
			return &domain.Product{ID: id, Name: input.Name, Price: input.Price}, nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/admin/product/p1", `{"name":"Phone v2","price":149.99}`)
	c.SetParamNames("id")
	c.SetParamValues("p1")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProductHandler_Delete(t *testing.T) {
	stub := &stubProductService{
		deleteFn: func(_ context.Context, id string) error {
			if id != "p1" {
				t.Fatalf("unexpected id: %s", id)
			}
			return nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/admin/product/p1", "")
	c.SetParamNames("id")
	c.SetParamValues("p1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != true {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestProductHandler_Delete_NotFound(t *testing.T) {
	stub := &stubProductService{
		deleteFn: func(_ context.Context, id string) error {
			return domain.ErrProductNotFound
		},
	}
	h := NewProductHandler(stub)

	c, _ := newTestContext(t, http.MethodDelete, "/admin/product/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Delete(c); err != domain.ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
