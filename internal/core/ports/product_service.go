package ports

import (
	"context"

	"github.com/northmart/commerce-system/internal/core/domain"
)

// ProductInput carries the writable fields of a product. Used for both
// create and full-document update.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Brand       string
	Stock       int
}

// CatalogQuery is the structured filter derived from the free-form
// /products query parameters. Zero values impose no constraint.
type CatalogQuery struct {
	Keyword  string   // case-insensitive substring on product name
	Category string   // exact match
	Brand    string   // case-insensitive substring
	MinPrice *float64 // inclusive lower bound
	MaxPrice *float64 // inclusive upper bound
	Page     int      // 1-based; values < 1 fall back to the default
	Limit    int      // page size; values < 1 fall back to the default
}

// ProductPage is one page of catalog results with pre-pagination counts.
type ProductPage struct {
	Products      []*domain.Product
	TotalProducts int64
	CurrentPage   int
	TotalPages    int
}

// ProductService defines the catalog use cases.
type ProductService interface {
	// List applies the query filter and skip/limit pagination.
	List(ctx context.Context, q CatalogQuery) (*ProductPage, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	// Create persists a new product stamped with the acting admin's identity.
	Create(ctx context.Context, input ProductInput, ownerID string) (*domain.Product, error)
	// Update applies a full-document update with validation re-run.
	Update(ctx context.Context, id string, input ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
