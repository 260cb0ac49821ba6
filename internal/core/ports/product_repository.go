package ports

import (
	"context"

	"github.com/northmart/commerce-system/internal/core/domain"
)

// ProductRepository defines persistence operations for catalog products.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	// FindByID returns domain.ErrProductNotFound when absent.
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	// List returns a page of products matching the query plus the total
	// count before pagination. Page and Limit are assumed normalized.
	List(ctx context.Context, q CatalogQuery) ([]*domain.Product, int64, error)
	// Replace overwrites the stored document, preserving owner and
	// creation timestamp. Returns domain.ErrProductNotFound when absent.
	Replace(ctx context.Context, p *domain.Product) (*domain.Product, error)
	// Delete returns domain.ErrProductNotFound when absent.
	Delete(ctx context.Context, id string) error
}
