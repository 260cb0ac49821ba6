package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/northmart/commerce-system/internal/core/domain"
	"github.com/northmart/commerce-system/internal/core/ports"
)

const (
	defaultPage  = 1
	defaultLimit = 8
	maxLimit     = 100
)

// ProductService implements catalog listing and admin mutations.
type ProductService struct {
	repo   ports.ProductRepository
	cache  ports.CatalogCache
	logger zerolog.Logger
}

// NewProductService builds the service. cache may be nil, in which case
// every list hits the repository.
func NewProductService(repo ports.ProductRepository, cache ports.CatalogCache, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, cache: cache, logger: logger}
}

// List applies the structured filter and skip/limit pagination, consulting
// the catalog cache first.
func (s *ProductService) List(ctx context.Context, q ports.CatalogQuery) (*ports.ProductPage, error) {
	q.Page, q.Limit = normalizePaging(q.Page, q.Limit)

	if s.cache != nil {
		if page, err := s.cache.Get(ctx, q); err == nil && page != nil {
			return page, nil
		}
	}

	products, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}

	page := &ports.ProductPage{
		Products:      products,
		TotalProducts: total,
		CurrentPage:   q.Page,
		TotalPages:    totalPages(total, q.Limit),
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, q, page); err != nil {
			s.logger.Warn().Err(err).Msg("catalog cache write failed")
		}
	}
	return page, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// Create persists a new product stamped with the acting admin's identity.
func (s *ProductService) Create(ctx context.Context, input ports.ProductInput, ownerID string) (*domain.Product, error) {
	product := &domain.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Brand:       input.Brand,
		Stock:       input.Stock,
		OwnerID:     ownerID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.logger.Info().Str("product_id", created.ID).Str("owner_id", ownerID).Msg("product created")
	return created, nil
}

// Update applies a full-document update with validation re-run. Owner and
// creation timestamp are carried over from the stored record.
func (s *ProductService) Update(ctx context.Context, id string, input ports.ProductInput) (*domain.Product, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product := &domain.Product{
		ID:          existing.ID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Brand:       input.Brand,
		Stock:       input.Stock,
		OwnerID:     existing.OwnerID,
		CreatedAt:   existing.CreatedAt,
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.repo.Replace(ctx, product)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.logger.Info().Str("product_id", id).Msg("product updated")
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	s.logger.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

func (s *ProductService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("catalog cache invalidation failed")
	}
}

// normalizePaging coerces page and limit to positive values so the
// computed skip can never go negative.
func normalizePaging(page, limit int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

func totalPages(total int64, limit int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
