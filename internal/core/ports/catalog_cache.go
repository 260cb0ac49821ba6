package ports

import "context"

// CatalogCache caches catalog pages keyed by their normalized query.
// Implementations must guarantee that Invalidate hides every entry
// written before the call; a miss is reported as (nil, nil).
type CatalogCache interface {
	Get(ctx context.Context, q CatalogQuery) (*ProductPage, error)
	Set(ctx context.Context, q CatalogQuery, page *ProductPage) error
	// Invalidate drops all cached pages. Called after every product write.
	Invalidate(ctx context.Context) error
}
