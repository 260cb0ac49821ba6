package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/northmart/commerce-system/internal/core/ports"
)

const (
	defaultCacheTTL = time.Minute
	generationKey   = "catalog:gen"
)

// CatalogCache caches catalog pages in Redis. Every key embeds a
// generation counter; Invalidate bumps the counter, which orphans all
// previously written pages and lets their TTL reap them.
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCatalogCache wraps the given Redis client. ttl <= 0 falls back to
// one minute.
func NewCatalogCache(client *redis.Client, ttl time.Duration) *CatalogCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &CatalogCache{client: client, ttl: ttl}
}

func (c *CatalogCache) Get(ctx context.Context, q ports.CatalogQuery) (*ports.ProductPage, error) {
	key, err := c.key(ctx, q)
	if err != nil {
		return nil, err
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("catalog cache get: %w", err)
	}

	var page ports.ProductPage
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, fmt.Errorf("catalog cache decode: %w", err)
	}
	return &page, nil
}

func (c *CatalogCache) Set(ctx context.Context, q ports.CatalogQuery, page *ports.ProductPage) error {
	key, err := c.key(ctx, q)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(page)
	if err != nil {
		return fmt.Errorf("catalog cache encode: %w", err)
	}
	return c.client.Set(ctx, key, raw, c.ttl).Err()
}

// Invalidate bumps the generation counter so every cached page written
// before the call becomes unreachable.
func (c *CatalogCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, generationKey).Err(); err != nil {
		return fmt.Errorf("catalog cache invalidate: %w", err)
	}
	return nil
}

// key derives a deterministic cache key from the current generation and
// the normalized query.
func (c *CatalogCache) key(ctx context.Context, q ports.CatalogQuery) (string, error) {
	gen, err := c.client.Get(ctx, generationKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("catalog cache generation: %w", err)
	}

	min, max := "", ""
	if q.MinPrice != nil {
		min = fmt.Sprintf("%g", *q.MinPrice)
	}
	if q.MaxPrice != nil {
		max = fmt.Sprintf("%g", *q.MaxPrice)
	}

	return fmt.Sprintf("catalog:%d:%s:%s:%s:%s:%s:%d:%d",
		gen, q.Keyword, q.Category, q.Brand, min, max, q.Page, q.Limit), nil
}
