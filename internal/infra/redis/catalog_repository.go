package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
	"swayn-kiosk/internal/domain"
)

// CatalogLoader fetches catalog content from a backing store (YAML file, Postgres).
type CatalogLoader interface {
	LoadCatalog(ctx context.Context, catalogID string) (domain.Catalog, error)
}

// CatalogRepository caches whole catalogs in Redis and falls back to a loader on cache miss.
// Catalogs are stored as JSON: SET kiosk:catalog:{catalogID} {json} EX ttl
type CatalogRepository struct {
	client *redis.Client
	loader CatalogLoader
	ttl    time.Duration
	sf     singleflight.Group
	rnd    *rand.Rand
}

func NewCatalogRepository(client *redis.Client, loader CatalogLoader, ttl time.Duration) *CatalogRepository {
	return &CatalogRepository{
		client: client,
		loader: loader,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *CatalogRepository) GetCatalog(ctx context.Context, catalogID string) (domain.Catalog, error) {
	if c, ok := r.cached(ctx, catalogID); ok {
		return c, nil
	}

	result, err, _ := r.sf.Do(catalogID, func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		if c, ok := r.cached(ctx, catalogID); ok {
			return c, nil
		}

		c, err := r.loader.LoadCatalog(ctx, catalogID)
		if err != nil {
			return domain.Catalog{}, err
		}

		raw, err := json.Marshal(c)
		if err != nil {
			return domain.Catalog{}, fmt.Errorf("encode catalog: %w", err)
		}
		// A failed write only costs a reload next time.
		_ = r.client.Set(ctx, catalogKey(catalogID), raw, r.ttlWithJitter()).Err()
		return c, nil
	})
	if err != nil {
		return domain.Catalog{}, err
	}
	return result.(domain.Catalog), nil
}

// cached reads a catalog from Redis. Entries that no longer decode or
// validate are treated as a miss.
func (r *CatalogRepository) cached(ctx context.Context, catalogID string) (domain.Catalog, bool) {
	raw, err := r.client.Get(ctx, catalogKey(catalogID)).Bytes()
	if err != nil {
		return domain.Catalog{}, false
	}
	var c domain.Catalog
	if err := json.Unmarshal(raw, &c); err != nil {
		return domain.Catalog{}, false
	}
	if err := c.Validate(); err != nil {
		return domain.Catalog{}, false
	}
	return c, true
}

// Invalidate drops the cached copy of a catalog, e.g. after seeding new content.
func (r *CatalogRepository) Invalidate(ctx context.Context, catalogID string) error {
	return r.client.Del(ctx, catalogKey(catalogID)).Err()
}

func catalogKey(catalogID string) string {
	return "kiosk:catalog:" + catalogID
}

func (r *CatalogRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
