package repository

import (
	"context"

	"github.com/recero-inc/recero/internal/domain/catalog"
	vo "github.com/recero-inc/recero/internal/domain/catalog/valueobjects"
	"github.com/recero-inc/recero/internal/infrastructure/cache"
	"github.com/recero-inc/recero/internal/shared/logger"
)

// CachedCatalogRepository is a read-through cache over the catalog repository.
// Cache failures are logged and fall back to the database; the cache is never
// load-bearing for correctness.
type CachedCatalogRepository struct {
	inner  catalog.Repository
	cache  *cache.CatalogCache
	logger logger.Interface
}

func NewCachedCatalogRepository(inner catalog.Repository, catalogCache *cache.CatalogCache, log logger.Interface) *CachedCatalogRepository {
	return &CachedCatalogRepository{inner: inner, cache: catalogCache, logger: log}
}

func (r *CachedCatalogRepository) GetByCode(ctx context.Context, code vo.ServiceCode) (*catalog.ServiceDef, error) {
	def, err := r.cache.Get(ctx, code)
	if err == nil {
		return def, nil
	}
	if err != cache.ErrCacheMiss {
		r.logger.Warnw("catalog cache read failed", "code", code, "error", err)
	}

	def, err = r.inner.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, def); err != nil {
		r.logger.Warnw("catalog cache write failed", "code", code, "error", err)
	}

	return def, nil
}

func (r *CachedCatalogRepository) GetSnapshot(ctx context.Context, codes []vo.ServiceCode) (catalog.Snapshot, error) {
	snapshot := make(catalog.Snapshot, len(codes))
	var missing []vo.ServiceCode

	for _, code := range codes {
		def, err := r.cache.Get(ctx, code)
		if err != nil {
			if err != cache.ErrCacheMiss {
				r.logger.Warnw("catalog cache read failed", "code", code, "error", err)
			}
			missing = append(missing, code)
			continue
		}
		snapshot[code] = def
	}

	if len(missing) == 0 {
		return snapshot, nil
	}

	fetched, err := r.inner.GetSnapshot(ctx, missing)
	if err != nil {
		return nil, err
	}

	for code, def := range fetched {
		snapshot[code] = def
		if err := r.cache.Set(ctx, def); err != nil {
			r.logger.Warnw("catalog cache write failed", "code", code, "error", err)
		}
	}

	return snapshot, nil
}

// ListOnSale always hits the database; the listing is an admin surface where
// staleness is more confusing than the query is expensive.
func (r *CachedCatalogRepository) ListOnSale(ctx context.Context) ([]*catalog.ServiceDef, error) {
	return r.inner.ListOnSale(ctx)
}
