package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/recero-inc/recero/internal/domain/catalog"
	vo "github.com/recero-inc/recero/internal/domain/catalog/valueobjects"
)

const catalogKeyPrefix = "catalog:service:"

// ErrCacheMiss is returned when a service definition is not cached.
var ErrCacheMiss = redis.Nil

type cachedServiceDef struct {
	ID         uint      `json:"id"`
	Code       string    `json:"code"`
	Name       string    `json:"name"`
	ListPrice  int64     `json:"list_price"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CatalogCache stores service definitions in Redis. Entries expire after the
// configured TTL so catalog edits become visible without explicit invalidation.
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCatalogCache(client *redis.Client, ttl time.Duration) *CatalogCache {
	return &CatalogCache{client: client, ttl: ttl}
}

func (c *CatalogCache) Get(ctx context.Context, code vo.ServiceCode) (*catalog.ServiceDef, error) {
	val, err := c.client.Get(ctx, catalogKeyPrefix+code.String()).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to read catalog cache: %w", err)
	}

	var cached cachedServiceDef
	if err := json.Unmarshal([]byte(val), &cached); err != nil {
		return nil, fmt.Errorf("failed to decode cached service: %w", err)
	}

	serviceCode := vo.ServiceCode(cached.Code)
	status := vo.ServiceStatus(cached.Status)
	if !serviceCode.IsValid() || !status.IsValid() {
		return nil, fmt.Errorf("corrupt catalog cache entry: %s", cached.Code)
	}

	return catalog.ReconstructServiceDef(
		cached.ID, serviceCode, cached.Name, cached.ListPrice, status,
		cached.CreatedAt, cached.UpdatedAt,
	), nil
}

func (c *CatalogCache) Set(ctx context.Context, def *catalog.ServiceDef) error {
	cached := cachedServiceDef{
		ID:         def.ID(),
		Code:       def.Code().String(),
		Name:       def.Name(),
		ListPrice:  def.ListPrice(),
		Status:     def.Status().String(),
		CreatedAt:  def.CreatedAt(),
		UpdatedAt:  def.UpdatedAt(),
	}

	data, err := json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("failed to encode service for cache: %w", err)
	}

	if err := c.client.Set(ctx, catalogKeyPrefix+cached.Code, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write catalog cache: %w", err)
	}

	return nil
}

func (c *CatalogCache) Invalidate(ctx context.Context, code vo.ServiceCode) error {
	return c.client.Del(ctx, catalogKeyPrefix+code.String()).Err()
}
