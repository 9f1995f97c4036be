package appointmentRepo

import (
	"context"
	"encoding/json"
	"time"

	"doctorportal/models"

	"github.com/go-redis/redis/v8"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"
)

// CatalogCacheKey is the cache key under which the whole catalog is stored.
const CatalogCacheKey = "catalog:appointmentOptions"

// CatalogCache stores a snapshot of the catalog. Implementations must hand out
// copies so callers can never mutate the cached snapshot.
type CatalogCache interface {
	Get(ctx context.Context) ([]models.AppointmentOption, bool)
	Set(ctx context.Context, opts []models.AppointmentOption)
	Invalidate(ctx context.Context)
}

func cloneAll(opts []models.AppointmentOption) []models.AppointmentOption {
	out := make([]models.AppointmentOption, len(opts))
	for i, o := range opts {
		out[i] = o.Clone()
	}
	return out
}

// LRUCatalogCache keeps the catalog in process memory.
type LRUCatalogCache struct {
	lru *expirable.LRU[string, []models.AppointmentOption]
}

// NewLRUCatalogCache builds an in-process cache whose entries expire after ttl.
func NewLRUCatalogCache(size int, ttl time.Duration) *LRUCatalogCache {
	if size <= 0 {
		size = 1
	}
	return &LRUCatalogCache{lru: expirable.NewLRU[string, []models.AppointmentOption](size, nil, ttl)}
}

func (c *LRUCatalogCache) Get(_ context.Context) ([]models.AppointmentOption, bool) {
	opts, ok := c.lru.Get(CatalogCacheKey)
	if !ok {
		return nil, false
	}
	return cloneAll(opts), true
}

func (c *LRUCatalogCache) Set(_ context.Context, opts []models.AppointmentOption) {
	c.lru.Add(CatalogCacheKey, cloneAll(opts))
}

func (c *LRUCatalogCache) Invalidate(_ context.Context) {
	c.lru.Remove(CatalogCacheKey)
}

// RedisCatalogCache shares the catalog snapshot between service instances.
type RedisCatalogCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisCatalogCache builds a cache on top of an existing redis client.
func NewRedisCatalogCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisCatalogCache {
	return &RedisCatalogCache{client: client, ttl: ttl, logger: logger}
}

func (c *RedisCatalogCache) Get(ctx context.Context) ([]models.AppointmentOption, bool) {
	data, err := c.client.Get(ctx, CatalogCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("catalog cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var opts []models.AppointmentOption
	if err := json.Unmarshal(data, &opts); err != nil {
		c.logger.Warn("catalog cache entry is corrupt", zap.Error(err))
		return nil, false
	}
	return opts, true
}

func (c *RedisCatalogCache) Set(ctx context.Context, opts []models.AppointmentOption) {
	data, err := json.Marshal(opts)
	if err != nil {
		c.logger.Warn("catalog cache encode failed", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, CatalogCacheKey, data, c.ttl).Err(); err != nil {
		c.logger.Warn("catalog cache write failed", zap.Error(err))
	}
}

func (c *RedisCatalogCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, CatalogCacheKey).Err(); err != nil {
		c.logger.Warn("catalog cache invalidate failed", zap.Error(err))
	}
}

// CachedOptionRepo serves catalog reads from a CatalogCache, loading from the
// wrapped repository on a miss.
type CachedOptionRepo struct {
	inner OptionRepository
	cache CatalogCache
}

// NewCachedOptionRepo wraps inner with cache.
func NewCachedOptionRepo(inner OptionRepository, cache CatalogCache) *CachedOptionRepo {
	return &CachedOptionRepo{inner: inner, cache: cache}
}

func (r *CachedOptionRepo) GetAll(ctx context.Context) ([]models.AppointmentOption, error) {
	if opts, ok := r.cache.Get(ctx); ok {
		return opts, nil
	}
	opts, err := r.inner.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	r.cache.Set(ctx, opts)
	return opts, nil
}

func (r *CachedOptionRepo) GetSpecialties(ctx context.Context) ([]models.Specialty, error) {
	opts, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	specialties := make([]models.Specialty, 0, len(opts))
	for _, o := range opts {
		specialties = append(specialties, models.Specialty{Name: o.Name})
	}
	return specialties, nil
}

func (r *CachedOptionRepo) InsertMany(ctx context.Context, opts []models.AppointmentOption) error {
	if err := r.inner.InsertMany(ctx, opts); err != nil {
		return err
	}
	r.cache.Invalidate(ctx)
	return nil
}
