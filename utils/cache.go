package utils

import (
	"context"
	"fmt"
	"time"

	"doctorportal/config"

	"github.com/go-redis/redis/v8"
)

// NewCacheClient connects the generic Redis cache client. It returns nil, nil
// when no Redis address is configured.
func NewCacheClient(cfg config.Config) (*redis.Client, error) {
	if cfg.RedisAddr == "" {
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis (Cache): %w", err)
	}
	return client, nil
}
