package utils

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Status    string    `json:"status"`
	Mongo     *bool     `json:"mongo,omitempty"`
	Redis     *bool     `json:"redis,omitempty"`
	CheckedAt time.Time `json:"checkedAt"`
}

// HealthChecker pings the configured backends. Nil clients are skipped.
type HealthChecker struct {
	Mongo *mongo.Client
	Redis *redis.Client
}

// Check pings every configured backend.
func (h *HealthChecker) Check(ctx context.Context) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	status := HealthStatus{Status: "ok", CheckedAt: time.Now()}
	if h.Mongo != nil {
		ok := h.Mongo.Ping(ctx, nil) == nil
		status.Mongo = &ok
		if !ok {
			status.Status = "degraded"
		}
	}
	if h.Redis != nil {
		ok := h.Redis.Ping(ctx).Err() == nil
		status.Redis = &ok
		if !ok {
			status.Status = "degraded"
		}
	}
	return status
}
