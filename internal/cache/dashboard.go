// Package cache provides the best-effort Redis cache for dashboard payloads.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Pranshu-project/zyro/config"
	"github.com/Pranshu-project/zyro/internal/entities"
)

// DashboardCache stores assembled manager dashboards for a short TTL.
// All failures are soft: callers fall back to the store.
type DashboardCache interface {
	GetManagerDashboard(ctx context.Context, userID int64) (*entities.ManagerDashboard, bool)
	SetManagerDashboard(ctx context.Context, userID int64, dash entities.ManagerDashboard)
	Invalidate(ctx context.Context, userID int64)
	Close() error
}

// Redis implements DashboardCache over go-redis.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.SugaredLogger
}

// NewRedis connects the cache client.
func NewRedis(cfg config.RedisConfig, log *zap.SugaredLogger) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &Redis{
		client: client,
		ttl:    cfg.DashboardTTL,
		log:    log.Named("cache.redis"),
	}
}

func managerKey(userID int64) string {
	return fmt.Sprintf("dashboard:manager:%d", userID)
}

// GetManagerDashboard returns a cached dashboard when present and decodable.
func (r *Redis) GetManagerDashboard(ctx context.Context, userID int64) (*entities.ManagerDashboard, bool) {
	raw, err := r.client.Get(ctx, managerKey(userID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.log.Warnw("dashboard cache get failed", "error", err, "user_id", userID)
		}
		return nil, false
	}

	var dash entities.ManagerDashboard
	if err := json.Unmarshal(raw, &dash); err != nil {
		r.log.Warnw("dashboard cache decode failed", "error", err, "user_id", userID)
		return nil, false
	}
	return &dash, true
}

// SetManagerDashboard stores a dashboard with the configured TTL.
func (r *Redis) SetManagerDashboard(ctx context.Context, userID int64, dash entities.ManagerDashboard) {
	raw, err := json.Marshal(dash)
	if err != nil {
		r.log.Warnw("dashboard cache encode failed", "error", err, "user_id", userID)
		return
	}
	if err := r.client.Set(ctx, managerKey(userID), raw, r.ttl).Err(); err != nil {
		r.log.Warnw("dashboard cache set failed", "error", err, "user_id", userID)
	}
}

// Invalidate drops a cached dashboard.
func (r *Redis) Invalidate(ctx context.Context, userID int64) {
	if err := r.client.Del(ctx, managerKey(userID)).Err(); err != nil {
		r.log.Warnw("dashboard cache invalidate failed", "error", err, "user_id", userID)
	}
}

// Close releases the client.
func (r *Redis) Close() error {
	return r.client.Close()
}

// Noop disables caching.
type Noop struct{}

// GetManagerDashboard always misses.
func (Noop) GetManagerDashboard(context.Context, int64) (*entities.ManagerDashboard, bool) {
	return nil, false
}

// SetManagerDashboard discards the payload.
func (Noop) SetManagerDashboard(context.Context, int64, entities.ManagerDashboard) {}

// Invalidate is a no-op.
func (Noop) Invalidate(context.Context, int64) {}

// Close is a no-op.
func (Noop) Close() error { return nil }
