package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/flo-api/schema"
)

const (
	cacheLogPrefix  = "cache"
	dashboardKeyPfx = "flo:wearables:"
	DefaultTTL      = 5 * time.Minute
)

var ErrMiss = errors.New("cache miss")

//go:generate mockgen -source=cache.go -destination=../mocks/cache.go -package=mocks

// DashboardCache keeps computed wearables dashboards of users
type DashboardCache interface {
	GetDashboard(ctx context.Context, userID string, days int) (*schema.WearablesDashboard, error)
	SetDashboard(ctx context.Context, userID string, days int, dashboard schema.WearablesDashboard) error
	Invalidate(ctx context.Context, userID string) error
}

// RedisCache stores the dashboards of a user in one hash, one field per
// window length, so that a single delete drops all of them.
type RedisCache struct {
	c   *redis.Client
	ttl time.Duration
}

func NewRedisCache(c *redis.Client, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisCache{c: c, ttl: ttl}
}

func dashboardKey(userID string) string {
	return dashboardKeyPfx + userID
}

func (r *RedisCache) GetDashboard(ctx context.Context, userID string, days int) (*schema.WearablesDashboard, error) {
	val, err := r.c.HGet(ctx, dashboardKey(userID), strconv.Itoa(days)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrMiss
		}
		return nil, fmt.Errorf("read dashboard cache: %w", err)
	}

	var d schema.WearablesDashboard
	if err := json.Unmarshal([]byte(val), &d); err != nil {
		log.WithField("prefix", cacheLogPrefix).WithError(err).Warn("drop malformed dashboard cache")
		return nil, ErrMiss
	}

	return &d, nil
}

func (r *RedisCache) SetDashboard(ctx context.Context, userID string, days int, dashboard schema.WearablesDashboard) error {
	b, err := json.Marshal(dashboard)
	if err != nil {
		return err
	}

	key := dashboardKey(userID)
	pipe := r.c.TxPipeline()
	pipe.HSet(ctx, key, strconv.Itoa(days), b)
	pipe.Expire(ctx, key, r.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("write dashboard cache: %w", err)
	}

	return nil
}

// Invalidate drops every cached dashboard of a user
func (r *RedisCache) Invalidate(ctx context.Context, userID string) error {
	return r.c.Del(ctx, dashboardKey(userID)).Err()
}
