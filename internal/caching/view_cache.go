package caching

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// ViewCache stores rendered dashboard views keyed by their route path.
// Mutations invalidate a path so the next navigation re-renders from the
// database instead of serving a stale listing.
type ViewCache interface {
	GetView(ctx context.Context, path string) ([]byte, error)
	SetView(ctx context.Context, path string, payload []byte, ttl time.Duration) error
	Invalidate(ctx context.Context, path string) error
	Ping(ctx context.Context) error
}

type redisViewCache struct {
	client *redis.Client
}

func NewRedisViewCache(addr, password string, db int) ViewCache {
	// Accept redis:// and rediss:// forms as well as bare host:port.
	parsedAddr := strings.TrimPrefix(strings.TrimPrefix(addr, "rediss://"), "redis://")

	client := redis.NewClient(&redis.Options{
		Addr:     parsedAddr,
		Password: password,
		DB:       db,
	})
	return &redisViewCache{client: client}
}

func viewKey(path string) string {
	return "acmedash:view:" + path
}

// GetView returns the cached rendering for a path, or nil on a miss.
func (r *redisViewCache) GetView(ctx context.Context, path string) ([]byte, error) {
	payload, err := r.client.Get(ctx, viewKey(path)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return payload, nil
}

func (r *redisViewCache) SetView(ctx context.Context, path string, payload []byte, ttl time.Duration) error {
	return r.client.Set(ctx, viewKey(path), payload, ttl).Err()
}

// Invalidate marks the rendered view for a path stale by deleting it.
func (r *redisViewCache) Invalidate(ctx context.Context, path string) error {
	return r.client.Del(ctx, viewKey(path)).Err()
}

func (r *redisViewCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
