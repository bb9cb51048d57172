// Package cache is an optional Redis read-through cache for the public blog
// queries. With no REDIS_ADDR configured every method is a pass-through, so
// the cache is never required for correctness.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

const (
	blogPrefix = "blog:"
	defaultTTL = 5 * time.Minute
)

type Cache struct {
	client *redis.Client
}

// New connects to Redis at the given address. An empty address disables the
// cache; a failed ping disables it with a warning.
func New(addr string) *Cache {
	if addr == "" {
		return &Cache{}
	}

	client := redis.NewClient(&redis.Options{Addr: addr, DB: 0})
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		log.WithError(err).Warn("Failed to connect to Redis, cache disabled")
		return &Cache{}
	}
	log.Info("Connected to Redis")
	return &Cache{client: client}
}

// GetBlog loads a cached blog value into dest. Reports false on miss or
// when the cache is disabled.
func (c *Cache) GetBlog(ctx context.Context, key string, dest interface{}) bool {
	if c.client == nil {
		return false
	}
	raw, err := c.client.Get(ctx, blogPrefix+key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

// SetBlog caches a blog value under the given key.
func (c *Cache) SetBlog(ctx context.Context, key string, value interface{}) {
	if c.client == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, blogPrefix+key, raw, defaultTTL).Err(); err != nil {
		log.WithError(err).Warn("Failed to write blog cache")
	}
}

// InvalidateBlog drops every cached blog entry. Called on every admin blog
// mutation so an unpublished post can never be served from cache.
func (c *Cache) InvalidateBlog(ctx context.Context) {
	if c.client == nil {
		return
	}
	keys, err := c.client.Keys(ctx, blogPrefix+"*").Result()
	if err != nil || len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		log.WithError(err).Warn("Failed to invalidate blog cache")
	}
}
