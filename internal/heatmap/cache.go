package heatmap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

// Cache keeps rendered heatmaps in redis, keyed per user and window.
// Logging an entry invalidates all windows of that user.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCache(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{
		rdb: rdb,
		ttl: ttl,
	}
}

func cacheKey(userID string, windowDays int) string {
	return fmt.Sprintf("heatmap:%s:%d", userID, windowDays)
}

func (c *Cache) Get(ctx context.Context, userID string, windowDays int) (map[string]float64, bool) {
	cached, err := c.rdb.Get(ctx, cacheKey(userID, windowDays)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		log.Warnf("heatmap cache get for user %s: %s", userID, err)
		return nil, false
	}

	var heatmap map[string]float64
	if err := json.Unmarshal(cached, &heatmap); err != nil {
		log.Warnf("heatmap cache unmarshal for user %s: %s", userID, err)
		return nil, false
	}
	return heatmap, true
}

func (c *Cache) Set(ctx context.Context, userID string, windowDays int, heatmap map[string]float64) {
	heatmapJson, err := json.Marshal(heatmap)
	if err != nil {
		log.Warnf("heatmap cache marshal for user %s: %s", userID, err)
		return
	}
	if err := c.rdb.Set(ctx, cacheKey(userID, windowDays), heatmapJson, c.ttl).Err(); err != nil {
		log.Warnf("heatmap cache set for user %s: %s", userID, err)
	}
}

// Invalidate drops all cached heatmap windows of a user.
func (c *Cache) Invalidate(ctx context.Context, userID string) error {
	keys, err := c.rdb.Keys(ctx, fmt.Sprintf("heatmap:%s:*", userID)).Result()
	if err != nil {
		return fmt.Errorf("heatmap cache keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("heatmap cache del: %w", err)
	}
	return nil
}
