// internal/cache/cache.go
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"college-comparator/internal/common/database"
	"college-comparator/internal/common/errors"
	"college-comparator/internal/common/logger"
	"college-comparator/internal/common/metrics"
	"college-comparator/internal/models"
)

const keyPrefix = "comparison"

// ComparisonCache memoizes full comparison payloads in Redis. Failures
// are absorbed and logged; the worst outcome of a broken cache is a
// recompute, never a failed request.
type ComparisonCache struct {
	redis  *database.RedisClient
	ttl    time.Duration
	logger logger.Logger
}

func NewComparisonCache(redis *database.RedisClient, ttl time.Duration, log logger.Logger) *ComparisonCache {
	return &ComparisonCache{
		redis:  redis,
		ttl:    ttl,
		logger: log,
	}
}

// Key derives the cache key for a resolved pair. Canonical names (not the
// raw queries) feed the key, so "vjti" and the full institute name share
// an entry; the personalization fingerprint keeps differently
// personalized results apart.
func Key(nameA, nameB string, p *models.Personalization) string {
	return fmt.Sprintf("%s:%s|%s:%s",
		keyPrefix,
		strings.ToLower(nameA),
		strings.ToLower(nameB),
		p.Fingerprint(),
	)
}

// Get returns the cached response for key, or nil on miss or any cache
// failure.
func (c *ComparisonCache) Get(ctx context.Context, key string) *models.ComparisonResponse {
	raw, err := c.redis.Get(ctx, key)
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("comparison cache read failed", map[string]interface{}{
				"key":   key,
				"error": errors.NewCacheUnavailableError(err).Error(),
			})
		}
		metrics.CacheHitsTotal.WithLabelValues("miss").Inc()
		return nil
	}

	var resp models.ComparisonResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		c.logger.Warn("comparison cache entry corrupt", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		metrics.CacheHitsTotal.WithLabelValues("miss").Inc()
		return nil
	}

	metrics.CacheHitsTotal.WithLabelValues("hit").Inc()
	return &resp
}

// Set stores a response under key. Errors are logged and swallowed.
func (c *ComparisonCache) Set(ctx context.Context, key string, resp *models.ComparisonResponse) {
	raw, err := json.Marshal(resp)
	if err != nil {
		c.logger.Warn("comparison cache encode failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return
	}
	if err := c.redis.Set(ctx, key, string(raw), c.ttl); err != nil {
		c.logger.Warn("comparison cache write failed", map[string]interface{}{
			"key":   key,
			"error": errors.NewCacheUnavailableError(err).Error(),
		})
	}
}

// Invalidate drops all comparison entries. Called after a catalog reload
// so stale pairs never outlive the data they were computed from.
func (c *ComparisonCache) Invalidate(ctx context.Context) {
	iter := c.redis.GetClient().Scan(ctx, 0, keyPrefix+":*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		c.logger.Warn("comparison cache scan failed", map[string]interface{}{
			"error": errors.NewCacheUnavailableError(err).Error(),
		})
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.redis.Del(ctx, keys...); err != nil {
		c.logger.Warn("comparison cache invalidation failed", map[string]interface{}{
			"error": errors.NewCacheUnavailableError(err).Error(),
		})
		return
	}
	c.logger.Info("comparison cache invalidated", map[string]interface{}{
		"entries": len(keys),
	})
}
