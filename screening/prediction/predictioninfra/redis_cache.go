package predictioninfra

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/matchlabs/resumerank/pkg/kernel"
	"github.com/matchlabs/resumerank/pkg/logx"
	"github.com/matchlabs/resumerank/screening/prediction"
)

const cacheKeyPrefix = "prediction:"

// RedisPredictionCache implements prediction.Cache on Redis. Predictions are
// immutable once stored, so a TTL only bounds memory, not staleness.
type RedisPredictionCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisPredictionCache creates a Redis-backed prediction cache
func NewRedisPredictionCache(client *redis.Client, ttl time.Duration) *RedisPredictionCache {
	return &RedisPredictionCache{
		client: client,
		ttl:    ttl,
	}
}

func cacheKey(id kernel.ResumeID) string {
	return fmt.Sprintf("%s%d", cacheKeyPrefix, id.Int64())
}

// Get returns the cached prediction for id. Connection errors and corrupt
// entries are reported as misses.
func (c *RedisPredictionCache) Get(ctx context.Context, id kernel.ResumeID) (*prediction.Prediction, bool) {
	data, err := c.client.Get(ctx, cacheKey(id)).Bytes()
	if err != nil {
		if err != redis.Nil {
			logx.Warnf("Prediction cache read failed for %s: %v", id, err)
		}
		return nil, false
	}

	var p prediction.Prediction
	if err := json.Unmarshal(data, &p); err != nil {
		logx.Warnf("Dropping corrupt cache entry for %s: %v", id, err)
		c.client.Del(ctx, cacheKey(id))
		return nil, false
	}

	return &p, true
}

// Set stores a prediction with the configured TTL. Failures are logged and
// otherwise ignored.
func (c *RedisPredictionCache) Set(ctx context.Context, p *prediction.Prediction) {
	data, err := json.Marshal(p)
	if err != nil {
		logx.Warnf("Failed to marshal prediction %s for cache: %v", p.ID, err)
		return
	}

	if err := c.client.Set(ctx, cacheKey(p.ID), data, c.ttl).Err(); err != nil {
		logx.Warnf("Prediction cache write failed for %s: %v", p.ID, err)
	}
}

// Delete drops the cached entry for id, if any. Failures are logged and
// otherwise ignored.
func (c *RedisPredictionCache) Delete(ctx context.Context, id kernel.ResumeID) {
	if err := c.client.Del(ctx, cacheKey(id)).Err(); err != nil {
		logx.Warnf("Prediction cache delete failed for %s: %v", id, err)
	}
}
