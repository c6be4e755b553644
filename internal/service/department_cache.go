package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const departmentsCacheKey = "coworkers:departments"

// DepartmentCache stores the department name list in Redis. A nil client
// turns every call into a miss.
type DepartmentCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewDepartmentCache builds the cache.
func NewDepartmentCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *DepartmentCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DepartmentCache{client: client, ttl: ttl, logger: logger}
}

// Get returns the cached names and whether the lookup hit.
func (c *DepartmentCache) Get(ctx context.Context) ([]string, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, departmentsCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Debug("department cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var names []string
	if err := json.Unmarshal(raw, &names); err != nil {
		c.logger.Warn("department cache entry corrupt", zap.Error(err))
		return nil, false
	}
	return names, true
}

// Set stores names for the configured TTL.
func (c *DepartmentCache) Set(ctx context.Context, names []string) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(names)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, departmentsCacheKey, raw, c.ttl).Err(); err != nil {
		c.logger.Debug("department cache write failed", zap.Error(err))
	}
}

// Invalidate drops the cached list.
func (c *DepartmentCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, departmentsCacheKey).Err(); err != nil {
		c.logger.Debug("department cache invalidate failed", zap.Error(err))
	}
}
