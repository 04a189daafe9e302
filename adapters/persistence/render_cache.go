package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/hanntran/folio-forge/internal/application/service"
	"github.com/hanntran/folio-forge/pkg/logger"
)

const renderCacheTTL = 10 * time.Minute

// redisRenderCache holds rendered pages keyed by share id. Failures are
// logged and treated as cache misses; rendering is always possible without
// the cache.
type redisRenderCache struct {
	client *redis.Client
	logger logger.Logger
}

func NewRedisRenderCache(client *redis.Client, log logger.Logger) service.RenderCache {
	return &redisRenderCache{client: client, logger: log}
}

func renderKey(shareID uuid.UUID) string {
	return "portfolio:render:" + shareID.String()
}

func (c *redisRenderCache) Get(ctx context.Context, shareID uuid.UUID) (string, bool) {
	html, err := c.client.Get(ctx, renderKey(shareID)).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("Render cache get failed", zap.Error(err))
		}
		return "", false
	}
	return html, true
}

func (c *redisRenderCache) Set(ctx context.Context, shareID uuid.UUID, html string) {
	if err := c.client.Set(ctx, renderKey(shareID), html, renderCacheTTL).Err(); err != nil {
		c.logger.Warn("Render cache set failed", zap.Error(err))
	}
}

func (c *redisRenderCache) Invalidate(ctx context.Context, shareID uuid.UUID) {
	if err := c.client.Del(ctx, renderKey(shareID)).Err(); err != nil {
		c.logger.Warn("Render cache invalidate failed", zap.Error(err))
	}
}
