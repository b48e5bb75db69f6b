package cache

//go:generate go run go.uber.org/mock/mockgen -source=./cache.go -destination=./mocks/cache_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"scaffold/infras/otel"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	otelScopeName         = "cache"
	otelCacheKeyAttribute = "cache.key"
)

type RedisCache interface {
	// Increment bumps the counter stored at key and returns its new value.
	// The key expires windowSeconds after the first increment.
	Increment(ctx context.Context, key string, windowSeconds int) (count int, err error)
}

type redisCache struct {
	client *redis.Client
	otel   otel.Otel
}

// NewRedisCache returns nil when there is no Redis client to back the cache.
func NewRedisCache(client *redis.Client, ot otel.Otel) RedisCache {
	if client == nil {
		return nil
	}

	return &redisCache{
		client: client,
		otel:   ot,
	}
}

// Increment implements RedisCache.
func (cache *redisCache) Increment(ctx context.Context, key string, windowSeconds int) (count int, err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Increment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	pipe := cache.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, time.Duration(windowSeconds)*time.Second)

	if _, err = pipe.Exec(ctx); err != nil {
		log.Error().Err(err).Str("key", key).Str("RedisCache", "Increment").Msg("failed to increment counter")

		return 0, fmt.Errorf("failed to increment cache value: %w", err)
	}

	return int(incr.Val()), nil
}
