package cache

//go:generate go run go.uber.org/mock/mockgen -source=./cache.go -destination=./mocks/cache_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"desk/infras/otel"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	otelScopeName         = "cache"
	otelCacheKeyAttribute = "cache.key"
	Nil                   = redis.Nil
)

// RedisCache stores JSON values for listings and counters for the rate limiter.
type RedisCache interface {
	Save(ctx context.Context, key string, value any, ttlSeconds int) (err error)
	Get(ctx context.Context, key string, value any) (err error)
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context, pattern string) error
	Incr(ctx context.Context, key string, windowSeconds int) (int64, error)
}

// IsMiss reports whether err means the key was absent.
func IsMiss(err error) bool {
	return errors.Is(err, Nil)
}

// clearBatch caps how many scanned keys are unlinked per round trip.
const clearBatch = 100

type redisCache struct {
	client *redis.Client
	otel   otel.Otel
}

func NewRedisCache(client *redis.Client, ot otel.Otel) RedisCache {
	return &redisCache{
		client: client,
		otel:   ot,
	}
}

func (cache *redisCache) trace(ctx context.Context, operation, key string) (context.Context, otel.Scope) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+"."+operation)
	scope.SetAttribute(otelCacheKeyAttribute, key)

	return ctx, scope
}

// Incr bumps the counter under key. The first increment starts a window of
// windowSeconds after which the counter disappears.
func (cache *redisCache) Incr(ctx context.Context, key string, windowSeconds int) (count int64, err error) {
	ctx, scope := cache.trace(ctx, "Incr", key)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if count, err = cache.client.Incr(ctx, key).Result(); err != nil {
		return 0, fmt.Errorf("failed to increment counter: %w", err)
	}

	if count > 1 {
		return count, nil
	}

	if err = cache.client.Expire(ctx, key, time.Duration(windowSeconds)*time.Second).Err(); err != nil {
		return count, fmt.Errorf("failed to start counter window: %w", err)
	}

	return count, nil
}

// Clear unlinks every key matching pattern.
func (cache *redisCache) Clear(ctx context.Context, pattern string) (err error) {
	ctx, scope := cache.trace(ctx, "Clear", pattern)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	flush := func(keys []string) error {
		if len(keys) == 0 {
			return nil
		}

		if err := cache.client.Unlink(ctx, keys...).Err(); err != nil {
			log.Error().Err(err).Str("pattern", pattern).Int("keys", len(keys)).Msg("failed to unlink cached keys")

			return fmt.Errorf("failed to delete cache value: %w", err)
		}

		return nil
	}

	batch := make([]string, 0, clearBatch)

	iter := cache.client.Scan(ctx, 0, pattern, clearBatch).Iterator()
	for iter.Next(ctx) {
		if batch = append(batch, iter.Val()); len(batch) < clearBatch {
			continue
		}

		if err = flush(batch); err != nil {
			return err
		}

		batch = batch[:0]
	}

	if err = iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cache keys: %w", err)
	}

	return flush(batch)
}

// Delete drops a single key. Deleting an absent key is not an error.
func (cache *redisCache) Delete(ctx context.Context, key string) (err error) {
	ctx, scope := cache.trace(ctx, "Delete", key)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = cache.client.Del(ctx, key).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to delete cached key")

		return fmt.Errorf("failed to delete cache value: %w", err)
	}

	return nil
}

// Get decodes the cached JSON under key into value. A miss is reported as an
// error wrapping Nil and is not traced as a failure.
func (cache *redisCache) Get(ctx context.Context, key string, value any) error {
	ctx, scope := cache.trace(ctx, "Get", key)
	defer scope.End()

	raw, err := cache.client.Get(ctx, key).Bytes()
	if err != nil {
		if !IsMiss(err) {
			scope.TraceError(err)
		}

		return fmt.Errorf("failed to get cache value: %w", err)
	}

	if text, ok := value.(*string); ok {
		*text = string(raw)

		return nil
	}

	if err = json.Unmarshal(raw, value); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("key", key).Msg("failed to decode cached value")

		return fmt.Errorf("failed to unmarshal cache value: %w", err)
	}

	return nil
}

// Save stores value under key for ttlSeconds. Strings are stored raw and
// everything else as JSON.
func (cache *redisCache) Save(ctx context.Context, key string, value any, ttlSeconds int) (err error) {
	ctx, scope := cache.trace(ctx, "Save", key)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	payload, ok := value.(string)
	if !ok {
		encoded, err := json.Marshal(value)
		if err != nil {
			log.Error().Err(err).Str("key", key).Msg("failed to encode value for cache")

			return fmt.Errorf("failed to marshal cache value: %w", err)
		}

		payload = string(encoded)
	}

	if err = cache.client.Set(ctx, key, payload, time.Duration(ttlSeconds)*time.Second).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to write cache")

		return fmt.Errorf("failed to set cache value: %w", err)
	}

	log.Debug().Str("key", key).Int("ttl", ttlSeconds).Msg("cached")

	return nil
}
