// Package cache is the data proxy cache placed in front of the repositories.
// Reference data is read through GetOrLoad and invalidated by key prefix when
// a command changes it.
package cache

import (
	"context"
	"time"

	"osintranet-http-service/internal/infrastructure/config"
	"osintranet-http-service/pkg/logger"
)

// Store is a TTL key/value cache holding JSON encoded values.
type Store interface {
	// Get decodes the value under key into dest. It reports false on a miss.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	DeletePrefix(ctx context.Context, prefix string) error
	Stats() map[string]interface{}
	Ping(ctx context.Context) error
	Close() error
}

// GetOrLoad returns the cached value under key or calls load and caches its
// result for ttl. Cache failures are logged and the loader result is used.
func GetOrLoad[T any](ctx context.Context, store Store, key string, ttl time.Duration, load func(context.Context) (T, error)) (T, error) {
	var cached T
	if store == nil {
		return load(ctx)
	}

	found, err := store.Get(ctx, key, &cached)
	if err != nil {
		logger.Warning("读取缓存失败 key=%s: %v", key, err)
	} else if found {
		return cached, nil
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}
	if err := store.Set(ctx, key, value, ttl); err != nil {
		logger.Warning("写入缓存失败 key=%s: %v", key, err)
	}
	return value, nil
}

// Invalidate removes every entry under the given prefixes.
func Invalidate(ctx context.Context, store Store, prefixes ...string) {
	if store == nil {
		return
	}
	for _, prefix := range prefixes {
		if err := store.DeletePrefix(ctx, prefix); err != nil {
			logger.Warning("清除缓存失败 prefix=%s: %v", prefix, err)
		}
	}
}

// NewStore returns a RedisStore when Redis is enabled and reachable and a
// MemoryStore otherwise.
func NewStore(cfg *config.Config) Store {
	if cfg.RedisEnabled {
		store := NewRedisStore(cfg)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := store.Ping(ctx)
		if err == nil {
			logger.Info("使用Redis缓存: %s", cfg.GetRedisAddr())
			return store
		}
		logger.Warning("Redis连接测试失败: %v，将使用内存缓存", err)
		store.Close()
	}
	return NewMemoryStore(time.Minute)
}
