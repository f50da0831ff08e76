package cache

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/go-redis/redis/v8"

	"osintranet-http-service/internal/infrastructure/config"
)

const scanBatch = 100

// RedisStore is a Store backed by Redis. Keys are namespaced so several
// services can share one database.
type RedisStore struct {
	Client    *redis.Client
	namespace string

	// GET 命中统计，连接池的 Hits/Misses 统计的是空闲连接复用
	hits   uint64
	misses uint64
}

// NewRedisStore creates a RedisStore from the configuration.
func NewRedisStore(cfg *config.Config) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	return NewRedisStoreWithClient(client, "osintranet:")
}

// NewRedisStoreWithClient wraps an existing client.
func NewRedisStoreWithClient(client *redis.Client, namespace string) *RedisStore {
	return &RedisStore{Client: client, namespace: namespace}
}

// 1 Get
func (s *RedisStore) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	val, err := s.Client.Get(ctx, s.namespace+key).Bytes()
	if err == redis.Nil {
		atomic.AddUint64(&s.misses, 1)
		return false, nil
	}
	if err != nil {
		return false, err
	}
	atomic.AddUint64(&s.hits, 1)
	return true, json.Unmarshal(val, dest)
}

// 2 Set
func (s *RedisStore) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, s.namespace+key, jsonValue, ttl).Err()
}

// 3 Delete
func (s *RedisStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	namespaced := make([]string, len(keys))
	for i, key := range keys {
		namespaced[i] = s.namespace + key
	}
	return s.Client.Del(ctx, namespaced...).Err()
}

// 4 DeletePrefix scans for keys under prefix and deletes them batch by batch.
func (s *RedisStore) DeletePrefix(ctx context.Context, prefix string) error {
	var cursor uint64
	for {
		keys, next, err := s.Client.Scan(ctx, cursor, s.namespace+prefix+"*", scanBatch).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := s.Client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

// 5 Stats
func (s *RedisStore) Stats() map[string]interface{} {
	poolStats := s.Client.PoolStats()
	return map[string]interface{}{
		"backend":       "redis",
		"addr":          s.Client.Options().Addr,
		"hits":          atomic.LoadUint64(&s.hits),
		"misses":        atomic.LoadUint64(&s.misses),
		"pool_hits":     poolStats.Hits,
		"pool_misses":   poolStats.Misses,
		"pool_timeouts": poolStats.Timeouts,
		"total_conns":   poolStats.TotalConns,
		"idle_conns":    poolStats.IdleConns,
	}
}

// Ping checks the connection.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.Client.Ping(ctx).Err()
}

// Close closes the client.
func (s *RedisStore) Close() error {
	return s.Client.Close()
}
