package cache

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"
)

// 缓存条目
type memoryEntry struct {
	content    []byte
	expiration time.Time
}

// MemoryStore is an in-process Store guarded by a single lock.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]memoryEntry
	hits  uint64
	miss  uint64

	stop     chan struct{}
	stopOnce sync.Once
	now      func() time.Time
}

// NewMemoryStore creates a MemoryStore whose janitor removes expired entries
// every cleanupInterval. A non-positive interval disables the janitor.
func NewMemoryStore(cleanupInterval time.Duration) *MemoryStore {
	s := &MemoryStore{
		items: make(map[string]memoryEntry),
		stop:  make(chan struct{}),
		now:   time.Now,
	}
	if cleanupInterval > 0 {
		go s.janitor(cleanupInterval)
	}
	return s
}

// 1 Get
func (s *MemoryStore) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	s.mu.RLock()
	entry, found := s.items[key]
	s.mu.RUnlock()

	if !found || !entry.expiration.After(s.now()) {
		s.mu.Lock()
		s.miss++
		s.mu.Unlock()
		return false, nil
	}

	s.mu.Lock()
	s.hits++
	s.mu.Unlock()
	return true, json.Unmarshal(entry.content, dest)
}

// 2 Set
func (s *MemoryStore) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	content, err := json.Marshal(value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.items[key] = memoryEntry{content: content, expiration: s.now().Add(ttl)}
	s.mu.Unlock()
	return nil
}

// 3 Delete
func (s *MemoryStore) Delete(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range keys {
		delete(s.items, key)
	}
	return nil
}

// 4 DeletePrefix 根据前缀清除缓存
func (s *MemoryStore) DeletePrefix(_ context.Context, prefix string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.items {
		if strings.HasPrefix(key, prefix) {
			delete(s.items, key)
		}
	}
	return nil
}

// 5 Stats 获取缓存统计信息
func (s *MemoryStore) Stats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	items := make([]map[string]interface{}, 0, len(s.items))
	for key, entry := range s.items {
		items = append(items, map[string]interface{}{
			"key":        key,
			"size":       len(entry.content),
			"expiration": entry.expiration.Format(time.RFC3339),
			"expired":    !entry.expiration.After(now),
		})
	}
	return map[string]interface{}{
		"backend":     "memory",
		"total_items": len(s.items),
		"hits":        s.hits,
		"misses":      s.miss,
		"items":       items,
	}
}

// Ping always succeeds.
func (s *MemoryStore) Ping(context.Context) error {
	return nil
}

// Close stops the janitor.
func (s *MemoryStore) Close() error {
	s.stopOnce.Do(func() { close(s.stop) })
	return nil
}

func (s *MemoryStore) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.cleanExpired()
		case <-s.stop:
			return
		}
	}
}

// cleanExpired 清理过期缓存
func (s *MemoryStore) cleanExpired() {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, entry := range s.items {
		if !entry.expiration.After(now) {
			delete(s.items, key)
		}
	}
}
