package cache

import (
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryStore is a simple in-memory key-value store with expiration
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]*memoryItem
	now   func() time.Time
	done  chan struct{}
	once  sync.Once
}

type memoryItem struct {
	value      []byte
	expireTime time.Time // zero means no expiry
}

// NewMemoryStore creates a new in-memory store that purges expired items every interval.
// A non-positive interval disables the background cleanup.
func NewMemoryStore(interval time.Duration) *MemoryStore {
	store := &MemoryStore{
		items: make(map[string]*memoryItem),
		now:   time.Now,
		done:  make(chan struct{}),
	}

	if interval > 0 {
		go store.cleanupExpired(interval)
	}

	return store
}

// Set stores a key-value pair. A non-positive expiration keeps the item forever.
func (ms *MemoryStore) Set(key string, value []byte, expiration time.Duration) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	item := &memoryItem{value: append([]byte(nil), value...)}
	if expiration > 0 {
		item.expireTime = ms.now().Add(expiration)
	}
	ms.items[key] = item
}

// Get retrieves a value by key (returns false if not found or expired)
func (ms *MemoryStore) Get(key string) ([]byte, bool) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	item, exists := ms.items[key]
	if !exists || ms.expired(item) {
		return nil, false
	}

	return append([]byte(nil), item.value...), true
}

// Delete removes a key
func (ms *MemoryStore) Delete(key string) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	delete(ms.items, key)
}

// Keys returns the live keys starting with prefix, sorted
func (ms *MemoryStore) Keys(prefix string) []string {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	keys := make([]string, 0)
	for key, item := range ms.items {
		if strings.HasPrefix(key, prefix) && !ms.expired(item) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

// Close stops the cleanup goroutine
func (ms *MemoryStore) Close() {
	ms.once.Do(func() { close(ms.done) })
}

func (ms *MemoryStore) expired(item *memoryItem) bool {
	return !item.expireTime.IsZero() && ms.now().After(item.expireTime)
}

// cleanupExpired periodically removes expired items
func (ms *MemoryStore) cleanupExpired(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ms.done:
			return
		case <-ticker.C:
			ms.purge()
		}
	}
}

func (ms *MemoryStore) purge() {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	for key, item := range ms.items {
		if ms.expired(item) {
			delete(ms.items, key)
		}
	}
}
