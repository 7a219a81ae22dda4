package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// MemoryStore is a bounded in-memory Store. When full, the least recently
// used entry is evicted.
type MemoryStore struct {
	entries      *lru.Cache[string, []byte]
	maxEntrySize int
}

// NewMemoryStore creates a MemoryStore holding at most maxEntries assets of
// at most maxEntrySize bytes each. Non-positive values select the defaults.
func NewMemoryStore(maxEntries, maxEntrySize int) *MemoryStore {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	if maxEntrySize <= 0 {
		maxEntrySize = DefaultMaxEntrySize
	}
	// lru.New only fails for a non-positive size.
	entries, _ := lru.New[string, []byte](maxEntries)
	return &MemoryStore{entries: entries, maxEntrySize: maxEntrySize}
}

// Contains reports whether key is cached without touching its recency.
func (m *MemoryStore) Contains(key string) bool {
	return m.entries.Contains(key)
}

// TryLoad reports whether key is cached and marks it recently used.
func (m *MemoryStore) TryLoad(key string) bool {
	_, ok := m.entries.Get(key)
	return ok
}

// Insert stores a copy of data. Empty or oversized data is rejected.
func (m *MemoryStore) Insert(key string, data []byte) bool {
	if len(data) == 0 || len(data) > m.maxEntrySize {
		return false
	}
	m.entries.Add(key, append([]byte(nil), data...))
	return true
}

// Get returns the cached bytes for key.
func (m *MemoryStore) Get(key string) ([]byte, bool) {
	return m.entries.Get(key)
}

// Remove drops key from the store.
func (m *MemoryStore) Remove(key string) {
	m.entries.Remove(key)
}

// Purge drops every entry.
func (m *MemoryStore) Purge() {
	m.entries.Purge()
}

// Len returns the number of cached entries.
func (m *MemoryStore) Len() int {
	return m.entries.Len()
}
