//go:generate mockgen -destination=./mocks/cache.go . Store

package cache

import "time"

// Store is the asset cache consulted and filled by the download coordinator.
// Keys are URLs compared byte for byte. Implementations must be safe for
// concurrent use, and a successful Insert must be visible to every later
// Contains call from any goroutine.
type Store interface {
	// Contains reports whether key is cached.
	Contains(key string) bool
	// TryLoad makes the cached bytes for key ready to serve and reports whether
	// they were present.
	TryLoad(key string) bool
	// Insert stores data under key and reports whether the store accepted it.
	Insert(key string, data []byte) bool
	// Get returns the cached bytes for key. The slice must not be modified.
	Get(key string) ([]byte, bool)
}

// Manager defines the interface for disk cache maintenance.
type Manager interface {
	Clean(options CleanOptions) (*CleanResult, error)
	GetInfo() (*Info, error)
	GetDirectory() string
	SetDirectory(dir string) error
}

// CleanOptions specifies what to clean from the cache.
type CleanOptions struct {
	// OlderThan limits cleaning to assets last written before now-OlderThan.
	// Zero removes everything.
	OlderThan time.Duration
}

// CleanResult contains information about what was cleaned.
type CleanResult struct {
	Freed   int64
	Removed int
}

// Info represents cache information.
type Info struct {
	Directory   string
	TotalSize   int64
	Assets      int
	LastCleaned time.Time
}
