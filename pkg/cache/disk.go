package cache

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/glorpus-work/gifgrab/internal/logger"
	"github.com/glorpus-work/gifgrab/pkg/errors"
	"github.com/glorpus-work/gifgrab/pkg/fsutil"
	"github.com/glorpus-work/gifgrab/pkg/sniff"
)

// DiskStore persists assets under a directory and keeps recently loaded
// assets in a MemoryStore in front of it.
//
// Layout: <dir>/assets/<first two hex chars>/<sha256(url)>.
type DiskStore struct {
	dir          string
	memory       *MemoryStore
	maxEntrySize int
}

// NewDiskStore creates a disk-backed store rooted at dir.
func NewDiskStore(dir string, maxEntries, maxEntrySize int) (*DiskStore, error) {
	if dir == "" {
		return nil, errors.ErrCacheDirectory
	}
	if err := os.MkdirAll(assetsDir(dir), DirPerm); err != nil {
		return nil, errors.Wrapf(err, "failed to create cache directory %s", dir)
	}
	memory := NewMemoryStore(maxEntries, maxEntrySize)
	return &DiskStore{
		dir:          dir,
		memory:       memory,
		maxEntrySize: memory.maxEntrySize,
	}, nil
}

// Directory returns the cache root.
func (d *DiskStore) Directory() string {
	return d.dir
}

// Contains reports whether key is in memory or has a usable copy on disk.
// A disk copy counts only if TryLoad would accept it.
func (d *DiskStore) Contains(key string) bool {
	if d.memory.Contains(key) {
		return true
	}
	_, err := d.readAsset(assetPath(d.dir, key))
	return err == nil
}

// TryLoad promotes the asset for key into memory. Files that are oversized
// or no longer sniff as a GIF are treated as missing and removed.
func (d *DiskStore) TryLoad(key string) bool {
	if d.memory.TryLoad(key) {
		return true
	}

	path := assetPath(d.dir, key)
	data, err := d.readAsset(path)
	if err != nil {
		if stderrors.Is(err, errInvalidAsset) {
			logger.Warn("Discarding invalid cached asset", logger.Fields{"url": key, "path": path})
			_ = os.Remove(path)
		}
		return false
	}
	return d.memory.Insert(key, data)
}

var errInvalidAsset = fmt.Errorf("invalid cached asset")

func (d *DiskStore) readAsset(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from a hash, not user input
	if err != nil {
		return nil, err
	}
	if len(data) > d.maxEntrySize || (sniff.Validator{}).Validate(data) != nil {
		return nil, errInvalidAsset
	}
	return data, nil
}

// Insert writes data to disk and memory. It returns false when data is empty,
// exceeds the entry size limit, or cannot be written.
func (d *DiskStore) Insert(key string, data []byte) bool {
	if len(data) == 0 || len(data) > d.maxEntrySize {
		return false
	}
	path := assetPath(d.dir, key)
	if err := fsutil.WriteFileAtomic(path, data, DirPerm, FilePerm); err != nil {
		logger.Error("Failed to write cached asset", logger.Fields{"url": key, "error": err.Error()})
		return false
	}
	return d.memory.Insert(key, data)
}

// Get returns the bytes for key, loading them from disk when needed.
func (d *DiskStore) Get(key string) ([]byte, bool) {
	if data, ok := d.memory.Get(key); ok {
		return data, true
	}
	if !d.TryLoad(key) {
		return nil, false
	}
	return d.memory.Get(key)
}

// Forget drops every asset from the in-memory front. Disk contents are kept.
func (d *DiskStore) Forget() {
	d.memory.Purge()
}
