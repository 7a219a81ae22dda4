package cache

import (
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/glorpus-work/gifgrab/pkg/errors"
	"github.com/glorpus-work/gifgrab/pkg/fsutil"
)

// DefaultManager implements the Manager interface for the disk cache layout
// written by DiskStore.
type DefaultManager struct {
	directory string
	now       func() time.Time
}

// NewManager creates a new cache manager.
func NewManager(directory string) *DefaultManager {
	return &DefaultManager{
		directory: directory,
		now:       time.Now,
	}
}

// NewDefaultManager creates a new cache manager with default directory.
func NewDefaultManager() (*DefaultManager, error) {
	cacheDir, err := fsutil.GetCacheDir()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get user cache directory")
	}

	if err := os.MkdirAll(cacheDir, DirPerm); err != nil {
		return nil, errors.Wrapf(err, "failed to create cache directory")
	}

	return NewManager(cacheDir), nil
}

// Clean removes cached assets according to the specified options.
func (cm *DefaultManager) Clean(options CleanOptions) (*CleanResult, error) {
	result := &CleanResult{}
	dir := assetsDir(cm.directory)

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return result, nil
	}

	var cutoff time.Time
	if options.OlderThan > 0 {
		cutoff = cm.now().Add(-options.OlderThan)
	}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		if !cutoff.IsZero() && !info.ModTime().Before(cutoff) {
			return nil
		}
		if err := os.Remove(path); err != nil {
			return errors.Wrapf(err, "failed to remove %s", path)
		}
		result.Freed += info.Size()
		result.Removed++
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCacheClean, err.Error())
	}

	if err := cm.markCleaned(); err != nil {
		return result, errors.Wrap(errors.ErrCacheClean, err.Error())
	}
	return result, nil
}

// GetInfo returns information about the cache.
func (cm *DefaultManager) GetInfo() (*Info, error) {
	info := &Info{Directory: cm.directory}

	size, count, err := getDirSizeAndFiles(assetsDir(cm.directory))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCacheInfo, err.Error())
	}
	info.TotalSize = size
	info.Assets = count

	if st, err := os.Stat(filepath.Join(cm.directory, lastCleanedMarker)); err == nil {
		info.LastCleaned = st.ModTime()
	}

	return info, nil
}

// GetDirectory returns the cache directory path.
func (cm *DefaultManager) GetDirectory() string {
	return cm.directory
}

// SetDirectory sets the cache directory path.
func (cm *DefaultManager) SetDirectory(dir string) error {
	if dir == "" {
		return errors.ErrCacheDirectory
	}
	cm.directory = dir
	return nil
}

func (cm *DefaultManager) markCleaned() error {
	marker := filepath.Join(cm.directory, lastCleanedMarker)
	if err := os.WriteFile(marker, nil, FilePerm); err != nil {
		return err
	}
	now := cm.now()
	return os.Chtimes(marker, now, now)
}

// getDirSizeAndFiles calculates directory size and file count.
// A missing directory counts as empty.
func getDirSizeAndFiles(dir string) (size int64, count int, err error) {
	if _, err = os.Stat(dir); os.IsNotExist(err) {
		return 0, 0, nil
	}

	err = filepath.WalkDir(dir, func(_ string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		size += info.Size()
		count++
		return nil
	})
	if err != nil {
		err = errors.Wrapf(err, "error walking directory %s", dir)
	}
	return size, count, err
}
