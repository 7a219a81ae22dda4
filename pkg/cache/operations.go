package cache

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/glorpus-work/gifgrab/internal/logger"
	"github.com/glorpus-work/gifgrab/pkg/errors"
)

// Operation wraps a Manager and renders its results as human-readable text
// for the CLI.
type Operation struct {
	manager Manager
}

// NewOperation creates a new cache operation instance.
func NewOperation(manager Manager) *Operation {
	return &Operation{
		manager: manager,
	}
}

// Clean removes assets older than olderThan (all assets when zero).
func (op *Operation) Clean(olderThan time.Duration) (string, error) {
	logger.Debug("Cleaning cache", logger.Fields{
		"directory":  op.manager.GetDirectory(),
		"older_than": olderThan.String(),
	})

	result, err := op.manager.Clean(CleanOptions{OlderThan: olderThan})
	if err != nil {
		return "", fmt.Errorf("failed to clean cache: %w", err)
	}

	if result.Removed == 0 {
		return "No files were removed from the cache.", nil
	}
	return fmt.Sprintf("Successfully cleaned cache. Removed %d assets and freed %s of disk space.",
		result.Removed, humanize.IBytes(uint64(result.Freed))), nil
}

// GetInfo returns information about the cache.
func (op *Operation) GetInfo() (string, error) {
	info, err := op.manager.GetInfo()
	if err != nil {
		return "", fmt.Errorf("failed to get cache info: %w", err)
	}

	lastCleaned := "never"
	if !info.LastCleaned.IsZero() {
		lastCleaned = info.LastCleaned.Format(time.RFC1123)
	}

	return fmt.Sprintf(`Cache Information:
  Directory:    %s
  Total Size:   %s
  Assets:       %d
  Last Cleaned: %s`,
		info.Directory,
		humanize.IBytes(uint64(info.TotalSize)),
		info.Assets,
		lastCleaned,
	), nil
}

// Export writes a snapshot of the cache to w.
func (op *Operation) Export(ctx context.Context, w io.Writer) error {
	logger.Debug("Exporting cache", logger.Fields{"directory": op.manager.GetDirectory()})
	return NewSnapshotter(op.manager.GetDirectory()).Export(ctx, w)
}

// Import restores a snapshot previously written by Export.
func (op *Operation) Import(ctx context.Context, archivePath string) (string, error) {
	logger.Debug("Importing cache", logger.Fields{"directory": op.manager.GetDirectory(), "archive": archivePath})
	n, err := NewSnapshotter(op.manager.GetDirectory()).Import(ctx, archivePath)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Imported %d assets.", n), nil
}

// GetDirectory returns the cache directory path.
func (op *Operation) GetDirectory() string {
	return op.manager.GetDirectory()
}

// SetDirectory sets a new cache directory.
func (op *Operation) SetDirectory(dir string) error {
	if dir == "" {
		return errors.ErrCacheDirectory
	}

	logger.Debug("Setting cache directory", logger.Fields{"directory": dir})
	return op.manager.SetDirectory(dir)
}
