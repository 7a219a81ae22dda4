package cache

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/glorpus-work/gifgrab/internal/logger"
	"github.com/glorpus-work/gifgrab/pkg/archive"
	"github.com/glorpus-work/gifgrab/pkg/errors"
	"github.com/glorpus-work/gifgrab/pkg/fsutil"
	"github.com/glorpus-work/gifgrab/pkg/sniff"
)

// Snapshotter exports and imports the assets of a disk cache as tar.gz.
type Snapshotter struct {
	dir      string
	archiver *archive.Manager
}

// NewSnapshotter creates a Snapshotter for the cache rooted at dir.
func NewSnapshotter(dir string) *Snapshotter {
	return &Snapshotter{dir: dir, archiver: archive.NewManager()}
}

// Export writes every cached asset to w.
func (s *Snapshotter) Export(ctx context.Context, w io.Writer) error {
	if err := os.MkdirAll(assetsDir(s.dir), DirPerm); err != nil {
		return errors.Wrap(errors.ErrCacheExport, err.Error())
	}
	if err := s.archiver.Create(ctx, assetsDir(s.dir), w); err != nil {
		return errors.Wrap(errors.ErrCacheExport, err.Error())
	}
	return nil
}

// Import extracts the snapshot at archivePath and moves every entry that is
// named like an asset and sniffs as a GIF into the cache. Other entries are
// skipped. It returns the number of imported assets.
func (s *Snapshotter) Import(ctx context.Context, archivePath string) (int, error) {
	if err := os.MkdirAll(s.dir, DirPerm); err != nil {
		return 0, errors.Wrap(errors.ErrCacheImport, err.Error())
	}
	staging, err := os.MkdirTemp(s.dir, ".import-*")
	if err != nil {
		return 0, errors.Wrap(errors.ErrCacheImport, err.Error())
	}
	defer func() { _ = os.RemoveAll(staging) }()

	if err := s.archiver.ExtractAll(ctx, archivePath, staging); err != nil {
		return 0, errors.Wrap(errors.ErrCacheImport, err.Error())
	}

	imported := 0
	err = filepath.WalkDir(staging, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		name := d.Name()
		if !isAssetName(name) || !validAsset(path) {
			logger.Debug("Skipping snapshot entry", logger.Fields{"entry": path})
			return nil
		}
		if err := fsutil.Move(path, assetPathForHash(s.dir, name)); err != nil {
			return err
		}
		imported++
		return nil
	})
	if err != nil {
		return imported, errors.Wrap(errors.ErrCacheImport, err.Error())
	}
	return imported, nil
}

func validAsset(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 || info.Size() > DefaultMaxEntrySize {
		return false
	}
	data, err := os.ReadFile(path) //nolint:gosec // path is inside our staging directory
	if err != nil {
		return false
	}
	return (sniff.Validator{}).Validate(data) == nil
}
