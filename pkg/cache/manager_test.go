package cache_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/glorpus-work/gifgrab/pkg/cache"
	"github.com/glorpus-work/gifgrab/test/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultManager(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	userCacheDir, err := os.UserCacheDir()
	if err != nil {
		t.Skip("no user cache dir on this platform")
	}

	mgr, err := cache.NewDefaultManager()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(userCacheDir, "gifgrab"), mgr.GetDirectory())
}

func TestSetDirectory(t *testing.T) {
	tests := []struct {
		name        string
		directory   string
		expectError bool
	}{
		{name: "valid directory", directory: t.TempDir()},
		{name: "empty directory", directory: "", expectError: true},
		{name: "non-existent directory", directory: filepath.Join(t.TempDir(), "nonexistent")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mgr := cache.NewManager(t.TempDir())
			err := mgr.SetDirectory(tt.directory)
			if tt.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.directory, mgr.GetDirectory())
		})
	}
}

// populate inserts n distinct GIFs through a DiskStore and returns the total bytes written.
func populate(t *testing.T, dir string, n int) int64 {
	t.Helper()
	store, err := cache.NewDiskStore(dir, 0, 0)
	require.NoError(t, err)

	var total int64
	for i := 0; i < n; i++ {
		data := testutil.AnimatedGIF(t, i+1)
		require.True(t, store.Insert("https://example.com/"+string(rune('a'+i))+".gif", data))
		total += int64(len(data))
	}
	return total
}

func TestGetInfo(t *testing.T) {
	dir := t.TempDir()
	total := populate(t, dir, 3)

	info, err := cache.NewManager(dir).GetInfo()
	require.NoError(t, err)
	assert.Equal(t, dir, info.Directory)
	assert.Equal(t, 3, info.Assets)
	assert.Equal(t, total, info.TotalSize)
	assert.True(t, info.LastCleaned.IsZero())
}

func TestGetInfoNonExistentDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nonexistent")

	info, err := cache.NewManager(dir).GetInfo()
	require.NoError(t, err)
	assert.Equal(t, int64(0), info.TotalSize)
	assert.Equal(t, 0, info.Assets)
}

func TestCleanAll(t *testing.T) {
	dir := t.TempDir()
	total := populate(t, dir, 2)
	mgr := cache.NewManager(dir)

	result, err := mgr.Clean(cache.CleanOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Removed)
	assert.Equal(t, total, result.Freed)

	info, err := mgr.GetInfo()
	require.NoError(t, err)
	assert.Equal(t, 0, info.Assets)
	assert.False(t, info.LastCleaned.IsZero())
}

func TestCleanOlderThan(t *testing.T) {
	dir := t.TempDir()
	populate(t, dir, 2)

	var files []string
	require.NoError(t, filepath.WalkDir(filepath.Join(dir, "assets"), func(path string, d os.DirEntry, err error) error {
		if err == nil && !d.IsDir() {
			files = append(files, path)
		}
		return err
	}))
	require.Len(t, files, 2)
	old := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(files[0], old, old))

	result, err := cache.NewManager(dir).Clean(cache.CleanOptions{OlderThan: 24 * time.Hour})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Removed)

	_, err = os.Stat(files[0])
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(files[1])
	assert.NoError(t, err)
}

func TestCleanNonExistentDirectory(t *testing.T) {
	result, err := cache.NewManager(filepath.Join(t.TempDir(), "missing")).Clean(cache.CleanOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Removed)
}

func TestOperation_Clean(t *testing.T) {
	dir := t.TempDir()
	populate(t, dir, 2)
	op := cache.NewOperation(cache.NewManager(dir))

	msg, err := op.Clean(0)
	require.NoError(t, err)
	assert.Contains(t, msg, "Successfully cleaned cache")
	assert.Contains(t, msg, "Removed 2 assets")

	msg, err = op.Clean(0)
	require.NoError(t, err)
	assert.Contains(t, msg, "No files were removed from the cache")
}

func TestOperation_GetInfo(t *testing.T) {
	dir := t.TempDir()
	op := cache.NewOperation(cache.NewManager(dir))

	info, err := op.GetInfo()
	require.NoError(t, err)
	assert.Contains(t, info, "Cache Information:")
	assert.Contains(t, info, dir)
	assert.Contains(t, info, "0 B")
	assert.Contains(t, info, "Last Cleaned: never")
}

func TestOperation_SetDirectory(t *testing.T) {
	op := cache.NewOperation(cache.NewManager(t.TempDir()))

	newDir := filepath.Join(t.TempDir(), "new_cache")
	require.NoError(t, op.SetDirectory(newDir))
	assert.Equal(t, newDir, op.GetDirectory())

	err := op.SetDirectory("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cache directory cannot be empty")
}
