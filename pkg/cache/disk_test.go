package cache_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/glorpus-work/gifgrab/pkg/cache"
	pkgerrors "github.com/glorpus-work/gifgrab/pkg/errors"
	"github.com/glorpus-work/gifgrab/test/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testURL = "https://example.com/tv/SUCCESS.gif"

func TestNewDiskStore_EmptyDir(t *testing.T) {
	_, err := cache.NewDiskStore("", 0, 0)
	require.ErrorIs(t, err, pkgerrors.ErrCacheDirectory)
}

func TestDiskStore_InsertPersists(t *testing.T) {
	dir := t.TempDir()
	data := testutil.AnimatedGIF(t, 2)

	store, err := cache.NewDiskStore(dir, 4, 0)
	require.NoError(t, err)
	require.True(t, store.Insert(testURL, data))

	reopened, err := cache.NewDiskStore(dir, 4, 0)
	require.NoError(t, err)

	assert.True(t, reopened.Contains(testURL))
	require.True(t, reopened.TryLoad(testURL))

	got, ok := reopened.Get(testURL)
	require.True(t, ok)
	assert.Equal(t, data, got)
}

func TestDiskStore_ContainsAfterForget(t *testing.T) {
	store, err := cache.NewDiskStore(t.TempDir(), 4, 0)
	require.NoError(t, err)
	require.True(t, store.Insert(testURL, testutil.AnimatedGIF(t, 2)))

	store.Forget()

	assert.True(t, store.Contains(testURL), "disk copy must still be found")
	got, ok := store.Get(testURL)
	require.True(t, ok)
	assert.NotEmpty(t, got)
}

func TestDiskStore_RejectsOversized(t *testing.T) {
	store, err := cache.NewDiskStore(t.TempDir(), 4, 16)
	require.NoError(t, err)

	assert.False(t, store.Insert(testURL, make([]byte, 17)))
	assert.False(t, store.Insert(testURL, nil))
	assert.False(t, store.Contains(testURL))
}

// insertedAssetFile inserts a GIF under testURL and returns the file it was written to.
func insertedAssetFile(t *testing.T, store *cache.DiskStore) string {
	t.Helper()
	require.True(t, store.Insert(testURL, testutil.AnimatedGIF(t, 2)))

	var assetFile string
	require.NoError(t, filepath.WalkDir(filepath.Join(store.Directory(), "assets"), func(path string, d os.DirEntry, err error) error {
		if err == nil && !d.IsDir() {
			assetFile = path
		}
		return err
	}))
	require.NotEmpty(t, assetFile)
	return assetFile
}

func TestDiskStore_TryLoadDiscardsTamperedAsset(t *testing.T) {
	store, err := cache.NewDiskStore(t.TempDir(), 4, 0)
	require.NoError(t, err)
	assetFile := insertedAssetFile(t, store)
	require.NoError(t, os.WriteFile(assetFile, testutil.JPEG(t), 0o600))

	store.Forget()
	assert.False(t, store.TryLoad(testURL))
	_, err = os.Stat(assetFile)
	assert.True(t, os.IsNotExist(err), "tampered asset should be removed")
}

func TestDiskStore_KeysAreExact(t *testing.T) {
	store, err := cache.NewDiskStore(t.TempDir(), 4, 0)
	require.NoError(t, err)
	require.True(t, store.Insert(testURL, testutil.AnimatedGIF(t, 2)))

	assert.False(t, store.Contains(testURL+"?v=2"))
	assert.False(t, store.Contains("HTTPS://example.com/tv/SUCCESS.gif"))
}

func TestDiskStore_ContainsAgreesWithTryLoad(t *testing.T) {
	tests := []struct {
		name   string
		tamper func(t *testing.T, assetFile string)
	}{
		{
			name: "content no longer a gif",
			tamper: func(t *testing.T, assetFile string) {
				require.NoError(t, os.WriteFile(assetFile, testutil.JPEG(t), 0o600))
			},
		},
		{
			name: "unreadable file",
			tamper: func(t *testing.T, assetFile string) {
				if runtime.GOOS == "windows" || os.Geteuid() == 0 {
					t.Skip("file permissions are not enforced for this user")
				}
				require.NoError(t, os.Chmod(assetFile, 0o000))
				t.Cleanup(func() { _ = os.Chmod(assetFile, 0o600) })
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := cache.NewDiskStore(t.TempDir(), 4, 0)
			require.NoError(t, err)
			assetFile := insertedAssetFile(t, store)
			tt.tamper(t, assetFile)
			store.Forget()

			assert.False(t, store.Contains(testURL))
			assert.False(t, store.TryLoad(testURL))
			_, ok := store.Get(testURL)
			assert.False(t, ok)
		})
	}
}

func TestDiskStore_ContainsDoesNotPromote(t *testing.T) {
	store, err := cache.NewDiskStore(t.TempDir(), 4, 0)
	require.NoError(t, err)
	assetFile := insertedAssetFile(t, store)
	store.Forget()

	assert.True(t, store.Contains(testURL))

	// a file replaced after the check must not be served from memory
	require.NoError(t, os.WriteFile(assetFile, testutil.JPEG(t), 0o600))
	assert.False(t, store.TryLoad(testURL))
}
