package fsutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ab", "abcdef")

	require.NoError(t, WriteFileAtomic(path, []byte("first"), DirModeSecure, FileModeSecure))
	require.NoError(t, WriteFileAtomic(path, []byte("second"), DirModeSecure, FileModeSecure))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(FileModeSecure), info.Mode().Perm())
	}
}

func TestMove(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(t *testing.T, dir string) (string, string)
		expectErr bool
	}{
		{
			name: "same filesystem into new directory",
			setup: func(t *testing.T, dir string) (string, string) {
				src := filepath.Join(dir, "src.gif")
				require.NoError(t, os.WriteFile(src, []byte("GIF89a"), FileModeDefault))
				return src, filepath.Join(dir, "nested", "dst.gif")
			},
		},
		{
			name: "missing source",
			setup: func(_ *testing.T, dir string) (string, string) {
				return filepath.Join(dir, "nope"), filepath.Join(dir, "dst")
			},
			expectErr: true,
		},
		{
			name: "empty paths",
			setup: func(_ *testing.T, _ string) (string, string) {
				return "", ""
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, dst := tt.setup(t, t.TempDir())
			err := Move(src, dst)
			if tt.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			_, err = os.Stat(src)
			assert.True(t, os.IsNotExist(err))
			data, err := os.ReadFile(dst)
			require.NoError(t, err)
			assert.Equal(t, "GIF89a", string(data))
		})
	}
}
