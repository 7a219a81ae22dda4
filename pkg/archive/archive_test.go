package archive

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_CreateAndExtractAll(t *testing.T) {
	tempDir := t.TempDir()

	testFiles := map[string]string{
		"ab/ab01":     "GIF89a one",
		"cd/cd02":     "GIF89a two",
		"cd/nested/x": "deeper",
	}

	sourceDir := filepath.Join(tempDir, "source")
	for path, content := range testFiles {
		fullPath := filepath.Join(sourceDir, filepath.FromSlash(path))
		require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0o755))
		require.NoError(t, os.WriteFile(fullPath, []byte(content), 0o644))
	}

	am := NewManager()
	ctx := context.Background()

	archivePath := filepath.Join(tempDir, "snapshot.tar.gz")
	out, err := os.Create(archivePath)
	require.NoError(t, err)
	require.NoError(t, am.Create(ctx, sourceDir, out))
	require.NoError(t, out.Close())

	extractDir := filepath.Join(tempDir, "extracted")
	require.NoError(t, am.ExtractAll(ctx, archivePath, extractDir))

	for path, expected := range testFiles {
		content, err := os.ReadFile(filepath.Join(extractDir, filepath.FromSlash(path)))
		require.NoError(t, err, "file %s was not extracted", path)
		assert.Equal(t, expected, string(content))
	}
}

func TestManager_ExtractAll_MissingArchive(t *testing.T) {
	am := NewManager()
	err := am.ExtractAll(context.Background(), filepath.Join(t.TempDir(), "nope.tar.gz"), t.TempDir())
	require.Error(t, err)
}

func TestManager_ExtractAll_Cancelled(t *testing.T) {
	tempDir := t.TempDir()
	sourceDir := filepath.Join(tempDir, "source")
	require.NoError(t, os.MkdirAll(sourceDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sourceDir, "a"), []byte("a"), 0o644))

	am := NewManager()
	archivePath := filepath.Join(tempDir, "snapshot.tar.gz")
	out, err := os.Create(archivePath)
	require.NoError(t, err)
	require.NoError(t, am.Create(context.Background(), sourceDir, out))
	require.NoError(t, out.Close())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.Error(t, am.ExtractAll(ctx, archivePath, filepath.Join(tempDir, "out")))
}
