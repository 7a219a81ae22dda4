package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCacheDir(t *testing.T) {
	userCacheDir, err := os.UserCacheDir()
	if err != nil {
		t.Skip("no user cache dir on this platform")
	}

	dir, err := GetCacheDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(userCacheDir, AppName), dir)
}

func TestGetConfigDir(t *testing.T) {
	if _, err := os.UserConfigDir(); err != nil {
		t.Skip("no user config dir on this platform")
	}

	dir, err := GetConfigDir()
	require.NoError(t, err)

	assert.Equal(t, AppName, filepath.Base(dir))
	assert.True(t, filepath.IsAbs(dir))
}

func TestCacheAndConfigDirsDiffer(t *testing.T) {
	if _, err := os.UserConfigDir(); err != nil {
		t.Skip("no user config dir on this platform")
	}
	cacheDir, err := GetCacheDir()
	require.NoError(t, err)
	configDir, err := GetConfigDir()
	require.NoError(t, err)

	assert.NotEqual(t, cacheDir, configDir)
}
