package cache

import "github.com/glorpus-work/gifgrab/pkg/fsutil"

const (
	// DirPerm is the permission mode for cache directories.
	DirPerm = fsutil.DirModeSecure
	// FilePerm is the permission mode for cached assets.
	FilePerm = fsutil.FileModeSecure

	// DefaultMaxEntries bounds the in-memory LRU.
	DefaultMaxEntries = 64
	// DefaultMaxEntrySize matches the download size limit.
	DefaultMaxEntrySize = 2 * 1024 * 1024

	assetsDirName     = "assets"
	lastCleanedMarker = ".last-cleaned"
	shardPrefixLen    = 2
)
