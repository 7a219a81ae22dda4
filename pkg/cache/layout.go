package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"path/filepath"
)

// keyHash returns the hex SHA-256 of a URL key. URLs are hashed because they
// are not safe file names.
func keyHash(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

func assetsDir(root string) string {
	return filepath.Join(root, assetsDirName)
}

func assetPathForHash(root, hash string) string {
	return filepath.Join(assetsDir(root), hash[:shardPrefixLen], hash)
}

func assetPath(root, key string) string {
	return assetPathForHash(root, keyHash(key))
}

func isAssetName(name string) bool {
	if len(name) != sha256.Size*2 {
		return false
	}
	_, err := hex.DecodeString(name)
	return err == nil
}
