package hooks

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/glorpus-work/gifgrab/pkg/errors"
)

// HookFileExtension is the extension of hook scripts found by LoadHooksFromDir.
const HookFileExtension = ".tengo"

// LoadHookFile reads the script at path and registers it as hookType.
func LoadHookFile(manager HookManager, hookType HookType, path string) error {
	if !hookType.Valid() {
		return ErrUnsupportedHookType(hookType)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(errors.ErrHookLoad, "error reading hook file %s: %v", path, err)
	}

	if err := manager.AddHook(Hook{Type: hookType, Content: string(content), Source: path}); err != nil {
		return errors.Wrapf(err, "error adding hook %s", hookType)
	}
	return nil
}

// LoadHooksFromDir registers every <hook-type>.tengo file found directly in
// dir. Other files are ignored. A missing dir is not an error.
func LoadHooksFromDir(manager HookManager, dir string) error {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "failed to read hooks directory %s", dir)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != HookFileExtension {
			continue
		}

		hookType := HookType(strings.TrimSuffix(entry.Name(), HookFileExtension))
		if !hookType.Valid() {
			continue
		}

		if err := LoadHookFile(manager, hookType, filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
	}

	return nil
}

// HookTemplate generates a template for a hooks script.
func HookTemplate(hookType HookType) string {
	switch hookType {
	case PreFetch:
		return `// Pre-fetch hook
// This script runs before a GIF is downloaded. It is skipped when the GIF
// is already cached.
// Available variables:
// - url: string - the URL about to be fetched
// - err: string - assign a non-empty message to block the download
// The same values are available from the "context" module.

// Example: only allow one host
/*
text := import("text")
if !text.has_prefix(url, "https://media.example.com/") {
    err = "host not allowed: " + url
}
*/`

	case PostFetch:
		return `// Post-fetch hook
// This script runs after every fetch, whatever its outcome.
// Available variables:
// - url: string - the fetched URL
// - outcome: string - SUCCESS, FAILED, TOO_LARGE or UNKNOWN_FILE
// - size: int - bytes downloaded, 0 when served from cache
// Errors raised here are logged and otherwise ignored.

// Example: print large downloads
/*
fmt := import("fmt")
if outcome == "SUCCESS" && size > 1000000 {
    fmt.println("large gif: ", url)
}
*/`

	default:
		return "// Unknown hooks type: " + string(hookType)
	}
}
