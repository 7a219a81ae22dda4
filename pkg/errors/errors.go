// Package errors holds the sentinel errors shared across gifgrab and the
// helpers used to wrap them with context. Callers compare with the standard
// library's errors.Is and errors.As.
package errors

import "fmt"

// Common error types.
var (
	// Config errors.
	ErrEmptyConfigPath   = fmt.Errorf("config file path cannot be empty")
	ErrInvalidConfigPath = fmt.Errorf("invalid config file path")
	ErrConfigParse       = fmt.Errorf("failed to parse config")
	ErrConfigValidation  = fmt.Errorf("invalid configuration")
	ErrConfigEncode      = fmt.Errorf("failed to encode config")
	ErrConfigDirectory   = fmt.Errorf("failed to create config directory")
	ErrConfigFileCreate  = fmt.Errorf("failed to create config file")
	ErrConfigFileRename  = fmt.Errorf("failed to rename temporary config file")
	ErrConfigMarshal     = fmt.Errorf("failed to marshal config to YAML")
	ErrConfigFileExists  = fmt.Errorf("configuration file already exists (use --force to overwrite)")
	ErrConfigVersion     = fmt.Errorf("unsupported config version")

	// Settings validation errors.
	ErrHTTPTimeoutNegative  = fmt.Errorf("http_timeout cannot be negative")
	ErrMaxConcurrentInvalid = fmt.Errorf("max_concurrent must be at least 1")
	ErrMaxFileSizeInvalid   = fmt.Errorf("max_file_size must be positive")
	ErrPollIntervalInvalid  = fmt.Errorf("poll_interval must be positive")
	ErrPollAttemptsInvalid  = fmt.Errorf("poll_attempts must be at least 1")
	ErrCacheEntriesInvalid  = fmt.Errorf("cache_max_entries must be at least 1")
	ErrInvalidOutputFormat  = fmt.Errorf("invalid output format")
	ErrInvalidLogLevel      = fmt.Errorf("invalid log level")

	// Cache errors.
	ErrCacheClean     = fmt.Errorf("failed to clean cache")
	ErrCacheInfo      = fmt.Errorf("failed to get cache info")
	ErrCacheDirectory = fmt.Errorf("cache directory cannot be empty")
	ErrCacheExport    = fmt.Errorf("failed to export cache")
	ErrCacheImport    = fmt.Errorf("failed to import cache")

	// Download errors.
	ErrDownloadFailed = fmt.Errorf("download failed")
	ErrTooLarge       = fmt.Errorf("file exceeds maximum size")
	ErrNoBody         = fmt.Errorf("response has no body")
	ErrUnknownFile    = fmt.Errorf("unrecognized file type")
	ErrCacheRejected  = fmt.Errorf("cache rejected entry")
	ErrWaitExhausted  = fmt.Errorf("gave up waiting for in-flight download")
	ErrAssetSave      = fmt.Errorf("failed to save asset")

	// Hook errors.
	ErrHookTypeEmpty = fmt.Errorf("hook type cannot be empty")
	ErrHookExecution = fmt.Errorf("error executing hook")
	ErrHookScript    = fmt.Errorf("hook script error")
	ErrHookLoad      = fmt.Errorf("failed to load hook")
)

// Wrap wraps an error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// ErrInvalidOutputFormatWithDetails is a helper to create a wrapped error with the invalid format and valid options.
func ErrInvalidOutputFormatWithDetails(format string) error {
	return fmt.Errorf("%w: '%s', must be one of: text, json", ErrInvalidOutputFormat, format)
}

// ErrInvalidLogLevelWithDetails is a helper to create a wrapped error with the invalid level and valid options.
func ErrInvalidLogLevelWithDetails(level string) error {
	return fmt.Errorf("%w: '%s', must be one of: debug, info, warn, error", ErrInvalidLogLevel, level)
}

// ErrConfigVersionWithDetails reports a config version outside the supported range.
func ErrConfigVersionWithDetails(got, constraint string) error {
	return fmt.Errorf("%w: %q does not satisfy %q", ErrConfigVersion, got, constraint)
}
