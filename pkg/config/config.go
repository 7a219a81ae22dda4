// Package config provides configuration management for gifgrab. It handles
// loading, validating and saving the YAML configuration file and supplies
// defaults for every setting the file leaves out.
package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-version"
	"gopkg.in/yaml.v3"

	"github.com/glorpus-work/gifgrab/pkg/errors"
	"github.com/glorpus-work/gifgrab/pkg/fsutil"
)

// Config represents the application configuration.
type Config struct {
	// Version of the configuration file format.
	Version string `yaml:"version"`

	// General settings
	Settings Settings `yaml:"settings"`

	// Hook scripts
	Hooks HooksConfig `yaml:"hooks,omitempty"`
}

// Settings represents general application settings.
type Settings struct {
	// Cache settings
	CacheDir        string `yaml:"cache_dir,omitempty"`
	CacheMaxEntries int    `yaml:"cache_max_entries"`

	// Download settings
	MaxFileSize  int64         `yaml:"max_file_size"`
	PollInterval time.Duration `yaml:"poll_interval"`
	PollAttempts int           `yaml:"poll_attempts"`

	// Network settings
	HTTPTimeout   time.Duration `yaml:"http_timeout"`
	UserAgent     string        `yaml:"user_agent"`
	MaxConcurrent int           `yaml:"max_concurrent"`

	// Output settings
	OutputFormat string `yaml:"output_format"` // text, json
	LogLevel     string `yaml:"log_level"`     // debug, info, warn, error
}

// HooksConfig names the Tengo scripts run around each fetch. Empty paths disable the hook.
type HooksConfig struct {
	PreFetch  string `yaml:"pre_fetch,omitempty"`
	PostFetch string `yaml:"post_fetch,omitempty"`
}

// Default configuration values.
const (
	// CurrentVersion is written into new configuration files.
	CurrentVersion = "1"

	// SupportedVersions is the range of file versions this build reads.
	SupportedVersions = ">= 1, < 2"

	// DefaultCacheMaxEntries bounds the in-memory cache front.
	DefaultCacheMaxEntries = 64

	// DefaultMaxFileSize is the largest accepted GIF.
	DefaultMaxFileSize = 2 * 1024 * 1024

	// DefaultPollInterval and DefaultPollAttempts bound how long a request waits
	// for a concurrent download of the same URL.
	DefaultPollInterval = time.Second
	DefaultPollAttempts = 10

	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultUserAgent is sent with every download.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/60.0.3112.78 Safari/537.36"

	// DefaultMaxConcurrent is the default maximum number of concurrent downloads.
	DefaultMaxConcurrent = 4

	// YAMLIndent is the number of spaces to use for YAML indentation.
	YAMLIndent = 2
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	cacheDir, err := fsutil.GetCacheDir()
	if err != nil {
		// Fallback to the temp dir if we can't determine the user cache dir
		cacheDir = filepath.Join(os.TempDir(), fsutil.AppName)
	}

	return &Config{
		Version: CurrentVersion,
		Settings: Settings{
			CacheDir:        cacheDir,
			CacheMaxEntries: DefaultCacheMaxEntries,
			MaxFileSize:     DefaultMaxFileSize,
			PollInterval:    DefaultPollInterval,
			PollAttempts:    DefaultPollAttempts,
			HTTPTimeout:     DefaultHTTPTimeout,
			UserAgent:       DefaultUserAgent,
			MaxConcurrent:   DefaultMaxConcurrent,
			OutputFormat:    "text",
			LogLevel:        "info",
		},
	}
}

// LoadConfig loads configuration from a file. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errors.ErrEmptyConfigPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidConfigPath, err.Error())
	}

	file, err := os.Open(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, errors.Wrapf(err, "failed to open config file: %s", path)
	}
	defer func() { _ = file.Close() }()

	cfg, err := LoadConfigFromReader(file)
	if err != nil {
		return nil, err
	}
	cfg.resolveHookPaths(filepath.Dir(absPath))
	return cfg, nil
}

// LoadConfigFromReader loads configuration from an io.Reader.
func LoadConfigFromReader(reader io.Reader) (*Config, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config data")
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(errors.ErrConfigParse, err.Error())
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrConfigValidation, err.Error())
	}

	return &config, nil
}

// SaveConfig atomically writes the configuration to path.
func (c *Config) SaveConfig(path string) error {
	if path == "" {
		return errors.ErrEmptyConfigPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrap(errors.ErrInvalidConfigPath, err.Error())
	}

	data, err := c.ToYAML()
	if err != nil {
		return err
	}

	if err := fsutil.EnsureFileDir(absPath); err != nil {
		return errors.Wrap(errors.ErrConfigDirectory, err.Error())
	}

	if err := fsutil.WriteFileAtomic(absPath, data, fsutil.DirModeDefault, fsutil.FileModeDefault); err != nil {
		return errors.Wrap(errors.ErrConfigFileRename, err.Error())
	}

	return nil
}

// ToYAML converts the config to YAML bytes.
func (c *Config) ToYAML() ([]byte, error) {
	var sb strings.Builder
	encoder := yaml.NewEncoder(&sb)
	encoder.SetIndent(YAMLIndent)
	if err := encoder.Encode(c); err != nil {
		return nil, errors.Wrap(errors.ErrConfigMarshal, err.Error())
	}
	if err := encoder.Close(); err != nil {
		return nil, errors.Wrap(errors.ErrConfigEncode, err.Error())
	}
	return []byte(sb.String()), nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.ErrConfigValidation
	}
	if err := validateVersion(c.Version); err != nil {
		return err
	}
	return validateSettings(c.Settings)
}

func validateVersion(v string) error {
	constraint, err := version.NewConstraint(SupportedVersions)
	if err != nil {
		return errors.Wrap(err, "invalid version constraint")
	}
	parsed, err := version.NewVersion(v)
	if err != nil {
		return errors.ErrConfigVersionWithDetails(v, SupportedVersions)
	}
	if !constraint.Check(parsed) {
		return errors.ErrConfigVersionWithDetails(v, SupportedVersions)
	}
	return nil
}

func validateSettings(s Settings) error {
	if s.HTTPTimeout < 0 {
		return errors.ErrHTTPTimeoutNegative
	}
	if s.MaxConcurrent < 1 {
		return errors.ErrMaxConcurrentInvalid
	}
	if s.MaxFileSize <= 0 {
		return errors.ErrMaxFileSizeInvalid
	}
	if s.PollInterval <= 0 {
		return errors.ErrPollIntervalInvalid
	}
	if s.PollAttempts < 1 {
		return errors.ErrPollAttemptsInvalid
	}
	if s.CacheMaxEntries < 1 {
		return errors.ErrCacheEntriesInvalid
	}
	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[s.OutputFormat] {
		return errors.ErrInvalidOutputFormatWithDetails(s.OutputFormat)
	}
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(s.LogLevel)] {
		return errors.ErrInvalidLogLevelWithDetails(s.LogLevel)
	}
	return nil
}

// GetDefaultConfigPath returns the default configuration file path.
func GetDefaultConfigPath() (string, error) {
	configDir, err := fsutil.GetConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get user config directory")
	}
	return filepath.Join(configDir, "config.yaml"), nil
}

// GetCacheDir returns the base cache directory from settings.
func (c *Config) GetCacheDir() string {
	return c.Settings.CacheDir
}

// applyDefaults fills in missing values with defaults. Explicit negative
// values are left alone so Validate can reject them.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	if c.Version == "" {
		c.Version = defaults.Version
	}
	if c.Settings.CacheDir == "" {
		c.Settings.CacheDir = defaults.Settings.CacheDir
	}
	if c.Settings.CacheMaxEntries == 0 {
		c.Settings.CacheMaxEntries = defaults.Settings.CacheMaxEntries
	}
	if c.Settings.MaxFileSize == 0 {
		c.Settings.MaxFileSize = defaults.Settings.MaxFileSize
	}
	if c.Settings.PollInterval == 0 {
		c.Settings.PollInterval = defaults.Settings.PollInterval
	}
	if c.Settings.PollAttempts == 0 {
		c.Settings.PollAttempts = defaults.Settings.PollAttempts
	}
	if c.Settings.HTTPTimeout == 0 {
		c.Settings.HTTPTimeout = defaults.Settings.HTTPTimeout
	}
	if c.Settings.UserAgent == "" {
		c.Settings.UserAgent = defaults.Settings.UserAgent
	}
	if c.Settings.MaxConcurrent == 0 {
		c.Settings.MaxConcurrent = defaults.Settings.MaxConcurrent
	}
	if c.Settings.OutputFormat == "" {
		c.Settings.OutputFormat = defaults.Settings.OutputFormat
	}
	if c.Settings.LogLevel == "" {
		c.Settings.LogLevel = defaults.Settings.LogLevel
	}
}

// resolveHookPaths makes relative hook paths relative to the config file's directory.
func (c *Config) resolveHookPaths(base string) {
	if c.Hooks.PreFetch != "" && !filepath.IsAbs(c.Hooks.PreFetch) {
		c.Hooks.PreFetch = filepath.Join(base, c.Hooks.PreFetch)
	}
	if c.Hooks.PostFetch != "" && !filepath.IsAbs(c.Hooks.PostFetch) {
		c.Hooks.PostFetch = filepath.Join(base, c.Hooks.PostFetch)
	}
}
