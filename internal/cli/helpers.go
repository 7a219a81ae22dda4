// Package cli implements the gifgrab commands. The cobra root command lives
// in cli/gifgrab and wires the global flags into the variables below.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/glorpus-work/gifgrab/internal/logger"
	"github.com/glorpus-work/gifgrab/pkg/cache"
	"github.com/glorpus-work/gifgrab/pkg/config"
	"github.com/glorpus-work/gifgrab/pkg/download"
	gghttp "github.com/glorpus-work/gifgrab/pkg/http"
	"github.com/glorpus-work/gifgrab/pkg/hooks"
)

// These variables will be set by the main package
var (
	ConfigPath   *string
	Verbose      *bool
	NoColor      *bool
	OutputFormat *string
)

// LogOutput receives log lines. The main package points it at stderr so
// command results on stdout stay parseable.
var LogOutput io.Writer

// loadConfig loads the configuration, applies CLI flag overrides and
// configures logging from the result.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(getConfigPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if OutputFormat != nil && *OutputFormat != "" {
		cfg.Settings.OutputFormat = *OutputFormat
	}
	if Verbose != nil && *Verbose {
		cfg.Settings.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	configureLogger(cfg)
	return cfg, nil
}

func configureLogger(cfg *config.Config) {
	format := logger.FormatText
	if cfg.Settings.OutputFormat == outputJSON {
		format = logger.FormatJSON
	}
	logger.SetOutput(LogOutput)
	logger.InitLogger(cfg.Settings.LogLevel, format)
}

func getConfigPath() string {
	if ConfigPath != nil && *ConfigPath != "" {
		return *ConfigPath
	}

	defaultPath, err := config.GetDefaultConfigPath()
	if err != nil {
		// An empty path makes LoadConfig and SaveConfig return a descriptive error
		logger.Warn("Failed to get default config path, using empty path", logger.Fields{"error": err.Error()})
		return ""
	}
	return defaultPath
}

func newStore(cfg *config.Config) (*cache.DiskStore, error) {
	store, err := cache.NewDiskStore(cfg.GetCacheDir(), cfg.Settings.CacheMaxEntries, int(cfg.Settings.MaxFileSize))
	if err != nil {
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}
	return store, nil
}

// newHookManager returns nil when no hook scripts are configured.
func newHookManager(cfg *config.Config) (*hooks.DefaultHookManager, error) {
	if cfg.Hooks.PreFetch == "" && cfg.Hooks.PostFetch == "" {
		return nil, nil
	}

	manager := hooks.NewHookManager()
	if cfg.Hooks.PreFetch != "" {
		if err := hooks.LoadHookFile(manager, hooks.PreFetch, cfg.Hooks.PreFetch); err != nil {
			return nil, err
		}
	}
	if cfg.Hooks.PostFetch != "" {
		if err := hooks.LoadHookFile(manager, hooks.PostFetch, cfg.Hooks.PostFetch); err != nil {
			return nil, err
		}
	}
	return manager, nil
}

func newCoordinator(cfg *config.Config, store cache.Store) (*download.Coordinator, error) {
	opts := []download.Option{
		download.WithClient(gghttp.NewHTTPClient(cfg.Settings.HTTPTimeout, cfg.Settings.UserAgent)),
		download.WithMaxFileSize(cfg.Settings.MaxFileSize),
		download.WithPolling(cfg.Settings.PollAttempts, cfg.Settings.PollInterval),
	}

	hookManager, err := newHookManager(cfg)
	if err != nil {
		return nil, err
	}
	if hookManager != nil {
		opts = append(opts, download.WithHooks(hookManager))
	}

	return download.NewCoordinator(store, opts...), nil
}

func isJSON(cfg *config.Config) bool {
	return cfg.Settings.OutputFormat == outputJSON
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func colorize(color, s string) string {
	if NoColor != nil && *NoColor {
		return s
	}
	return color + s + ansiReset
}

func outcomeLabel(o download.Outcome) string {
	switch o {
	case download.Success:
		return colorize(ansiGreen, o.String())
	case download.TooLarge, download.UnknownFile:
		return colorize(ansiYellow, o.String())
	default:
		return colorize(ansiRed, o.String())
	}
}
