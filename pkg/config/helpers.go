package config

import (
	"fmt"
	"strconv"
	"time"
)

// Keys lists every key accepted by GetValue and SetValue, in display order.
var Keys = []string{
	"cache_dir",
	"cache_max_entries",
	"max_file_size",
	"poll_interval",
	"poll_attempts",
	"http_timeout",
	"user_agent",
	"max_concurrent",
	"output_format",
	"log_level",
	"hooks.pre_fetch",
	"hooks.post_fetch",
}

// SetValue sets a configuration value by key. The result is not validated;
// call Validate before saving.
func (c *Config) SetValue(key, value string) error {
	var err error
	switch key {
	case "cache_dir":
		c.Settings.CacheDir = value
	case "cache_max_entries":
		c.Settings.CacheMaxEntries, err = strconv.Atoi(value)
	case "max_file_size":
		c.Settings.MaxFileSize, err = strconv.ParseInt(value, 10, 64)
	case "poll_interval":
		c.Settings.PollInterval, err = time.ParseDuration(value)
	case "poll_attempts":
		c.Settings.PollAttempts, err = strconv.Atoi(value)
	case "http_timeout":
		c.Settings.HTTPTimeout, err = time.ParseDuration(value)
	case "user_agent":
		c.Settings.UserAgent = value
	case "max_concurrent":
		c.Settings.MaxConcurrent, err = strconv.Atoi(value)
	case "output_format":
		c.Settings.OutputFormat = value
	case "log_level":
		c.Settings.LogLevel = value
	case "hooks.pre_fetch":
		c.Hooks.PreFetch = value
	case "hooks.post_fetch":
		c.Hooks.PostFetch = value
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}
	if err != nil {
		return fmt.Errorf("invalid value for %s: %s", key, value)
	}
	return nil
}

// GetValue returns the value for key as a string.
func (c *Config) GetValue(key string) (string, error) {
	switch key {
	case "cache_dir":
		return c.Settings.CacheDir, nil
	case "cache_max_entries":
		return strconv.Itoa(c.Settings.CacheMaxEntries), nil
	case "max_file_size":
		return strconv.FormatInt(c.Settings.MaxFileSize, 10), nil
	case "poll_interval":
		return c.Settings.PollInterval.String(), nil
	case "poll_attempts":
		return strconv.Itoa(c.Settings.PollAttempts), nil
	case "http_timeout":
		return c.Settings.HTTPTimeout.String(), nil
	case "user_agent":
		return c.Settings.UserAgent, nil
	case "max_concurrent":
		return strconv.Itoa(c.Settings.MaxConcurrent), nil
	case "output_format":
		return c.Settings.OutputFormat, nil
	case "log_level":
		return c.Settings.LogLevel, nil
	case "hooks.pre_fetch":
		return c.Hooks.PreFetch, nil
	case "hooks.post_fetch":
		return c.Hooks.PostFetch, nil
	default:
		return "", fmt.Errorf("unknown configuration key: %s", key)
	}
}

// ToMap returns every key with its current value.
// This is useful for displaying the configuration.
func (c *Config) ToMap() map[string]string {
	result := make(map[string]string, len(Keys))
	for _, key := range Keys {
		// Keys only holds names GetValue accepts.
		value, _ := c.GetValue(key)
		result[key] = value
	}
	return result
}
