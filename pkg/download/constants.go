package download

import "time"

const (
	// MaxFileSize is the largest GIF accepted, in bytes.
	MaxFileSize = 2 * 1024 * 1024
	// PollAttempts bounds how often a caller re-checks the cache while another
	// caller downloads the same URL.
	PollAttempts = 10
	// PollInterval is the delay between those checks.
	PollInterval = time.Second
	// DefaultTimeout applies to the whole HTTP exchange.
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent identifies as Chrome 60 on Windows 10. Some hosts
	// refuse requests without a browser user agent.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/60.0.3112.78 Safari/537.36"
)

const (
	msgSuccess      = "Successfully processed GIF"
	msgFailed       = "Could not retrieve GIF"
	msgWaitFailed   = "Unable to process GIF"
	msgUnknownFile  = "The file is not a GIF"
	msgCacheRefused = "Could not store GIF"
	msgBlocked      = "Download blocked by pre-fetch hook"
)
