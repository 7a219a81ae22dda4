//go:generate mockgen -destination=mocks/http.go . Client
package http

import (
	"context"
	"net/http"
)

// Client defines the interface for HTTP operations.
type Client interface {
	// Get issues a GET for rawURL. A non-nil response must have its body closed
	// by the caller. Status codes are not interpreted.
	Get(ctx context.Context, rawURL string) (*http.Response, error)
}
