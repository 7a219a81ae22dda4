package http

import (
	"context"
	"net/http"
	"net/http/cookiejar"
	"time"

	"golang.org/x/net/publicsuffix"

	"github.com/glorpus-work/gifgrab/pkg/errors"
)

// HTTPClient fetches remote assets the way a browser would: it keeps cookies
// per RFC 6265 across requests and sends a configurable User-Agent.
type HTTPClient struct {
	client    *http.Client
	userAgent string
}

// NewHTTPClient creates a client with the given overall timeout. An empty
// userAgent sends Go's default.
func NewHTTPClient(timeout time.Duration, userAgent string) *HTTPClient {
	return NewHTTPClientWithTransport(timeout, userAgent, nil)
}

// NewHTTPClientWithTransport is NewHTTPClient with a custom round tripper.
// A nil transport uses http.DefaultTransport.
func NewHTTPClientWithTransport(timeout time.Duration, userAgent string, transport http.RoundTripper) *HTTPClient {
	// cookiejar.New only fails on invalid options; a nil jar disables cookies.
	jar, _ := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	return &HTTPClient{
		client: &http.Client{
			Timeout:   timeout,
			Jar:       jar,
			Transport: transport,
		},
		userAgent: userAgent,
	}
}

// UserAgent returns the User-Agent header value sent with every request.
func (hc *HTTPClient) UserAgent() string {
	return hc.userAgent
}

// Get downloads rawURL, following redirects.
func (hc *HTTPClient) Get(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	if hc.userAgent != "" {
		req.Header.Set("User-Agent", hc.userAgent)
	}

	resp, err := hc.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "request failed")
	}
	return resp, nil
}
