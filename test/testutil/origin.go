package testutil

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
)

// Origin is an httptest server that serves canned responses per path and
// counts how often each path was requested.
type Origin struct {
	Server *httptest.Server

	mu        sync.Mutex
	routes    map[string]http.HandlerFunc
	hits      map[string]int
	userAgent string
}

// NewOrigin starts an origin server that is closed when the test ends.
func NewOrigin(t *testing.T) *Origin {
	t.Helper()
	o := &Origin{
		routes: make(map[string]http.HandlerFunc),
		hits:   make(map[string]int),
	}
	o.Server = httptest.NewServer(http.HandlerFunc(o.serve))
	t.Cleanup(o.Server.Close)
	return o
}

func (o *Origin) serve(w http.ResponseWriter, r *http.Request) {
	o.mu.Lock()
	o.hits[r.URL.Path]++
	o.userAgent = r.UserAgent()
	h, ok := o.routes[r.URL.Path]
	o.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}
	h(w, r)
}

// Handle registers h for path.
func (o *Origin) Handle(path string, h http.HandlerFunc) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.routes[path] = h
}

// ServeBytes registers a 200 response with body and the declared contentType.
func (o *Origin) ServeBytes(path, contentType string, body []byte) {
	o.Handle(path, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Length", strconv.Itoa(len(body)))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	})
}

// URL returns the absolute URL for path.
func (o *Origin) URL(path string) string {
	return o.Server.URL + path
}

// Hits returns how many requests path has received.
func (o *Origin) Hits(path string) int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.hits[path]
}

// LastUserAgent returns the User-Agent of the most recent request.
func (o *Origin) LastUserAgent() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.userAgent
}
