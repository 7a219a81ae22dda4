// Package inflight tracks which URLs are currently being downloaded so that
// concurrent requests for the same URL share one transfer.
package inflight

import "sync"

// Registry is a set of keys with an active transfer. All operations are
// linearized by a single mutex and never block beyond its hold time.
// The zero value is ready to use.
type Registry struct {
	mu     sync.Mutex
	active map[string]chan struct{}
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{active: make(map[string]chan struct{})}
}

// MarkActive adds key. Marking an already active key is a no-op.
func (r *Registry) MarkActive(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.active == nil {
		r.active = make(map[string]chan struct{})
	}
	if _, ok := r.active[key]; ok {
		return
	}
	r.active[key] = make(chan struct{})
}

// TryMarkActive adds key and reports true, unless key is already active, in
// which case it leaves the registry unchanged and reports false. It is the
// atomic form of IsActive followed by MarkActive.
func (r *Registry) TryMarkActive(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.active == nil {
		r.active = make(map[string]chan struct{})
	}
	if _, ok := r.active[key]; ok {
		return false
	}
	r.active[key] = make(chan struct{})
	return true
}

// ClearActive removes key and wakes everything waiting on Done(key).
// Clearing an inactive key is a no-op.
func (r *Registry) ClearActive(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	done, ok := r.active[key]
	if !ok {
		return
	}
	delete(r.active, key)
	close(done)
}

// IsActive reports whether key is currently marked.
func (r *Registry) IsActive(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.active[key]
	return ok
}

// Done returns a channel that is closed once key is cleared. For a key that is
// not active the returned channel is already closed.
func (r *Registry) Done(key string) <-chan struct{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	if done, ok := r.active[key]; ok {
		return done
	}
	return closedChan
}

// Len returns the number of active keys.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.active)
}

var closedChan = func() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}()
