// Package download coordinates GIF downloads into an asset cache. Concurrent
// requests for the same URL share a single transfer; every request ends in
// exactly one Outcome delivered to its Reporter.
package download

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/glorpus-work/gifgrab/internal/logger"
	"github.com/glorpus-work/gifgrab/pkg/cache"
	"github.com/glorpus-work/gifgrab/pkg/errors"
	gghttp "github.com/glorpus-work/gifgrab/pkg/http"
	"github.com/glorpus-work/gifgrab/pkg/inflight"
	"github.com/glorpus-work/gifgrab/pkg/sniff"
)

// Coordinator fetches GIFs into a cache.Store. It is safe for concurrent use.
type Coordinator struct {
	store     cache.Store
	registry  *inflight.Registry
	client    gghttp.Client
	validator sniff.Validator
	hooks     HookRunner

	maxFileSize  int64
	pollAttempts int
	pollInterval time.Duration

	wg sync.WaitGroup
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithRegistry shares an in-flight registry between coordinators.
func WithRegistry(r *inflight.Registry) Option {
	return func(c *Coordinator) {
		if r != nil {
			c.registry = r
		}
	}
}

// WithClient replaces the HTTP client.
func WithClient(client gghttp.Client) Option {
	return func(c *Coordinator) {
		if client != nil {
			c.client = client
		}
	}
}

// WithHooks installs pre- and post-fetch hooks.
func WithHooks(h HookRunner) Option {
	return func(c *Coordinator) {
		c.hooks = h
	}
}

// WithMaxFileSize overrides MaxFileSize. Non-positive values are ignored.
func WithMaxFileSize(n int64) Option {
	return func(c *Coordinator) {
		if n > 0 {
			c.maxFileSize = n
		}
	}
}

// WithPolling overrides how a waiting caller polls the cache. Non-positive
// values keep the defaults.
func WithPolling(attempts int, interval time.Duration) Option {
	return func(c *Coordinator) {
		if attempts > 0 {
			c.pollAttempts = attempts
		}
		if interval > 0 {
			c.pollInterval = interval
		}
	}
}

// NewCoordinator creates a Coordinator that stores into store.
func NewCoordinator(store cache.Store, opts ...Option) *Coordinator {
	c := &Coordinator{
		store:        store,
		registry:     inflight.NewRegistry(),
		maxFileSize:  MaxFileSize,
		pollAttempts: PollAttempts,
		pollInterval: PollInterval,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.client == nil {
		c.client = gghttp.NewHTTPClient(DefaultTimeout, DefaultUserAgent)
	}
	return c
}

// Registry returns the in-flight registry used by c.
func (c *Coordinator) Registry() *inflight.Registry {
	return c.registry
}

// Fetch ensures url is cached and reports the outcome to reporter from a new
// goroutine. It returns immediately.
func (c *Coordinator) Fetch(url string, reporter Reporter) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		res := c.FetchSync(context.Background(), url)
		if reporter != nil {
			reporter.Report(res.Outcome, res.Message)
		}
	}()
}

// Wait blocks until every Fetch started so far has reported.
func (c *Coordinator) Wait() {
	c.wg.Wait()
}

// FetchSync runs a fetch on the calling goroutine. It never panics and always
// returns one of the four outcomes.
func (c *Coordinator) FetchSync(ctx context.Context, url string) Result {
	res := c.safeFetch(ctx, url)
	logResult(url, res)
	c.runPostFetch(ctx, url, res)
	return res
}

func (c *Coordinator) safeFetch(ctx context.Context, url string) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("panic during fetch: %v: %w", r, errors.ErrDownloadFailed)
			res = Result{Outcome: Failed, Message: msgFailed, Err: err}
			logger.Error("Fetch panicked", logger.Fields{"url": url, "panic": fmt.Sprint(r)})
		}
	}()
	return c.fetch(ctx, url)
}

func (c *Coordinator) fetch(ctx context.Context, url string) Result {
	if c.store.TryLoad(url) {
		logger.Debug("Cache hit", logger.Fields{"url": url})
		return Result{Outcome: Success, Message: msgSuccess}
	}

	if c.hooks != nil {
		if err := c.hooks.PreFetch(ctx, url); err != nil {
			return Result{Outcome: Failed, Message: msgBlocked, Err: err}
		}
	}

	if !c.registry.TryMarkActive(url) {
		return c.waitForPeer(ctx, url)
	}
	defer c.registry.ClearActive(url)

	// Another caller may have finished between the cache check and the mark.
	if c.store.Contains(url) {
		return Result{Outcome: Success, Message: msgSuccess}
	}

	logger.Debug("Downloading", logger.Fields{"url": url})
	data, err := c.transfer(ctx, url)
	if err != nil {
		return c.classifyError(err)
	}

	if !c.store.Insert(url, data) {
		return Result{Outcome: Failed, Message: msgCacheRefused, Err: errors.ErrCacheRejected, Size: len(data)}
	}
	return Result{Outcome: Success, Message: msgSuccess, Size: len(data)}
}

func (c *Coordinator) waitForPeer(ctx context.Context, url string) Result {
	logger.Debug("Download already in progress, waiting", logger.Fields{"url": url})
	w := waiter{store: c.store, attempts: c.pollAttempts, interval: c.pollInterval}
	if err := w.wait(ctx, url, c.registry.Done(url)); err != nil {
		return Result{Outcome: Failed, Message: msgWaitFailed, Err: err}
	}
	return Result{Outcome: Success, Message: msgSuccess}
}

// runPostFetch never changes the outcome; hook errors and panics are only logged.
func (c *Coordinator) runPostFetch(ctx context.Context, url string, res Result) {
	if c.hooks == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Post-fetch hook panicked", logger.Fields{"url": url, "panic": fmt.Sprint(r)})
		}
	}()
	if err := c.hooks.PostFetch(ctx, url, res.Outcome.String(), res.Size); err != nil {
		logger.Warn("Post-fetch hook failed", logger.Fields{"url": url, "error": err.Error()})
	}
}

func logResult(url string, res Result) {
	fields := logger.Fields{"url": url, "outcome": res.Outcome.String()}
	if res.Size > 0 {
		fields["size"] = res.Size
	}
	if res.Outcome == Success {
		logger.Success(res.Message, fields)
		return
	}
	if res.Err != nil {
		fields["error"] = res.Err.Error()
	}
	logger.Warn(res.Message, fields)
}
