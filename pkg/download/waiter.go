package download

import (
	"context"
	"fmt"
	"time"

	"github.com/glorpus-work/gifgrab/internal/logger"
	"github.com/glorpus-work/gifgrab/pkg/cache"
	"github.com/glorpus-work/gifgrab/pkg/errors"
)

// waiter polls a store until another caller's download of the same key lands.
type waiter struct {
	store    cache.Store
	attempts int
	interval time.Duration
}

// wait returns nil as soon as the store contains key. wake, when closed,
// triggers an immediate check instead of waiting out the current interval.
// It gives up after attempts checks or when ctx is done.
func (w waiter) wait(ctx context.Context, key string, wake <-chan struct{}) error {
	for attempt := 1; attempt <= w.attempts; attempt++ {
		timer := time.NewTimer(w.interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return errors.Wrap(ctx.Err(), "wait cancelled")
		case <-wake:
			timer.Stop()
			// A closed channel stays ready; disarm it so later rounds sleep.
			wake = nil
		case <-timer.C:
		}

		if w.store.Contains(key) {
			return nil
		}
		logger.DebugfWithFields(logger.Fields{"url": key, "attempt": attempt}, "Asset not cached yet")
	}
	return fmt.Errorf("%d checks %s apart: %w", w.attempts, w.interval, errors.ErrWaitExhausted)
}
