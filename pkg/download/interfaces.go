//go:generate mockgen -destination=./mocks/download.go . Reporter,HookRunner

package download

import "context"

// Reporter receives the terminal outcome of a fetch. Report is called exactly
// once per Fetch, from the worker goroutine, never from the caller's.
type Reporter interface {
	Report(outcome Outcome, message string)
}

// ReporterFunc adapts a plain function to Reporter.
type ReporterFunc func(outcome Outcome, message string)

// Report calls f(outcome, message).
func (f ReporterFunc) Report(outcome Outcome, message string) {
	f(outcome, message)
}

// HookRunner runs user scripts around a fetch. PreFetch may veto a download
// by returning an error; PostFetch errors are only logged.
type HookRunner interface {
	PreFetch(ctx context.Context, url string) error
	PostFetch(ctx context.Context, url string, outcome string, size int) error
}

// Result is what FetchSync returns.
type Result struct {
	Outcome Outcome
	Message string
	// Err is the underlying cause for every outcome other than Success.
	Err error
	// Size is the number of bytes downloaded, zero when served from cache.
	Size int
}
