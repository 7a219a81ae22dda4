// Package hooks runs user supplied Tengo scripts before and after a fetch.
// A pre-fetch script can veto a download; a post-fetch script observes the
// outcome.
package hooks

import (
	"context"

	"github.com/glorpus-work/gifgrab/internal/logger"
	"github.com/glorpus-work/gifgrab/pkg/errors"
)

// DefaultHookManager is the default implementation of HookManager.
type DefaultHookManager struct {
	executor *TengoExecutor
}

// NewHookManager creates a new hook manager.
func NewHookManager() *DefaultHookManager {
	return &DefaultHookManager{
		executor: NewTengoExecutor(),
	}
}

// Execute runs the specified hook type with the given context.
func (m *DefaultHookManager) Execute(ctx context.Context, hookType HookType, hctx HookContext) error {
	if !m.HasHook(hookType) {
		return nil
	}

	logger.Debug("Executing hook", logger.Fields{
		"hook":   string(hookType),
		"source": m.executor.Source(hookType),
		"url":    hctx.URL,
	})
	return m.executor.Execute(ctx, hookType, hctx)
}

// AddHook adds a new hook.
func (m *DefaultHookManager) AddHook(hook Hook) error {
	if hook.Type == "" {
		return errors.ErrHookTypeEmpty
	}
	if !hook.Type.Valid() {
		return ErrUnsupportedHookType(hook.Type)
	}

	m.executor.AddScript(hook)
	return nil
}

// RemoveHook removes a hook of the specified type.
func (m *DefaultHookManager) RemoveHook(hookType HookType) error {
	if hookType == "" {
		return errors.ErrHookTypeEmpty
	}

	m.executor.RemoveScript(hookType)
	return nil
}

// HasHook checks if a hook of the specified type exists.
func (m *DefaultHookManager) HasHook(hookType HookType) bool {
	return m.executor.HasScript(hookType)
}

// PreFetch runs the pre-fetch hook for url.
func (m *DefaultHookManager) PreFetch(ctx context.Context, url string) error {
	return m.Execute(ctx, PreFetch, HookContext{URL: url})
}

// PostFetch runs the post-fetch hook with the fetch result.
func (m *DefaultHookManager) PostFetch(ctx context.Context, url string, outcome string, size int) error {
	return m.Execute(ctx, PostFetch, HookContext{URL: url, Outcome: outcome, Size: size})
}
