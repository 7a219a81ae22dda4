package hooks_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glorpus-work/gifgrab/pkg/download"
	"github.com/glorpus-work/gifgrab/pkg/errors"
	"github.com/glorpus-work/gifgrab/pkg/hooks"
)

var _ download.HookRunner = (*hooks.DefaultHookManager)(nil)

func TestAddHook(t *testing.T) {
	tests := []struct {
		name        string
		hook        hooks.Hook
		expectedErr error
	}{
		{
			name: "pre-fetch",
			hook: hooks.Hook{Type: hooks.PreFetch, Content: `// nothing`},
		},
		{
			name: "post-fetch",
			hook: hooks.Hook{Type: hooks.PostFetch, Content: `// nothing`},
		},
		{
			name:        "empty type",
			hook:        hooks.Hook{Content: "x := 1"},
			expectedErr: errors.ErrHookTypeEmpty,
		},
		{
			name:        "unsupported type",
			hook:        hooks.Hook{Type: "pre-install", Content: "x := 1"},
			expectedErr: errors.ErrHookLoad,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manager := hooks.NewHookManager()
			err := manager.AddHook(tt.hook)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.False(t, manager.HasHook(tt.hook.Type))
				return
			}
			require.NoError(t, err)
			assert.True(t, manager.HasHook(tt.hook.Type))
		})
	}
}

func TestRemoveHook(t *testing.T) {
	manager := hooks.NewHookManager()
	require.NoError(t, manager.AddHook(hooks.Hook{Type: hooks.PreFetch, Content: `// test`}))

	require.NoError(t, manager.RemoveHook(hooks.PreFetch))
	assert.False(t, manager.HasHook(hooks.PreFetch))

	assert.ErrorIs(t, manager.RemoveHook(""), errors.ErrHookTypeEmpty)
}

func TestPreFetch(t *testing.T) {
	tests := []struct {
		name      string
		script    string
		url       string
		wantErr   error
		errSubstr string
	}{
		{
			name:   "allows by default",
			script: `x := url`,
			url:    "https://media.example.com/a.gif",
		},
		{
			name: "blocks with string",
			script: `
text := import("text")
if !text.has_prefix(url, "https://media.example.com/") {
	err = "host not allowed"
}`,
			url:       "https://evil.example.org/a.gif",
			wantErr:   errors.ErrHookScript,
			errSubstr: "host not allowed",
		},
		{
			name: "allows matching host",
			script: `
text := import("text")
if !text.has_prefix(url, "https://media.example.com/") {
	err = "host not allowed"
}`,
			url: "https://media.example.com/a.gif",
		},
		{
			name:      "blocks with error value",
			script:    `err = error("nope")`,
			url:       "https://example.com/a.gif",
			wantErr:   errors.ErrHookScript,
			errSubstr: "nope",
		},
		{
			name:    "runtime error",
			script:  `non_existent_function()`,
			url:     "https://example.com/a.gif",
			wantErr: errors.ErrHookExecution,
		},
		{
			name: "context module",
			script: `
ctx := import("context")
if ctx.url != url || ctx.hook != "pre-fetch" {
	err = "context mismatch"
}`,
			url: "https://example.com/a.gif",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manager := hooks.NewHookManager()
			require.NoError(t, manager.AddHook(hooks.Hook{Type: hooks.PreFetch, Content: tt.script}))

			err := manager.PreFetch(context.Background(), tt.url)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.errSubstr != "" {
				assert.Contains(t, err.Error(), tt.errSubstr)
			}
		})
	}
}

func TestPostFetch_SeesOutcomeAndSize(t *testing.T) {
	manager := hooks.NewHookManager()
	require.NoError(t, manager.AddHook(hooks.Hook{Type: hooks.PostFetch, Content: `
if outcome != "TOO_LARGE" || size != 0 {
	err = "unexpected values"
}`}))

	assert.NoError(t, manager.PostFetch(context.Background(), "https://example.com/a.gif", "TOO_LARGE", 0))

	err := manager.PostFetch(context.Background(), "https://example.com/a.gif", "SUCCESS", 12)
	assert.ErrorIs(t, err, errors.ErrHookScript)
}

func TestExecute_NoHookIsNoop(t *testing.T) {
	manager := hooks.NewHookManager()
	assert.NoError(t, manager.PreFetch(context.Background(), "https://example.com/a.gif"))
	assert.NoError(t, manager.PostFetch(context.Background(), "https://example.com/a.gif", "FAILED", 0))
}

func TestExecute_CustomVars(t *testing.T) {
	manager := hooks.NewHookManager()
	require.NoError(t, manager.AddHook(hooks.Hook{Type: hooks.PreFetch, Content: `
if limit != 3 {
	err = "limit not passed"
}`}))

	err := manager.Execute(context.Background(), hooks.PreFetch, hooks.HookContext{
		URL:  "https://example.com/a.gif",
		Vars: map[string]interface{}{"limit": 3},
	})
	assert.NoError(t, err)
}

func TestExecute_CancelledContext(t *testing.T) {
	manager := hooks.NewHookManager()
	require.NoError(t, manager.AddHook(hooks.Hook{Type: hooks.PreFetch, Content: `
for i := 0; i < 100000000; i++ {}
`}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := manager.PreFetch(ctx, "https://example.com/a.gif")
	assert.ErrorIs(t, err, errors.ErrHookExecution)
}

func TestLoadHooksFromDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pre-fetch.tengo"), []byte(`err = "always"`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pre-install.tengo"), []byte(`x := 1`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte(`ignored`), 0o644))

	manager := hooks.NewHookManager()
	require.NoError(t, hooks.LoadHooksFromDir(manager, dir))

	assert.True(t, manager.HasHook(hooks.PreFetch))
	assert.False(t, manager.HasHook(hooks.PostFetch))
	assert.ErrorIs(t, manager.PreFetch(context.Background(), "https://example.com/a.gif"), errors.ErrHookScript)
}

func TestLoadHooksFromDir_Missing(t *testing.T) {
	manager := hooks.NewHookManager()
	assert.NoError(t, hooks.LoadHooksFromDir(manager, filepath.Join(t.TempDir(), "nope")))
}

func TestLoadHookFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "audit.tengo")
	require.NoError(t, os.WriteFile(path, []byte(`x := size`), 0o644))

	manager := hooks.NewHookManager()
	require.NoError(t, hooks.LoadHookFile(manager, hooks.PostFetch, path))
	assert.True(t, manager.HasHook(hooks.PostFetch))

	err := hooks.LoadHookFile(manager, hooks.PreFetch, filepath.Join(dir, "missing.tengo"))
	assert.ErrorIs(t, err, errors.ErrHookLoad)

	err = hooks.LoadHookFile(manager, hooks.HookType("post-install"), path)
	assert.ErrorIs(t, err, errors.ErrHookLoad)
}

func TestHookTemplate(t *testing.T) {
	tests := []struct {
		name     string
		hookType hooks.HookType
		expected string
	}{
		{"PreFetch", hooks.PreFetch, "Pre-fetch hook"},
		{"PostFetch", hooks.PostFetch, "Post-fetch hook"},
		{"Unknown", hooks.HookType("unknown"), "Unknown hooks type"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Contains(t, hooks.HookTemplate(tc.hookType), tc.expected)
		})
	}
}
