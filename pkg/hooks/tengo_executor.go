package hooks

import (
	"context"
	"fmt"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/glorpus-work/gifgrab/pkg/errors"
)

// scriptModules are the Tengo standard modules a hook may import. os is left
// out so a hook cannot touch the filesystem or spawn processes.
var scriptModules = []string{"fmt", "text", "times", "json", "math", "base64", "hex", "enum"}

// TengoExecutor handles the execution of Tengo scripts.
type TengoExecutor struct {
	scripts map[HookType]*Hook
	mutex   sync.RWMutex
}

// NewTengoExecutor creates a new Tengo script executor.
func NewTengoExecutor() *TengoExecutor {
	return &TengoExecutor{
		scripts: make(map[HookType]*Hook),
	}
}

// Execute runs the specified hooks type with the given context. A script
// vetoes by assigning a non-empty string or an error value to err.
func (e *TengoExecutor) Execute(ctx context.Context, hookType HookType, hctx HookContext) error {
	e.mutex.RLock()
	hook, exists := e.scripts[hookType]
	e.mutex.RUnlock()
	if !exists {
		return nil
	}

	script := tengo.NewScript([]byte(hook.Content))

	modules := stdlib.GetModuleMap(scriptModules...)
	modules.AddBuiltinModule("context", map[string]tengo.Object{
		"hook":    &tengo.String{Value: string(hookType)},
		"url":     &tengo.String{Value: hctx.URL},
		"outcome": &tengo.String{Value: hctx.Outcome},
		"size":    &tengo.Int{Value: int64(hctx.Size)},
	})
	script.SetImports(modules)

	vars := map[string]interface{}{
		"url":     hctx.URL,
		"outcome": hctx.Outcome,
		"size":    hctx.Size,
		"err":     "",
	}
	for k, v := range hctx.Vars {
		vars[k] = v
	}
	for k, v := range vars {
		if err := script.Add(k, v); err != nil {
			return fmt.Errorf("failed to add variable '%s' to script: %w", k, err)
		}
	}

	compiled, err := script.RunContext(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", hookType, errors.ErrHookExecution, err)
	}

	// Check for any returned error
	errVar := compiled.Get("err")
	if errVar != nil {
		switch v := errVar.Value().(type) {
		case error:
			return fmt.Errorf("%w: %w", errors.ErrHookScript, v)
		case string:
			if v != "" {
				return fmt.Errorf("%w: %s", errors.ErrHookScript, v)
			}
		}
	}

	return nil
}

// AddScript adds or updates a script for the specified hooks type.
func (e *TengoExecutor) AddScript(hook Hook) {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.scripts[hook.Type] = &hook
}

// RemoveScript removes the script for the specified hooks type.
func (e *TengoExecutor) RemoveScript(hookType HookType) {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	delete(e.scripts, hookType)
}

// HasScript checks if a script exists for the specified hooks type.
func (e *TengoExecutor) HasScript(hookType HookType) bool {
	e.mutex.RLock()
	defer e.mutex.RUnlock()
	_, exists := e.scripts[hookType]
	return exists
}

// Source returns where the script for hookType came from.
func (e *TengoExecutor) Source(hookType HookType) string {
	e.mutex.RLock()
	defer e.mutex.RUnlock()
	if hook, ok := e.scripts[hookType]; ok {
		return hook.Source
	}
	return ""
}
