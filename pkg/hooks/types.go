package hooks

// HookType represents the type of hooks.
type HookType string

// Supported hooks types.
const (
	PreFetch  HookType = "pre-fetch"
	PostFetch HookType = "post-fetch"
)

// Valid reports whether t is a supported hook type.
func (t HookType) Valid() bool {
	return t == PreFetch || t == PostFetch
}

// Hook represents a hooks script with its type and content.
type Hook struct {
	Type    HookType
	Content string
	// Source is where the script was loaded from, for log output.
	Source string
}

// HookContext contains information passed to hooks. Outcome and Size are
// only meaningful for post-fetch hooks.
type HookContext struct {
	URL     string
	Outcome string
	Size    int
	Vars    map[string]interface{}
}
