package hooks

import (
	"github.com/glorpus-work/gifgrab/pkg/errors"
)

// ErrUnsupportedHookType is returned when a hook type other than pre-fetch or post-fetch is used.
func ErrUnsupportedHookType(hookType HookType) error {
	return errors.Wrapf(errors.ErrHookLoad, "unsupported hook type: %s", hookType)
}
