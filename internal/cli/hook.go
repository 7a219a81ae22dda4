package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glorpus-work/gifgrab/pkg/hooks"
)

// NewHookCmd creates the hook command.
func NewHookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hook",
		Short: "Work with fetch hook scripts",
	}

	cmd.AddCommand(newHookTemplateCmd())

	return cmd
}

func newHookTemplateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "template pre-fetch|post-fetch",
		Short:     "Print a starter script for a hook",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(hooks.PreFetch), string(hooks.PostFetch)},
		RunE: func(cmd *cobra.Command, args []string) error {
			hookType := hooks.HookType(args[0])
			if !hookType.Valid() {
				return hooks.ErrUnsupportedHookType(hookType)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), hooks.HookTemplate(hookType))
			return nil
		},
	}

	return cmd
}
