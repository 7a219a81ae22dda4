package cli

import (
	"fmt"

	"github.com/hashicorp/go-version"
	"github.com/spf13/cobra"

	"github.com/glorpus-work/gifgrab/pkg/config"
)

// Build information. Version is overridden at link time.
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	var require string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display version information for gifgrab",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVersion(cmd, require)
		},
	}

	cmd.Flags().StringVar(&require, "require", "", "Fail unless this build satisfies the version constraint (e.g. \">= 0.1, < 1\")")

	return cmd
}

func runVersion(cmd *cobra.Command, require string) error {
	current, err := version.NewVersion(Version)
	if err != nil {
		return fmt.Errorf("invalid build version %q: %w", Version, err)
	}

	if require != "" {
		constraint, err := version.NewConstraint(require)
		if err != nil {
			return fmt.Errorf("invalid version constraint %q: %w", require, err)
		}
		if !constraint.Check(current) {
			return fmt.Errorf("gifgrab %s does not satisfy %q", current, require)
		}
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "gifgrab version %s\n", current)
	_, _ = fmt.Fprintf(out, "Build date: %s\n", BuildDate)
	_, _ = fmt.Fprintf(out, "Git commit: %s\n", GitCommit)
	_, _ = fmt.Fprintf(out, "Config versions: %s\n", config.SupportedVersions)
	return nil
}
