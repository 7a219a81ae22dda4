package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/glorpus-work/gifgrab/internal/logger"
	"github.com/glorpus-work/gifgrab/pkg/cache"
	"github.com/glorpus-work/gifgrab/pkg/errors"
	"github.com/glorpus-work/gifgrab/pkg/fsutil"
)

// NewCacheCmd creates the cache command with subcommands
func NewCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the GIF cache",
		Long:  "Clean, show information about, export and import the GIF cache",
	}

	cmd.AddCommand(
		newCacheCleanCmd(),
		newCacheInfoCmd(),
		newCacheDirCmd(),
		newCacheExportCmd(),
		newCacheImportCmd(),
	)

	return cmd
}

func newCacheCleanCmd() *cobra.Command {
	var olderThan time.Duration

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Clean the GIF cache",
		Long:  "Remove cached GIFs to free up disk space",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCacheClean(cmd, olderThan)
		},
	}

	cmd.Flags().DurationVar(&olderThan, "older-than", 0, "Only remove GIFs not written for this long (e.g. 168h)")

	return cmd
}

func newCacheInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show cache information",
		Long:  "Display information about the GIF cache",
		RunE:  runCacheInfo,
	}

	return cmd
}

func newCacheDirCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dir",
		Short: "Show cache directory path",
		Long:  "Display the path to the cache directory",
		RunE:  runCacheDir,
	}

	return cmd
}

func newCacheExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Export the cache to a tar.gz archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCacheExport(cmd, args[0])
		},
	}

	return cmd
}

func newCacheImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import GIFs from an archive created by export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCacheImport(cmd, args[0])
		},
	}

	return cmd
}

func newCacheOperation() (*cache.Operation, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return cache.NewOperation(cache.NewManager(cfg.GetCacheDir())), nil
}

func runCacheClean(cmd *cobra.Command, olderThan time.Duration) error {
	cacheOp, err := newCacheOperation()
	if err != nil {
		return err
	}

	msg, err := cacheOp.Clean(olderThan)
	if err != nil {
		return errors.Wrap(errors.ErrCacheClean, err.Error())
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), msg)
	return nil
}

func runCacheInfo(cmd *cobra.Command, _ []string) error {
	cacheOp, err := newCacheOperation()
	if err != nil {
		return err
	}

	info, err := cacheOp.GetInfo()
	if err != nil {
		return errors.Wrap(errors.ErrCacheInfo, err.Error())
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), info)
	return nil
}

func runCacheDir(cmd *cobra.Command, _ []string) error {
	cacheOp, err := newCacheOperation()
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), cacheOp.GetDirectory())
	return nil
}

func runCacheExport(cmd *cobra.Command, target string) error {
	cacheOp, err := newCacheOperation()
	if err != nil {
		return err
	}

	if err := fsutil.EnsureFileDir(target); err != nil {
		return errors.Wrap(errors.ErrCacheExport, err.Error())
	}
	file, err := fsutil.CreateFilePerm(target, fsutil.FileModeDefault)
	if err != nil {
		return errors.Wrap(errors.ErrCacheExport, err.Error())
	}

	if err := cacheOp.Export(cmd.Context(), file); err != nil {
		_ = file.Close()
		_ = os.Remove(target)
		return errors.Wrap(errors.ErrCacheExport, err.Error())
	}
	if err := file.Close(); err != nil {
		return errors.Wrap(errors.ErrCacheExport, err.Error())
	}

	logger.Success("Cache exported", logger.Fields{"path": target})
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported cache to %s\n", target)
	return nil
}

func runCacheImport(cmd *cobra.Command, source string) error {
	cacheOp, err := newCacheOperation()
	if err != nil {
		return err
	}

	msg, err := cacheOp.Import(cmd.Context(), source)
	if err != nil {
		return errors.Wrap(errors.ErrCacheImport, err.Error())
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), msg)
	return nil
}
