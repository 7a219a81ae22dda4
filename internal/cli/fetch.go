package cli

import (
	"fmt"
	"io"
	"net/url"
	"path"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/glorpus-work/gifgrab/internal/logger"
	"github.com/glorpus-work/gifgrab/pkg/cache"
	"github.com/glorpus-work/gifgrab/pkg/config"
	"github.com/glorpus-work/gifgrab/pkg/download"
	"github.com/glorpus-work/gifgrab/pkg/errors"
	"github.com/glorpus-work/gifgrab/pkg/fsutil"
)

type fetchResult struct {
	URL     string           `json:"url"`
	Outcome download.Outcome `json:"outcome"`
	Key     string           `json:"key"`
	Message string           `json:"message"`
	Size    int              `json:"size,omitempty"`
	Error   string           `json:"error,omitempty"`
	Path    string           `json:"path,omitempty"`
}

// NewFetchCmd creates the fetch command.
func NewFetchCmd() *cobra.Command {
	var saveDir string

	cmd := &cobra.Command{
		Use:   "fetch URL...",
		Short: "Download GIFs into the cache",
		Long: `Download one or more GIFs into the local cache. URLs already cached are
served without network access; the same URL requested twice is downloaded once.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd, args, saveDir)
		},
	}

	cmd.Flags().StringVar(&saveDir, "save", "", "Also copy successfully fetched GIFs into this directory")

	return cmd
}

func runFetch(cmd *cobra.Command, urls []string, saveDir string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := newStore(cfg)
	if err != nil {
		return err
	}
	coordinator, err := newCoordinator(cfg, store)
	if err != nil {
		return err
	}

	results := make([]fetchResult, len(urls))
	saveFailed := make([]bool, len(urls))
	ctx := cmd.Context()
	var group errgroup.Group
	group.SetLimit(cfg.Settings.MaxConcurrent)

	for i, rawURL := range urls {
		group.Go(func() error {
			res := coordinator.FetchSync(ctx, rawURL)
			results[i] = newFetchResult(rawURL, res)
			if saveDir == "" || res.Outcome != download.Success {
				return nil
			}
			savedPath, err := saveAsset(store, rawURL, saveDir)
			if err != nil {
				logger.Warn("Could not save GIF", logger.Fields{"url": rawURL, "error": err.Error()})
				results[i].Error = err.Error()
				saveFailed[i] = true
				return nil
			}
			results[i].Path = savedPath
			return nil
		})
	}
	_ = group.Wait()

	if err := printFetchResults(cmd.OutOrStdout(), cfg, results); err != nil {
		return err
	}

	failed, unsaved := 0, 0
	for i, r := range results {
		if r.Outcome != download.Success {
			failed++
		}
		if saveFailed[i] {
			unsaved++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d fetches did not succeed: %w", failed, len(results), errors.ErrDownloadFailed)
	}
	if unsaved > 0 {
		return fmt.Errorf("%d of %d GIFs could not be saved to %s: %w", unsaved, len(results), saveDir, errors.ErrAssetSave)
	}
	return nil
}

func newFetchResult(rawURL string, res download.Result) fetchResult {
	r := fetchResult{
		URL:     rawURL,
		Outcome: res.Outcome,
		Key:     res.Outcome.Key(),
		Message: res.Message,
		Size:    res.Size,
	}
	if res.Err != nil {
		r.Error = res.Err.Error()
	}
	return r
}

func printFetchResults(w io.Writer, cfg *config.Config, results []fetchResult) error {
	if isJSON(cfg) {
		return writeJSON(w, results)
	}

	tabWriter := tabwriter.NewWriter(w, 0, 0, TabWidth, ' ', 0)
	_, _ = fmt.Fprintln(tabWriter, "URL\tOUTCOME\tSIZE\tMESSAGE")
	for _, r := range results {
		size := "-"
		if r.Size > 0 {
			size = humanize.IBytes(uint64(r.Size))
		}
		_, _ = fmt.Fprintf(tabWriter, "%s\t%s\t%s\t%s\n", r.URL, outcomeLabel(r.Outcome), size, r.Message)
	}
	return tabWriter.Flush()
}

// saveAsset copies the cached bytes for rawURL into dir and returns the file path.
func saveAsset(store cache.Store, rawURL, dir string) (string, error) {
	data, ok := store.Get(rawURL)
	if !ok {
		return "", fmt.Errorf("asset for %s vanished from the cache: %w", rawURL, errors.ErrDownloadFailed)
	}

	target := filepath.Join(dir, assetFileName(rawURL))
	if err := fsutil.WriteFileAtomic(target, data, fsutil.DirModeDefault, fsutil.FileModeDefault); err != nil {
		return "", errors.Wrapf(err, "failed to save %s", target)
	}
	logger.Debug("Saved asset", logger.Fields{"url": rawURL, "path": target})
	return target, nil
}

// assetFileName derives a local file name from the last URL path segment.
func assetFileName(rawURL string) string {
	name := ""
	if u, err := url.Parse(rawURL); err == nil {
		name = path.Base(u.Path)
	}
	if name == "" || name == "." || name == "/" {
		name = "download"
	}
	name = strings.Map(func(r rune) rune {
		if r == filepath.Separator || r == ':' {
			return '_'
		}
		return r
	}, name)
	if !strings.EqualFold(filepath.Ext(name), ".gif") {
		name += ".gif"
	}
	return name
}
