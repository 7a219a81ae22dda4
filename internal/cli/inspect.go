package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/glorpus-work/gifgrab/pkg/config"
	"github.com/glorpus-work/gifgrab/pkg/download"
	"github.com/glorpus-work/gifgrab/pkg/errors"
	"github.com/glorpus-work/gifgrab/pkg/sniff"
)

type inspectReport struct {
	Source    string `json:"source"`
	MediaType string `json:"media_type"`
	Bytes     int    `json:"bytes"`
	Frames    int    `json:"frames"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	LoopCount int    `json:"loop_count"`
	Animated  bool   `json:"animated"`
}

// NewInspectCmd creates the inspect command.
func NewInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect URL|FILE",
		Short: "Show details about a GIF",
		Long: `Decode a GIF and print its frame count and dimensions. A local file is
read directly; anything else is fetched through the cache first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0])
		},
	}

	return cmd
}

func runInspect(cmd *cobra.Command, target string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := loadInspectTarget(cmd.Context(), cfg, target)
	if err != nil {
		return err
	}

	info, err := sniff.Inspect(data)
	if err != nil {
		return err
	}

	report := inspectReport{
		Source:    target,
		MediaType: sniff.Classify(data),
		Bytes:     len(data),
		Frames:    info.Frames,
		Width:     info.Width,
		Height:    info.Height,
		LoopCount: info.LoopCount,
		Animated:  info.Animated,
	}
	return printInspectReport(cmd.OutOrStdout(), cfg, report)
}

func loadInspectTarget(ctx context.Context, cfg *config.Config, target string) ([]byte, error) {
	if st, err := os.Stat(target); err == nil && st.Mode().IsRegular() {
		data, err := os.ReadFile(target) //nolint:gosec // reading the file the user named is the point
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", target)
		}
		return data, nil
	}

	store, err := newStore(cfg)
	if err != nil {
		return nil, err
	}
	coordinator, err := newCoordinator(cfg, store)
	if err != nil {
		return nil, err
	}

	res := coordinator.FetchSync(ctx, target)
	if res.Outcome != download.Success {
		return nil, fmt.Errorf("%s: %s: %w", res.Outcome, res.Message, res.Err)
	}

	data, ok := store.Get(target)
	if !ok {
		return nil, fmt.Errorf("asset for %s vanished from the cache: %w", target, errors.ErrDownloadFailed)
	}
	return data, nil
}

func printInspectReport(w io.Writer, cfg *config.Config, r inspectReport) error {
	if isJSON(cfg) {
		return writeJSON(w, r)
	}

	loop := "forever"
	switch {
	case r.LoopCount < 0:
		loop = "once"
	case r.LoopCount > 0:
		loop = fmt.Sprintf("%d times", r.LoopCount)
	}

	tabWriter := tabwriter.NewWriter(w, 0, 0, TabWidth, ' ', 0)
	_, _ = fmt.Fprintf(tabWriter, "Source:\t%s\n", r.Source)
	_, _ = fmt.Fprintf(tabWriter, "Type:\t%s\n", r.MediaType)
	_, _ = fmt.Fprintf(tabWriter, "Size:\t%s\n", humanize.IBytes(uint64(r.Bytes)))
	_, _ = fmt.Fprintf(tabWriter, "Dimensions:\t%dx%d\n", r.Width, r.Height)
	_, _ = fmt.Fprintf(tabWriter, "Frames:\t%d\n", r.Frames)
	_, _ = fmt.Fprintf(tabWriter, "Loop:\t%s\n", loop)
	return tabWriter.Flush()
}
