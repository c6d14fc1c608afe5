package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"turbocut/internal/export"
	"turbocut/internal/timeline"
)

type exportFlags struct {
	clipsPath string
	output    string
	title     string
	fps       float64
}

func (f *exportFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.clipsPath, "clips", "", "JSON clip list from the silence-removal step (required)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Destination path; omit to skip the export")
	cmd.Flags().StringVar(&f.title, "title", "", "Timeline title (defaults to the media file name)")
	cmd.Flags().Float64Var(&f.fps, "fps", 0, "Nominal frame rate (defaults to export.frame_rate)")
	_ = cmd.MarkFlagRequired("clips")
}

func newExportCommand(ctx *commandContext) *cobra.Command {
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export the retained clips as an editor timeline",
	}

	var edlFlags exportFlags
	edlCmd := &cobra.Command{
		Use:   "edl <media>",
		Short: "Write a CMX3600-style edit decision list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(ctx, cmd, args[0], edlFlags, "edl")
		},
	}
	edlFlags.register(edlCmd)

	var fcpFlags exportFlags
	fcpCmd := &cobra.Command{
		Use:   "fcpxml <media>",
		Short: "Write an FCPXML 1.10 project bundle",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(ctx, cmd, args[0], fcpFlags, "fcpxml")
		},
		Args: cobra.ExactArgs(1),
	}
	fcpFlags.register(fcpCmd)

	exportCmd.AddCommand(edlCmd)
	exportCmd.AddCommand(fcpCmd)
	return exportCmd
}

func runExport(ctx *commandContext, cmd *cobra.Command, mediaArg string, flags exportFlags, format string) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}

	mediaPath, err := filepath.Abs(mediaArg)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	info, err := os.Stat(mediaPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("media file does not exist: %s", mediaPath)
		}
		return fmt.Errorf("inspect media file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", mediaPath)
	}

	clips, err := timeline.LoadClips(flags.clipsPath)
	if err != nil {
		return err
	}

	rate := flags.fps
	if rate == 0 {
		rate = cfg.Export.FrameRate
	}

	clipName := filepath.Base(mediaPath)
	title := strings.TrimSpace(flags.title)
	if title == "" {
		title = strings.TrimSuffix(clipName, filepath.Ext(clipName))
	}

	req := export.Request{
		Title:     title,
		ClipName:  clipName,
		Clips:     clips,
		Video:     timeline.VideoInfo{Path: mediaPath},
		FrameRate: rate,
	}

	exporter, cleanup, err := ctx.newExporter(flags.output)
	if err != nil {
		return err
	}
	defer cleanup()

	var outcome export.Outcome
	switch format {
	case "edl":
		outcome, err = exporter.EDL(cmd.Context(), req)
	case "fcpxml":
		outcome, err = exporter.FCPXML(cmd.Context(), req)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
	if err != nil {
		return err
	}
	if !outcome.Completed {
		fmt.Fprintln(cmd.OutOrStdout(), "Export skipped: no destination selected.")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d clips to %s (start timecode %s)\n",
		len(clips), outcome.Path, outcome.StartTimecode)
	return nil
}
