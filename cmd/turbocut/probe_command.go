package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"turbocut/internal/media/ffprobe"
	"turbocut/internal/source"
)

func newProbeCommand(ctx *commandContext) *cobra.Command {
	var fps float64

	cmd := &cobra.Command{
		Use:   "probe <media>",
		Short: "Show probed stream metadata and the resolved start timecode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			mediaPath, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve path: %w", err)
			}

			probeCtx, cancel := timeoutContext(cmd, time.Duration(cfg.Export.ProbeTimeoutSeconds)*time.Second)
			defer cancel()

			result, err := ffprobe.Inspect(probeCtx, cfg.Export.FFprobeBinary, mediaPath)
			if err != nil {
				return err
			}

			rate := fps
			if rate == 0 {
				rate = cfg.Export.FrameRate
			}

			rows := make([][]string, 0, len(result.Streams))
			for _, stream := range result.Streams {
				rows = append(rows, []string{
					strconv.Itoa(stream.Index),
					stream.CodecType,
					stream.CodecName,
					stream.Tags.Timecode,
					stream.StartTime,
				})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"#", "Type", "Codec", "Timecode Tag", "Start Time"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignRight},
			))

			resolution := source.StartTimecode(result, rate)
			fmt.Fprintf(out, "Container timecode tag: %s\n", orDash(result.FormatTimecode()))
			fmt.Fprintf(out, "Resolved start timecode: %s (from %s, at %g fps)\n",
				resolution.Timecode, resolution.Source, rate)
			return nil
		},
	}

	cmd.Flags().Float64Var(&fps, "fps", 0, "Nominal frame rate for timecode resolution")
	return cmd
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
