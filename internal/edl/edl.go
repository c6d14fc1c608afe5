// Package edl renders a clip sequence as a CMX3600-style edit decision
// list. Output is byte-exact: downstream NLE importers reject any deviation
// in field widths or separators.
package edl

import (
	"fmt"
	"strings"

	"turbocut/internal/timecode"
	"turbocut/internal/timeline"
)

// Generate builds the full EDL text for the given clips. Source timecodes
// are shifted by the resolved recording start offset; record timecodes lay
// the clips back-to-back on the output timeline regardless of source gaps.
func Generate(title, clipName string, clips []timeline.Clip, rate, offset float64) string {
	var b strings.Builder
	b.WriteString("TITLE: ")
	b.WriteString(title)
	b.WriteString("\nFCM: NON-DROP FRAME\n\n")

	var recordCursor int64
	for i, clip := range clips {
		srcStart := timecode.SecondsToFrames(clip.Start+offset, rate)
		srcEnd := timecode.SecondsToFrames(clip.End+offset, rate)
		recStart := recordCursor
		recEnd := recordCursor + timecode.SecondsToFrames(clip.Duration(), rate)

		fmt.Fprintf(&b, "%03d  AX       V     C        %s %s %s %s\n",
			i+1,
			timecode.FramesToTimecode(srcStart, rate),
			timecode.FramesToTimecode(srcEnd, rate),
			timecode.FramesToTimecode(recStart, rate),
			timecode.FramesToTimecode(recEnd, rate),
		)
		fmt.Fprintf(&b, "* FROM CLIP NAME: %s\n\n", clipName)

		recordCursor = recEnd
	}
	return b.String()
}
