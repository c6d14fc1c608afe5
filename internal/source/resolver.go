// Package source resolves the absolute start timecode of a recording from
// probed media metadata. Clip boundaries arrive relative to the processed
// media; adding the resolved offset realigns them onto the original
// recording's timeline, which is what editor-facing asset references need.
package source

import (
	"fmt"

	"turbocut/internal/media/ffprobe"
	"turbocut/internal/timecode"
)

// DefaultTimecode is the start timecode used when the probe exposes no
// usable tag or start time.
const DefaultTimecode = "00:00:00:00"

type lookup struct {
	name  string
	value func(ffprobe.Result, float64) string
}

// The fallback chain, strict priority order. Evaluation is lazy: the first
// lookup returning a non-empty timecode wins and later ones are never run.
var lookups = []lookup{
	{"format_tag", func(r ffprobe.Result, _ float64) string {
		return r.FormatTimecode()
	}},
	{"video_stream_tag", func(r ffprobe.Result, _ float64) string {
		if stream, ok := r.VideoStream(); ok {
			return stream.Tags.Timecode
		}
		return ""
	}},
	{"data_stream_tag", func(r ffprobe.Result, _ float64) string {
		if stream, ok := r.DataStream(); ok {
			return stream.Tags.Timecode
		}
		return ""
	}},
	{"video_stream_start_time", func(r ffprobe.Result, rate float64) string {
		seconds, ok := r.StartTimeSeconds()
		if !ok {
			return ""
		}
		// start_time is a seconds scalar; convert so the chain yields a
		// timecode string regardless of which lookup won.
		return timecode.FramesToTimecode(timecode.SecondsToFrames(seconds, rate), rate)
	}},
}

// Resolution reports which lookup produced the start timecode.
type Resolution struct {
	Timecode string
	Source   string
}

// StartTimecode walks the fallback chain and returns the winning timecode
// along with the lookup that produced it.
func StartTimecode(result ffprobe.Result, rate float64) Resolution {
	for _, l := range lookups {
		if value := l.value(result, rate); value != "" {
			return Resolution{Timecode: value, Source: l.name}
		}
	}
	return Resolution{Timecode: DefaultTimecode, Source: "default"}
}

// StartOffsetSeconds resolves the start timecode and converts it into the
// coarse seconds offset added to every clip boundary before output math.
func StartOffsetSeconds(result ffprobe.Result, rate float64) (float64, error) {
	resolution := StartTimecode(result, rate)
	frames, err := timecode.TimecodeToFrames(resolution.Timecode, rate)
	if err != nil {
		return 0, fmt.Errorf("start timecode from %s: %w", resolution.Source, err)
	}
	return timecode.FramesToSeconds(frames, rate), nil
}
