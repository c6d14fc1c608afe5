package timecode

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// fpsBase returns the integer frames-per-second base for a nominal rate.
// Fractional broadcast rates (23.976, 29.97, 59.94) count timecode frames
// against their rounded base.
func fpsBase(rate float64) int64 {
	if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return 24
	}
	return int64(math.Round(rate))
}

// FramesToTimecode renders a frame count as a non-drop HH:MM:SS:FF string at
// the given nominal rate. Negative or non-finite frame counts clamp to zero.
func FramesToTimecode(frames int64, rate float64) string {
	if frames < 0 {
		frames = 0
	}
	fps := fpsBase(rate)
	hours := frames / (3600 * fps)
	minutes := frames / (60 * fps) % 60
	seconds := frames / fps % 60
	remainder := frames % fps
	return fmt.Sprintf("%02d:%02d:%02d:%02d", hours, minutes, seconds, remainder)
}

// TimecodeToFrames parses an HH:MM:SS:FF string back into a frame count at
// the given nominal rate. A semicolon frame separator (drop-frame notation)
// is accepted but counted identically to the colon form.
func TimecodeToFrames(tc string, rate float64) (int64, error) {
	fields := strings.FieldsFunc(strings.TrimSpace(tc), func(r rune) bool {
		return r == ':' || r == ';'
	})
	if len(fields) != 4 {
		return 0, fmt.Errorf("parse timecode %q: expected 4 fields, got %d", tc, len(fields))
	}
	values := make([]int64, 4)
	for i, field := range fields {
		parsed, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parse timecode %q: %w", tc, err)
		}
		if parsed < 0 {
			return 0, fmt.Errorf("parse timecode %q: negative field", tc)
		}
		values[i] = parsed
	}
	fps := fpsBase(rate)
	return (values[0]*3600+values[1]*60+values[2])*fps + values[3], nil
}

// FramesToSeconds converts a frame count to elapsed seconds at the raw
// nominal rate, rounded to one decimal place. The coarse rounding matches
// the precision the start-offset resolver needs; do not route frame-accurate
// math through this function.
func FramesToSeconds(frames int64, rate float64) float64 {
	if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return 0
	}
	return math.Round(float64(frames)/rate*10) / 10
}

// SecondsToFrames floors elapsed seconds into a frame count at the rounded
// frames-per-second base.
func SecondsToFrames(seconds float64, rate float64) int64 {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return 0
	}
	return int64(math.Floor(seconds * float64(fpsBase(rate))))
}
