// Package timeline holds the clip-interval data model shared by the EDL and
// FCPXML generators. Clip boundaries are seconds relative to the processed
// (silence-stripped) media, not the original recording.
package timeline

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// Clip is a retained interval of the processed media.
type Clip struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Duration returns the clip length in seconds.
func (c Clip) Duration() float64 {
	return c.End - c.Start
}

// VideoInfo describes the original source media an export references.
type VideoInfo struct {
	Path     string
	Duration float64
}

// ValidateClips rejects a clip list containing any malformed interval. A
// single bad clip fails the whole list; exports never silently skip clips.
func ValidateClips(clips []Clip) error {
	if len(clips) == 0 {
		return fmt.Errorf("clip list is empty")
	}
	for i, clip := range clips {
		if math.IsNaN(clip.Start) || math.IsNaN(clip.End) || math.IsInf(clip.Start, 0) || math.IsInf(clip.End, 0) {
			return fmt.Errorf("clip %d: non-finite boundary", i+1)
		}
		if clip.Start < 0 {
			return fmt.Errorf("clip %d: negative start %v", i+1, clip.Start)
		}
		if clip.End <= clip.Start {
			return fmt.Errorf("clip %d: end %v is not after start %v", i+1, clip.End, clip.Start)
		}
	}
	return nil
}

// LoadClips reads a JSON clip list as produced by the upstream
// silence-removal step: an array of {"start": seconds, "end": seconds}.
func LoadClips(path string) ([]Clip, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read clip list: %w", err)
	}
	var clips []Clip
	if err := json.Unmarshal(data, &clips); err != nil {
		return nil, fmt.Errorf("parse clip list %s: %w", path, err)
	}
	return clips, nil
}
