package fcpxml

import (
	"net/url"

	"turbocut/internal/timecode"
	"turbocut/internal/timeline"
)

const (
	canvasWidth  = 3840
	canvasHeight = 2160

	formatID = "r1"
	assetID  = "r2"

	// Spine clips sit on lane 2 so the editor keeps the audio pairing intact.
	clipLane = "2"

	namePrefix = "TurboCut "
)

// Params carries everything Build needs to assemble a project document.
type Params struct {
	ClipName string
	Video    timeline.VideoInfo
	Clips    []timeline.Clip
	Rate     float64
	// Offset is the resolved recording start offset in seconds; it shifts
	// every clip's source-aligned start.
	Offset float64
}

// Build assembles the complete document tree. The spine lays clips
// back-to-back: each clip's offset is the accumulated duration of the clips
// before it, mirroring the EDL record cursor.
func Build(p Params) Document {
	unit := timecode.FrameDuration(p.Rate)
	title := namePrefix + p.ClipName

	spine := Spine{Clips: make([]AssetClip, 0, len(p.Clips))}
	var offsetFrames int64
	for _, clip := range p.Clips {
		durationFrames := timecode.SecondsToFrames(clip.Duration(), p.Rate)
		startFrames := timecode.SecondsToFrames(clip.Start+p.Offset, p.Rate)
		spine.Clips = append(spine.Clips, AssetClip{
			Ref:      assetID,
			Offset:   unit.Scale(offsetFrames),
			Duration: unit.Scale(durationFrames),
			Start:    unit.Scale(startFrames),
			Lane:     clipLane,
			Enabled:  "1",
		})
		offsetFrames += durationFrames
	}

	return Document{
		Version: "1.10",
		Resources: Resources{
			Format: Format{
				ID:            formatID,
				Name:          timecode.FormatName(p.Rate),
				FrameDuration: unit.String(),
				Width:         canvasWidth,
				Height:        canvasHeight,
			},
			Asset: Asset{
				ID:            assetID,
				Name:          p.ClipName,
				Start:         unit.Scale(timecode.SecondsToFrames(p.Offset, p.Rate)),
				Duration:      unit.Scale(timecode.SecondsToFrames(p.Video.Duration, p.Rate)),
				HasAudio:      "1",
				AudioSources:  "1",
				AudioChannels: "1",
				Format:        formatID,
				Src:           fileURI(p.Video.Path),
			},
		},
		Library: Library{
			Event: Event{
				Name: title,
				Project: Project{
					Name: title,
					Sequence: Sequence{
						Format:   formatID,
						TCStart:  "0s",
						TCFormat: "NDF",
						Spine:    spine,
					},
				},
			},
		},
	}
}

func fileURI(path string) string {
	u := url.URL{Scheme: "file", Path: path}
	return u.String()
}
