package export

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"turbocut/internal/edl"
	"turbocut/internal/fcpxml"
	"turbocut/internal/fileutil"
	"turbocut/internal/history"
	"turbocut/internal/logging"
	"turbocut/internal/media/ffprobe"
	"turbocut/internal/source"
	"turbocut/internal/timeline"
)

// BundleDocumentName is the fixed document name inside an .fcpxmld bundle.
const BundleDocumentName = "Info.fcpxml"

// Request carries everything an export needs.
type Request struct {
	Title     string
	ClipName  string
	Clips     []timeline.Clip
	Video     timeline.VideoInfo
	FrameRate float64
}

// Outcome reports how an export ended. Completed is false when the user
// cancelled the destination selection; that is not an error.
type Outcome struct {
	Completed     bool
	ID            string
	Path          string
	StartTimecode string
}

// Recorder journals completed exports. Failures are logged, not fatal.
type Recorder interface {
	Record(ctx context.Context, entry history.Entry) error
}

// Exporter owns the collaborators shared by both export formats.
type Exporter struct {
	Probe    Prober
	Picker   DestinationPicker
	Writer   FileWriter
	Recorder Recorder
	Logger   *slog.Logger
}

func (e *Exporter) logger() *slog.Logger {
	return logging.NewComponentLogger(e.Logger, "export")
}

// EDL exports the clip list as an edit decision list.
func (e *Exporter) EDL(ctx context.Context, req Request) (Outcome, error) {
	if err := timeline.ValidateClips(req.Clips); err != nil {
		return Outcome{}, fmt.Errorf("validate clips: %w", err)
	}

	dest, chosen, err := e.Picker.Pick(ctx, PickRequest{
		Title:         "Export EDL",
		SuggestedName: replaceExt(req.ClipName, ".edl"),
		Extension:     "edl",
	})
	if err != nil {
		return Outcome{}, fmt.Errorf("pick destination: %w", err)
	}
	if !chosen {
		e.logger().Info("edl export cancelled")
		return Outcome{Completed: false}, nil
	}

	offset, startTC, err := e.resolveOffset(ctx, req)
	if err != nil {
		return Outcome{}, err
	}

	text := edl.Generate(req.Title, req.ClipName, req.Clips, req.FrameRate, offset)

	unlock, err := acquireLock(dest)
	if err != nil {
		return Outcome{}, err
	}
	defer unlock()

	if err := e.Writer.WriteFile(dest, []byte(text)); err != nil {
		return Outcome{}, fmt.Errorf("write edl: %w", err)
	}

	outcome := Outcome{Completed: true, ID: uuid.NewString(), Path: dest, StartTimecode: startTC}
	e.record(ctx, "edl", req, outcome)
	e.logger().Info("edl export complete",
		logging.Args(
			logging.String("path", dest),
			logging.Int("clips", len(req.Clips)),
			logging.String("start_timecode", startTC),
		)...)
	return outcome, nil
}

// FCPXML exports the clip list as an FCPXML 1.10 bundle: a directory at the
// chosen path holding a single Info.fcpxml document.
func (e *Exporter) FCPXML(ctx context.Context, req Request) (Outcome, error) {
	if err := timeline.ValidateClips(req.Clips); err != nil {
		return Outcome{}, fmt.Errorf("validate clips: %w", err)
	}

	dest, chosen, err := e.Picker.Pick(ctx, PickRequest{
		Title:         "Export FCPXML",
		SuggestedName: replaceExt(req.ClipName, ".fcpxmld"),
		Extension:     "fcpxmld",
	})
	if err != nil {
		return Outcome{}, fmt.Errorf("pick destination: %w", err)
	}
	if !chosen {
		e.logger().Info("fcpxml export cancelled")
		return Outcome{Completed: false}, nil
	}

	offset, startTC, result, err := e.resolveOffsetResult(ctx, req)
	if err != nil {
		return Outcome{}, err
	}
	if req.Video.Duration <= 0 {
		if probed := result.DurationSeconds(); probed > 0 {
			req.Video.Duration = probed
		}
	}

	doc := fcpxml.Build(fcpxml.Params{
		ClipName: req.ClipName,
		Video:    req.Video,
		Clips:    req.Clips,
		Rate:     req.FrameRate,
		Offset:   offset,
	})
	data, err := doc.Serialize()
	if err != nil {
		return Outcome{}, fmt.Errorf("serialize fcpxml: %w", err)
	}

	unlock, err := acquireLock(dest)
	if err != nil {
		return Outcome{}, err
	}
	defer unlock()

	// Bundle directory; already-exists is fine, anything else is fatal.
	if err := fileutil.EnsureDir(dest, 0o755); err != nil {
		return Outcome{}, fmt.Errorf("create bundle: %w", err)
	}
	docPath := filepath.Join(dest, BundleDocumentName)
	if err := e.Writer.WriteFile(docPath, data); err != nil {
		return Outcome{}, fmt.Errorf("write fcpxml: %w", err)
	}

	outcome := Outcome{Completed: true, ID: uuid.NewString(), Path: dest, StartTimecode: startTC}
	e.record(ctx, "fcpxml", req, outcome)
	e.logger().Info("fcpxml export complete",
		logging.Args(
			logging.String("path", dest),
			logging.Int("clips", len(req.Clips)),
			logging.String("start_timecode", startTC),
		)...)
	return outcome, nil
}

func (e *Exporter) resolveOffset(ctx context.Context, req Request) (float64, string, error) {
	offset, startTC, _, err := e.resolveOffsetResult(ctx, req)
	return offset, startTC, err
}

func (e *Exporter) resolveOffsetResult(ctx context.Context, req Request) (float64, string, ffprobe.Result, error) {
	result, err := e.Probe.Inspect(ctx, req.Video.Path)
	if err != nil {
		return 0, "", ffprobe.Result{}, fmt.Errorf("probe source: %w", err)
	}
	resolution := source.StartTimecode(result, req.FrameRate)
	offset, err := source.StartOffsetSeconds(result, req.FrameRate)
	if err != nil {
		return 0, "", ffprobe.Result{}, fmt.Errorf("resolve start offset: %w", err)
	}
	e.logger().Debug("resolved start offset",
		logging.Args(
			logging.String("timecode", resolution.Timecode),
			logging.String("source", resolution.Source),
			logging.Float64("offset_seconds", offset),
		)...)
	return offset, resolution.Timecode, result, nil
}

func (e *Exporter) record(ctx context.Context, format string, req Request, outcome Outcome) {
	if e.Recorder == nil {
		return
	}
	err := e.Recorder.Record(ctx, history.Entry{
		ID:            outcome.ID,
		Format:        format,
		SourcePath:    req.Video.Path,
		Destination:   outcome.Path,
		ClipCount:     len(req.Clips),
		FrameRate:     req.FrameRate,
		StartTimecode: outcome.StartTimecode,
	})
	if err != nil {
		e.logger().Warn("record export history", logging.Args(logging.Error(err))...)
	}
}

func acquireLock(dest string) (func(), error) {
	lock := flock.New(dest + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock destination: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("another export to %s is in progress", dest)
	}
	return func() { _ = lock.Unlock() }, nil
}

func replaceExt(name, ext string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	if base == "" {
		base = "export"
	}
	return base + ext
}
