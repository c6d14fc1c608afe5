package export

import (
	"context"
	"strings"
	"time"

	"turbocut/internal/fileutil"
	"turbocut/internal/media/ffprobe"
)

// Prober inspects a media file's metadata. A returned error means the probe
// itself failed and the export must abort; it is never treated as "no tag".
type Prober interface {
	Inspect(ctx context.Context, path string) (ffprobe.Result, error)
}

// PickRequest describes the destination the user is asked to choose.
type PickRequest struct {
	Title         string
	SuggestedName string
	Extension     string
}

// DestinationPicker resolves the write target. The boolean is false when
// the user cancelled the selection; cancellation is not an error.
type DestinationPicker interface {
	Pick(ctx context.Context, req PickRequest) (string, bool, error)
}

// FileWriter persists UTF-8 text at a path.
type FileWriter interface {
	WriteFile(path string, data []byte) error
}

// FFprobeProber runs the real ffprobe binary with a per-probe timeout.
type FFprobeProber struct {
	Binary  string
	Timeout time.Duration
}

// Inspect implements Prober.
func (p FFprobeProber) Inspect(ctx context.Context, path string) (ffprobe.Result, error) {
	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}
	return ffprobe.Inspect(ctx, p.Binary, path)
}

// StaticPicker returns a preselected path; an empty path reports the
// selection as cancelled. It adapts flag-driven CLI use to the picker
// interface a GUI front end would implement interactively.
type StaticPicker struct {
	Path string
}

// Pick implements DestinationPicker.
func (p StaticPicker) Pick(_ context.Context, _ PickRequest) (string, bool, error) {
	path := strings.TrimSpace(p.Path)
	if path == "" {
		return "", false, nil
	}
	return path, true, nil
}

// AtomicWriter persists files with write-then-rename discipline so failed
// exports leave nothing at the destination.
type AtomicWriter struct{}

// WriteFile implements FileWriter.
func (AtomicWriter) WriteFile(path string, data []byte) error {
	return fileutil.WriteFileAtomic(path, data, 0o644)
}
