// Package ffprobe provides a typed wrapper around ffprobe JSON output.
//
// Key types:
//   - Result: parsed ffprobe output containing streams and format metadata
//   - Stream: individual stream properties, including its timecode tag
//   - Format: container-level metadata and tags
//
// Primary entry point:
//   - Inspect: executes ffprobe and returns a parsed Result
//
// Helper methods on Result expose the pieces the start-offset resolver
// consumes: timecode tags at the format, video-stream, and data-stream
// levels, and the video stream's reported start time.
package ffprobe
