// Package logging configures the slog loggers used across turbocut.
//
// It provides a human-readable console handler for interactive use, a JSON
// handler for machine consumption, and typed attribute helpers so call
// sites stay terse and field names stay consistent.
package logging
