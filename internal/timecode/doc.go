// Package timecode converts between frame counts, elapsed seconds, and
// HH:MM:SS:FF timecode strings at a nominal frame rate, and supplies the
// exact rational per-frame durations broadcast formats expect.
//
// All frame arithmetic uses the nominal rate rounded to the nearest integer
// as the frames-per-second base; the raw rational rate is never used as a
// divisor in timecode math.
package timecode
