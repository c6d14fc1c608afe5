package timecode

import "strconv"

// Rational is an exact per-frame duration expressed as numerator/denominator
// of a second. Entries come from a fixed broadcast table and are never
// reduced or recomputed by division; downstream XML consumers expect these
// exact pairs byte-for-byte.
type Rational struct {
	Num int64
	Den int64
}

// String renders the duration in the interchange form, e.g. "1001/24000s".
func (r Rational) String() string {
	return strconv.FormatInt(r.Num, 10) + "/" + strconv.FormatInt(r.Den, 10) + "s"
}

// Scale renders a frame count in this rational unit, e.g. 72 frames at
// 1001/24000 becomes "72072/24000s".
func (r Rational) Scale(frames int64) string {
	return strconv.FormatInt(r.Num*frames, 10) + "/" + strconv.FormatInt(r.Den, 10) + "s"
}

type rateEntry struct {
	duration Rational
	label    string
}

// The 24 fps entry is deliberately kept as 100/2400 rather than 1/24; the
// downstream parser compatibility depends on the exact pair.
var rateTable = map[float64]rateEntry{
	23.976: {Rational{1001, 24000}, "2398"},
	24:     {Rational{100, 2400}, "24"},
	25:     {Rational{1, 25}, "25"},
	29.97:  {Rational{1001, 30000}, "2997"},
	30:     {Rational{1, 30}, "30"},
	50:     {Rational{1, 50}, "50"},
	59.94:  {Rational{1001, 60000}, "5994"},
	60:     {Rational{1, 60}, "60"},
}

var defaultRate = rateTable[23.976]

func lookupRate(rate float64) rateEntry {
	if entry, ok := rateTable[rate]; ok {
		return entry
	}
	return defaultRate
}

// FrameDuration returns the exact per-frame duration for a nominal rate.
// Unrecognized rates fall back to the 23.976 entry.
func FrameDuration(rate float64) Rational {
	return lookupRate(rate).duration
}

// FormatName returns the video-format resource name for a nominal rate,
// embedding the rate with the decimal point stripped (23.976 -> "2398").
func FormatName(rate float64) string {
	return "FFVideoFormat3840x2160p" + lookupRate(rate).label
}
