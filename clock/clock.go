package clock

import "time"

// Snapshot is a wall-clock instant decomposed for hand placement
type Snapshot struct {
	Hour   int // 0-23
	Minute int // 0-59
	Second int // 0-59

	// Subsecond is the fraction of the current second in [0,1).
	// Zero unless sub-second smoothing is enabled
	Subsecond float64

	// Wall is the instant the snapshot was taken from, kept for
	// digital formatting
	Wall time.Time
}

// TakeSnapshot decomposes t into a Snapshot. With smooth set, the
// sub-second fraction participates in hand angles so hands sweep
// between seconds instead of stepping
func TakeSnapshot(t time.Time, smooth bool) Snapshot {
	h, m, s := t.Clock()
	snap := Snapshot{
		Hour:   h,
		Minute: m,
		Second: s,
		Wall:   t,
	}
	if smooth {
		snap.Subsecond = float64(t.Nanosecond()) / float64(time.Second)
	}
	return snap
}

// Angles are hand positions in degrees. 0 is 12 o'clock, increasing
// clockwise, always in [0,360)
type Angles struct {
	Hour   float64
	Minute float64
	Second float64
}

// Angles computes hand angles for the snapshot. Minute and hour hands
// sweep continuously: the minute hand carries the elapsed seconds, the
// hour hand the elapsed minutes
func (s Snapshot) Angles() Angles {
	sec := float64(s.Second) + s.Subsecond
	min := float64(s.Minute) + sec/60.0
	hr := float64(s.Hour%12) + min/60.0

	return Angles{
		Hour:   hr / 12.0 * 360.0,
		Minute: min / 60.0 * 360.0,
		Second: sec / 60.0 * 360.0,
	}
}
