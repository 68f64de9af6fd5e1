package tween

import (
	"math"
	"time"
)

// DefaultDuration is how long a counter takes to reach a new target.
const DefaultDuration = 200 * time.Millisecond

// DefaultFrameInterval is the delay between animation frames (~60fps).
const DefaultFrameInterval = time.Second / 60

// EaseOutQuart decelerates following an inverse fourth-power law.
func EaseOutQuart(p float64) float64 {
	inv := 1 - p
	return 1 - inv*inv*inv*inv
}

// Run is one in-flight animation from Start to End.
type Run struct {
	Start     float64
	End       float64
	StartTime time.Time
	Duration  time.Duration
}

// Progress returns the elapsed fraction of the run at now, clamped to [0, 1].
// A run with a non-positive duration is complete immediately.
func (r Run) Progress(now time.Time) float64 {
	if r.Duration <= 0 {
		return 1
	}
	elapsed := now.Sub(r.StartTime)
	if elapsed <= 0 {
		return 0
	}
	return math.Min(float64(elapsed)/float64(r.Duration), 1)
}

// ValueAt returns the interpolated value at now and whether the run is done.
// Once done, the value is exactly End.
func (r Run) ValueAt(now time.Time) (float64, bool) {
	p := r.Progress(now)
	if p >= 1 {
		return r.End, true
	}

	v := r.Start + (r.End-r.Start)*EaseOutQuart(p)
	return clampBetween(v, r.Start, r.End), false
}

// clampBetween keeps float rounding from stepping outside [a, b] in either order.
func clampBetween(v, a, b float64) float64 {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	return math.Max(lo, math.Min(hi, v))
}
