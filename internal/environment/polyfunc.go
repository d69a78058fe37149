package environment

import "math/rand"

// PolyFunc is a parabolic intensity curve of the form
//
//	y = -m·x² + m·d·x
//
// shifted right by a start time. It rises from zero at the start time,
// peaks at m·d²/4 halfway through, and returns to zero after d ticks.
// Outside that window it solves negative.
type PolyFunc struct {
	magnitude float64
	duration  float64
	startTime float64
}

// NewPolyFunc builds a curve with the given magnitude and duration,
// starting at tick zero.
func NewPolyFunc(magnitude, duration float64) PolyFunc {
	return PolyFunc{magnitude: magnitude, duration: duration}
}

// StartingAt returns a copy of the curve shifted to begin at the given tick.
func (f PolyFunc) StartingAt(start float64) PolyFunc {
	f.startTime = start
	return f
}

// RandomPolyFunc builds a random curve whose peak value lies in
// (0, maxPeak] and whose duration lies in (0, maxDuration]. The magnitude
// is derived from the sampled peak so the curve's maximum is meaningful
// regardless of duration.
func RandomPolyFunc(rng *rand.Rand, maxPeak, maxDuration, start float64) PolyFunc {
	peak := rng.Float64() * maxPeak
	duration := rng.Float64() * maxDuration
	if duration == 0 {
		duration = 1
	}

	// Peak of -m·x² + m·d·x is m·d²/4 at x = d/2; solve for m.
	magnitude := 4 * peak / (duration * duration)

	return PolyFunc{magnitude: magnitude, duration: duration, startTime: start}
}

// Solve evaluates the curve at the given tick. Results are negative outside
// the event window.
func (f PolyFunc) Solve(tick float64) float64 {
	x := tick - f.startTime
	return -f.magnitude*x*x + f.magnitude*f.duration*x
}

// Duration returns the width of the event window in ticks.
func (f PolyFunc) Duration() float64 {
	return f.duration
}

// StartTime returns the tick at which the curve begins.
func (f PolyFunc) StartTime() float64 {
	return f.startTime
}
