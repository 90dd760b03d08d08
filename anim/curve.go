package anim

import (
	"math"
	"time"
)

// settleTolerance is the residual displacement of a spring, relative to the
// travelled distance, at the end of its duration.
const settleTolerance = 1e-3

// Curve maps the elapsed time of a transition to its progress.
// Progress must return 0 at the start and 1 once elapsed reaches d.
type Curve interface {
	Progress(elapsed, d time.Duration) float32
}

// CurveFunc adapts a function of the normalized time to the Curve interface.
type CurveFunc func(t float64) float64

// Progress implements Curve.
func (f CurveFunc) Progress(elapsed, d time.Duration) float32 {
	if d <= 0 || elapsed >= d {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	return float32(f(elapsed.Seconds() / d.Seconds()))
}

var (
	// Linear advances at constant speed.
	Linear Curve = CurveFunc(func(t float64) float64 { return t })

	// EaseInOut accelerates from rest and decelerates to rest (cubic).
	EaseInOut Curve = CurveFunc(func(t float64) float64 {
		if t < 0.5 {
			return 4 * t * t * t
		}
		u := -2*t + 2
		return 1 - u*u*u/2
	})
)

// Spring is a damped harmonic oscillator normalized to settle within the
// transition duration.
type Spring struct {
	// Damping is the damping ratio. Values below 1 oscillate around the
	// target before settling, 1 is critically damped.
	Damping float64
	// Velocity is the initial velocity, expressed as the fraction of the
	// total distance travelled per second.
	Velocity float64
}

// Progress implements Curve.
func (s Spring) Progress(elapsed, d time.Duration) float32 {
	if d <= 0 || elapsed >= d {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	zeta := math.Min(math.Max(s.Damping, 0.05), 1)
	t := elapsed.Seconds()

	// Natural frequency chosen such that the envelope decays to the
	// tolerance at the end of the duration.
	w0 := math.Log(1/settleTolerance) / (zeta * d.Seconds())

	// x(t) is the remaining displacement with x(0) = 1 and x'(0) = -v0.
	var x float64
	if zeta >= 1 {
		x = math.Exp(-w0*t) * (1 + (w0-s.Velocity)*t)
	} else {
		wd := w0 * math.Sqrt(1-zeta*zeta)
		b := (zeta*w0 - s.Velocity) / wd
		x = math.Exp(-zeta*w0*t) * (math.Cos(wd*t) + b*math.Sin(wd*t))
	}
	return float32(1 - x)
}
