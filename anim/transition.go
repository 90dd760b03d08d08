package anim

import "time"

// Transition interpolates a scalar value between two points over a fixed
// duration. The clock starts on the first call to Value, which lets the
// transition be started outside of a frame.
//
// The zero value is an inactive transition.
type Transition struct {
	from, to float32
	dur      time.Duration
	curve    Curve
	t0       time.Time
	active   bool
}

// Start begins a new transition, superseding the running one.
// A nil curve animates linearly.
func (t *Transition) Start(from, to float32, d time.Duration, c Curve) {
	if c == nil {
		c = Linear
	}
	*t = Transition{
		from:   from,
		to:     to,
		dur:    d,
		curve:  c,
		active: true,
	}
}

// Active reports whether the transition is still running.
func (t *Transition) Active() bool { return t.active }

// Target returns the value the transition is heading to.
func (t *Transition) Target() float32 { return t.to }

// Value returns the interpolated value at now and whether the transition
// completed. Once completed the value is exactly the target.
func (t *Transition) Value(now time.Time) (float32, bool) {
	if !t.active {
		return t.to, true
	}
	if t.t0.IsZero() {
		t.t0 = now
	}
	elapsed := now.Sub(t.t0)
	if elapsed >= t.dur {
		t.active = false
		return t.to, true
	}
	p := t.curve.Progress(elapsed, t.dur)
	return t.from + (t.to-t.from)*p, false
}

// Stop interrupts the transition and returns its live value at now.
func (t *Transition) Stop(now time.Time) float32 {
	v, _ := t.Value(now)
	t.active = false
	return v
}
