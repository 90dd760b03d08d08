package bottomsheet

import "time"

const (
	historySize  = 20
	maxAge       = 100 * time.Millisecond
	maxSampleGap = 40 * time.Millisecond
)

type velocitySample struct {
	t time.Duration
	v float32
}

// velocityTracker estimates the speed of a pointer along one axis from
// timestamped positions, using the least squares fit of a line through the
// most recent samples. Samples older than maxAge, or separated from the newer
// ones by more than maxSampleGap, are not part of the movement.
type velocityTracker struct {
	samples [historySize]velocitySample
	idx     int
	n       int
}

func (vt *velocityTracker) reset() {
	*vt = velocityTracker{}
}

func (vt *velocityTracker) add(t time.Duration, v float32) {
	vt.samples[vt.idx] = velocitySample{t: t, v: v}
	vt.idx = (vt.idx + 1) % historySize
	if vt.n < historySize {
		vt.n++
	}
}

// get returns the i-th most recent sample.
func (vt *velocityTracker) get(i int) velocitySample {
	return vt.samples[(vt.idx-1-i+2*historySize)%historySize]
}

// estimate returns the velocity in units per second, or zero if there is
// not enough recent data.
func (vt *velocityTracker) estimate() float32 {
	if vt.n < 2 {
		return 0
	}
	var (
		newest = vt.get(0)
		prev   = newest.t

		n, sx, sy, sxx, sxy float64
	)
	for i := 0; i < vt.n; i++ {
		s := vt.get(i)
		if newest.t-s.t >= maxAge || prev-s.t >= maxSampleGap {
			break
		}
		prev = s.t

		x := (s.t - newest.t).Seconds()
		y := float64(s.v)
		n++
		sx += x
		sy += y
		sxx += x * x
		sxy += x * y
	}
	if n < 2 {
		return 0
	}
	den := n*sxx - sx*sx
	if den < 1e-12 {
		return 0
	}
	return float32((n*sxy - sx*sy) / den)
}
