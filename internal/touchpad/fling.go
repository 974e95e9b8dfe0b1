package touchpad

import "time"

// flingTracker estimates touch velocity in pad units per second from the
// stream of scroll movement deltas.
type flingTracker struct {
	vx, vy float64
	last   time.Time
}

// observe records a movement delta at the given time. A zero timestamp
// falls back to time.Now().
func (f *flingTracker) observe(dx, dy int, t time.Time) {
	if t.IsZero() {
		t = time.Now()
	}
	if f.last.IsZero() {
		f.last = t
		return
	}
	dt := t.Sub(f.last).Seconds()
	f.last = t
	if dt <= 0 {
		return
	}
	if dt < 0.001 {
		dt = 0.001
	}
	// Exponential smoothing keeps one jittery event from dominating.
	nx := float64(dx) / dt
	ny := float64(dy) / dt
	f.vx = 0.7*nx + 0.3*f.vx
	f.vy = 0.7*ny + 0.3*f.vy
}

// velocity returns the current estimate.
func (f *flingTracker) velocity() (vx, vy float64) {
	return f.vx, f.vy
}

// speed returns the dominant axis speed.
func (f *flingTracker) speed() float64 {
	vx, vy := f.vx, f.vy
	if vx < 0 {
		vx = -vx
	}
	if vy < 0 {
		vy = -vy
	}
	if vx > vy {
		return vx
	}
	return vy
}

// reset clears the velocity estimate.
func (f *flingTracker) reset() {
	f.vx, f.vy = 0, 0
	f.last = time.Time{}
}
