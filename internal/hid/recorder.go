package hid

import "fmt"

// Recorder is an in-memory Mouse used by tests and the demo's dry-run sink.
// It records every operation in order and tracks pressed state.
type Recorder struct {
	StateMouse

	// Connected controls IsConnected. Defaults to true via NewRecorder.
	Connected bool

	// Ops holds a readable record of every operation, e.g. "press(first)".
	Ops []string

	// MovedX and MovedY accumulate movement deltas.
	MovedX, MovedY int

	// ScrolledY and ScrolledX accumulate wheel deltas.
	ScrolledY, ScrolledX int
}

// NewRecorder creates a connected Recorder.
func NewRecorder() *Recorder {
	return &Recorder{Connected: true}
}

// IsConnected reports the configured connection state.
func (r *Recorder) IsConnected() bool {
	return r.Connected
}

// PressButton records a press.
func (r *Recorder) PressButton(b Button) {
	if !r.SetPressed(b, true) {
		return
	}
	r.Ops = append(r.Ops, fmt.Sprintf("press(%s)", b))
}

// ReleaseButton records a release.
func (r *Recorder) ReleaseButton(b Button) {
	if !r.SetPressed(b, false) {
		return
	}
	r.Ops = append(r.Ops, fmt.Sprintf("release(%s)", b))
}

// ClickButton records a click and notifies the click listener.
func (r *Recorder) ClickButton(b Button) {
	if b == ButtonNone {
		return
	}
	r.Ops = append(r.Ops, fmt.Sprintf("click(%s)", b))
	r.NotifyClick(b)
}

// MoveMouse accumulates a movement delta.
func (r *Recorder) MoveMouse(dx, dy int) {
	r.MovedX += dx
	r.MovedY += dy
}

// ScrollWheel accumulates a wheel delta.
func (r *Recorder) ScrollWheel(dy, dx int) {
	r.ScrolledY += dy
	r.ScrolledX += dx
}

// CountOp returns how many times an operation was recorded.
func (r *Recorder) CountOp(op string) int {
	n := 0
	for _, o := range r.Ops {
		if o == op {
			n++
		}
	}
	return n
}

// Reset clears the recorded operations and accumulated deltas. Pressed state
// and the click listener are preserved.
func (r *Recorder) Reset() {
	r.Ops = nil
	r.MovedX, r.MovedY = 0, 0
	r.ScrolledY, r.ScrolledX = 0, 0
}
