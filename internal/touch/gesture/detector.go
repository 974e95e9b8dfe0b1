package gesture

import "github.com/dshills/touchpad/internal/touch"

// Config configures gesture detection thresholds. Values are in touchpad
// coordinate units.
type Config struct {
	// EdgeMargin is how close to an edge a touch must start to be an
	// edge-swipe candidate.
	EdgeMargin int

	// SwipeThreshold is the focus-point travel (dominant axis) required to
	// recognize a swipe.
	SwipeThreshold int
}

// DefaultConfig returns sensible default thresholds.
func DefaultConfig() Config {
	return Config{
		EdgeMargin:     16,
		SwipeThreshold: 32,
	}
}

// Move is the pointer-movement delta an event produced. The zero value
// means the event moved nothing.
type Move struct {
	DX int
	DY int
}

// IsZero reports whether the move carries no delta.
func (m Move) IsZero() bool {
	return m.DX == 0 && m.DY == 0
}

// Detector consumes a raw touch event stream and recognizes edge-swipe and
// multi-finger gestures. It also owns the persistent scroll mode.
//
// The detector is single-threaded: events must arrive from one goroutine in
// order. Recognition is per touch sequence; once a gesture fires, the rest
// of the sequence is inert until all pointers lift.
type Detector struct {
	cfg    Config
	width  int
	height int

	listener       Listener
	scrollListener ScrollModeListener

	scrollMode ScrollMode

	// Touch sequence state. None of it survives ActionUp or ActionCancel.
	tracking    bool
	inert       bool
	edge        Kind
	start       touch.Position
	last        touch.Position
	maxPointers int
	recalibrate bool
}

// NewDetector creates a detector with the given thresholds.
func NewDetector(cfg Config) *Detector {
	return &Detector{cfg: cfg}
}

// SetListener sets the gesture listener. Passing nil removes it; recognized
// gestures are then dropped unhandled.
func (d *Detector) SetListener(l Listener) {
	d.listener = l
}

// SetScrollModeListener sets the scroll mode change listener.
func (d *Detector) SetScrollModeListener(l ScrollModeListener) {
	d.scrollListener = l
}

// SetSize sets the touch area dimensions used for edge detection.
func (d *Detector) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// ScrollMode returns the current scroll mode.
func (d *Detector) ScrollMode() ScrollMode {
	return d.scrollMode
}

// ActivateScrollMode switches to the given scroll mode. Activating the
// current mode is a no-op; an actual transition notifies the scroll mode
// listener.
func (d *Detector) ActivateScrollMode(mode ScrollMode) {
	if mode == d.scrollMode {
		return
	}
	old := d.scrollMode
	d.scrollMode = mode
	if d.scrollListener != nil {
		d.scrollListener.OnScrollModeChanged(mode, old)
	}
}

// DeactivateScrollMode resets the scroll mode to ScrollNone.
func (d *Detector) DeactivateScrollMode() {
	d.ActivateScrollMode(ScrollNone)
}

// HandleEvent feeds one touch event through the detector. The returned Move
// is the single-pointer movement the event produced; it is zero while a
// gesture candidate is pending, after a gesture fired, and for multi-finger
// contact.
func (d *Detector) HandleEvent(ev touch.Event) Move {
	switch ev.Action {
	case touch.ActionDown:
		d.beginSequence(ev)
	case touch.ActionPointerDown:
		d.addPointer(ev)
	case touch.ActionMove:
		return d.handleMove(ev)
	case touch.ActionPointerUp:
		// A contact change invalidates the focus point until the next move.
		d.recalibrate = true
	case touch.ActionUp:
		d.endSequence()
	case touch.ActionCancel:
		d.Reset()
	}
	return Move{}
}

// Reset drops all touch sequence state immediately. The scroll mode is not
// touched; callers decide its fate separately.
func (d *Detector) Reset() {
	d.endSequence()
}

func (d *Detector) beginSequence(ev touch.Event) {
	pos, ok := ev.ActingPosition()
	if !ok {
		return
	}
	d.tracking = true
	d.inert = false
	d.maxPointers = 1
	d.start = pos
	d.last = pos
	d.recalibrate = false
	d.edge = d.edgeAt(pos)
}

func (d *Detector) addPointer(ev touch.Event) {
	if !d.tracking {
		return
	}
	if n := ev.PointerCount(); n > d.maxPointers {
		d.maxPointers = n
	}
	// Edge swipes are single-finger; a second contact cancels the candidate.
	d.edge = KindNone
	if focus, ok := ev.Focus(); ok {
		d.start = focus
		d.last = focus
	}
	d.recalibrate = false
}

func (d *Detector) handleMove(ev touch.Event) Move {
	if !d.tracking {
		return Move{}
	}
	focus, ok := ev.Focus()
	if !ok {
		return Move{}
	}
	if d.recalibrate {
		d.start = focus
		d.last = focus
		d.recalibrate = false
		return Move{}
	}

	dx := focus.X - d.last.X
	dy := focus.Y - d.last.Y
	d.last = focus

	if d.inert {
		return Move{}
	}

	kind := d.candidateKind()
	if kind == KindNone {
		return Move{DX: dx, DY: dy}
	}

	tx := focus.X - d.start.X
	ty := focus.Y - d.start.Y
	if maxAbs(tx, ty) < d.cfg.SwipeThreshold {
		// Candidate pending; suppress movement until classified.
		return Move{}
	}

	d.inert = true
	if d.listener != nil {
		d.listener.OnTouchpadGesture(Event{Kind: kind, Direction: classify(tx, ty)})
	}
	return Move{}
}

func (d *Detector) endSequence() {
	d.tracking = false
	d.inert = false
	d.edge = KindNone
	d.maxPointers = 0
	d.recalibrate = false
	d.start = touch.Position{}
	d.last = touch.Position{}
}

// candidateKind returns the gesture kind this sequence could still produce.
func (d *Detector) candidateKind() Kind {
	switch {
	case d.maxPointers == 1 && d.edge != KindNone:
		return d.edge
	case d.maxPointers == 2:
		return KindTwoFinger
	case d.maxPointers == 3:
		return KindThreeFinger
	default:
		return KindNone
	}
}

// edgeAt returns the edge-swipe kind for a touch starting at pos, or
// KindNone. Corners resolve in top, right, bottom, left order.
func (d *Detector) edgeAt(pos touch.Position) Kind {
	if d.width <= 0 || d.height <= 0 || d.cfg.EdgeMargin <= 0 {
		return KindNone
	}
	switch {
	case pos.Y < d.cfg.EdgeMargin:
		return KindEdgeTop
	case pos.X >= d.width-d.cfg.EdgeMargin:
		return KindEdgeRight
	case pos.Y >= d.height-d.cfg.EdgeMargin:
		return KindEdgeBottom
	case pos.X < d.cfg.EdgeMargin:
		return KindEdgeLeft
	default:
		return KindNone
	}
}

// classify maps a travel vector to a direction. The dominant axis wins;
// ties go to the horizontal axis.
func classify(tx, ty int) Direction {
	if abs(tx) >= abs(ty) {
		if tx < 0 {
			return DirectionLeft
		}
		return DirectionRight
	}
	if ty < 0 {
		return DirectionUp
	}
	return DirectionDown
}

func maxAbs(a, b int) int {
	a, b = abs(a), abs(b)
	if a > b {
		return a
	}
	return b
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
