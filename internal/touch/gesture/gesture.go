package gesture

// Kind classifies a recognized touchpad gesture.
type Kind uint8

const (
	// KindNone indicates no gesture.
	KindNone Kind = iota
	// KindEdgeTop is a swipe starting at the top edge.
	KindEdgeTop
	// KindEdgeRight is a swipe starting at the right edge.
	KindEdgeRight
	// KindEdgeBottom is a swipe starting at the bottom edge.
	KindEdgeBottom
	// KindEdgeLeft is a swipe starting at the left edge.
	KindEdgeLeft
	// KindTwoFinger is a two-finger swipe.
	KindTwoFinger
	// KindThreeFinger is a three-finger swipe.
	KindThreeFinger
)

// String returns a string representation of the gesture kind.
func (k Kind) String() string {
	switch k {
	case KindEdgeTop:
		return "edge-top"
	case KindEdgeRight:
		return "edge-right"
	case KindEdgeBottom:
		return "edge-bottom"
	case KindEdgeLeft:
		return "edge-left"
	case KindTwoFinger:
		return "two-finger"
	case KindThreeFinger:
		return "three-finger"
	default:
		return "none"
	}
}

// IsEdge returns true for edge-swipe kinds.
func (k Kind) IsEdge() bool {
	switch k {
	case KindEdgeTop, KindEdgeRight, KindEdgeBottom, KindEdgeLeft:
		return true
	default:
		return false
	}
}

// Direction is the dominant movement direction of a gesture.
type Direction uint8

const (
	// DirectionNone indicates no direction.
	DirectionNone Direction = iota
	// DirectionUp indicates the movement went up.
	DirectionUp
	// DirectionRight indicates the movement went right.
	DirectionRight
	// DirectionDown indicates the movement went down.
	DirectionDown
	// DirectionLeft indicates the movement went left.
	DirectionLeft
)

// String returns a string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionRight:
		return "right"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	default:
		return "none"
	}
}

// IsVertical returns true for up/down directions.
func (d Direction) IsVertical() bool {
	return d == DirectionUp || d == DirectionDown
}

// IsHorizontal returns true for left/right directions.
func (d Direction) IsHorizontal() bool {
	return d == DirectionLeft || d == DirectionRight
}

// Event is a recognized gesture. It is produced once per recognition and
// not persisted.
type Event struct {
	Kind      Kind
	Direction Direction
}

// String returns a string representation of the gesture event.
func (e Event) String() string {
	return e.Kind.String() + "/" + e.Direction.String()
}

// ScrollMode indicates which axes a continued movement will scroll.
type ScrollMode uint8

const (
	// ScrollNone indicates no scroll mode is active.
	ScrollNone ScrollMode = iota
	// ScrollVertical scrolls the vertical axis only.
	ScrollVertical
	// ScrollHorizontal scrolls the horizontal axis only.
	ScrollHorizontal
	// ScrollAll scrolls both axes.
	ScrollAll
)

// String returns a string representation of the scroll mode.
func (m ScrollMode) String() string {
	switch m {
	case ScrollVertical:
		return "vertical"
	case ScrollHorizontal:
		return "horizontal"
	case ScrollAll:
		return "all"
	default:
		return "none"
	}
}

// Listener receives recognized gestures. The return value reports whether
// the gesture was handled; unhandled gestures may be passed through to
// other consumers.
type Listener interface {
	OnTouchpadGesture(ev Event) bool
}

// ScrollModeListener is notified whenever the scroll mode changes. It is
// called once per actual transition; re-activating the current mode is
// silent.
type ScrollModeListener interface {
	OnScrollModeChanged(newMode, oldMode ScrollMode)
}
