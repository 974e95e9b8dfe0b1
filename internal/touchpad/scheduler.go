package touchpad

import "time"

// Scheduler posts delayed callbacks onto the view's event thread.
//
// Implementations must run the callback on the same thread that delivers
// touch events to the view, never concurrently with event handling. The
// view guards every callback with generation checks, so late or reordered
// delivery is tolerated; concurrent delivery is not.
type Scheduler interface {
	PostDelayed(d time.Duration, fn func())
}

// Haptics delivers tactile feedback for scroll mode transitions.
type Haptics interface {
	// LongPress triggers a single long-press-equivalent pulse.
	LongPress()
}
