package hid

// Button identifies a mouse button on the HID sink.
type Button uint8

const (
	// ButtonNone is the no-op button. All operations on it do nothing.
	ButtonNone Button = iota
	// ButtonFirst is the primary (left) mouse button.
	ButtonFirst
	// ButtonSecond is the secondary (right) mouse button.
	ButtonSecond
	// ButtonMiddle is the middle mouse button.
	ButtonMiddle
	// Button4 is the back navigation button.
	Button4
	// Button5 is the forward navigation button.
	Button5
)

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonFirst:
		return "first"
	case ButtonSecond:
		return "second"
	case ButtonMiddle:
		return "middle"
	case Button4:
		return "button4"
	case Button5:
		return "button5"
	default:
		return "none"
	}
}

// ClickType identifies how a programmatic click originated.
type ClickType uint8

const (
	// ClickSimulated is a click injected by the sink itself (for example a
	// remote click simulation), not driven by touch input.
	ClickSimulated ClickType = iota
)

// String returns a string representation of the click type.
func (c ClickType) String() string {
	switch c {
	case ClickSimulated:
		return "simulated"
	default:
		return "unknown"
	}
}

// Mouse is the abstract HID mouse consumed by the touchpad engine.
//
// Implementations are not required to be safe for concurrent use; the engine
// calls them from a single event thread.
type Mouse interface {
	// IsConnected reports whether the sink can currently deliver events.
	IsConnected() bool

	// PressButton asserts a button. Pressing ButtonNone or an already
	// pressed button is a no-op.
	PressButton(b Button)

	// ReleaseButton releases a button. Releasing ButtonNone or an already
	// released button is a no-op.
	ReleaseButton(b Button)

	// ClickButton performs a press-release pair and notifies any click
	// listener with ClickSimulated.
	ClickButton(b Button)

	// IsButtonPressed reports whether a button is currently asserted.
	IsButtonPressed(b Button) bool

	// MoveMouse moves the pointer by a relative delta.
	MoveMouse(dx, dy int)

	// ScrollWheel scrolls by the given vertical and horizontal amounts.
	// Positive dy scrolls up, positive dx scrolls right.
	ScrollWheel(dy, dx int)
}

// ClickListener receives programmatic click notifications from a sink.
type ClickListener interface {
	OnMouseButtonClick(clickType ClickType, button Button)
}
