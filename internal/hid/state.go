package hid

// StateMouse tracks pressed-button state and click notifications for a sink.
// Concrete sinks embed it and call SetPressed/NotifyClick from their output
// methods.
type StateMouse struct {
	pressed  map[Button]bool
	listener ClickListener
}

// SetClickListener registers the listener notified on programmatic clicks.
// Passing nil removes the listener.
func (m *StateMouse) SetClickListener(l ClickListener) {
	m.listener = l
}

// IsButtonPressed reports whether a button is currently asserted.
func (m *StateMouse) IsButtonPressed(b Button) bool {
	return m.pressed[b]
}

// SetPressed records the pressed state of a button. ButtonNone is ignored.
// It returns true if the state actually changed.
func (m *StateMouse) SetPressed(b Button, pressed bool) bool {
	if b == ButtonNone {
		return false
	}
	if m.pressed[b] == pressed {
		return false
	}
	if m.pressed == nil {
		m.pressed = make(map[Button]bool)
	}
	m.pressed[b] = pressed
	return true
}

// NotifyClick delivers a ClickSimulated notification to the registered
// listener, if any.
func (m *StateMouse) NotifyClick(b Button) {
	if m.listener != nil {
		m.listener.OnMouseButtonClick(ClickSimulated, b)
	}
}
