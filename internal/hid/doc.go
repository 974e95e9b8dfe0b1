// Package hid defines the mouse sink contract the touchpad engine writes to.
//
// The engine never talks to a transport directly. It holds a Mouse and calls
// button, movement, and wheel operations on it; concrete sinks forward those
// to a Bluetooth HID connection, a uinput device, a log, or a test recorder.
//
// # Buttons
//
// Button values are opaque tokens. ButtonNone is a valid no-op target: every
// operation on it does nothing, which lets callers map unknown indices
// without error handling.
//
// # State tracking
//
// StateMouse implements the bookkeeping half of Mouse (pressed-button state,
// click notifications). Concrete sinks embed it and implement the output
// half.
package hid
