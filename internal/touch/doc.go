// Package touch defines the raw multi-touch event model consumed by the
// touchpad engine.
//
// Events arrive as an ordered stream on a single thread. Each event carries
// the action, the pointer the action applies to, and the current position of
// every active pointer:
//
//	ev := touch.Event{
//	    Action:  touch.ActionPointerDown,
//	    Pointer: 1,
//	    Pointers: []touch.Pointer{
//	        {ID: 0, Position: touch.Position{X: 10, Y: 20}},
//	        {ID: 1, Position: touch.Position{X: 40, Y: 22}},
//	    },
//	    Timestamp: time.Now(),
//	}
//
// The package does not define a transport; any input source (a terminal,
// a network protocol, a test) can synthesize events.
package touch
