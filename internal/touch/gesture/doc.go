// Package gesture recognizes touchpad gestures from a raw touch stream.
//
// Detector classifies each touch sequence into at most one gesture: a swipe
// starting at a screen edge (single finger) or a two/three-finger swipe.
// Recognized gestures are delivered to a Listener; whatever the listener
// returns, the rest of the sequence stays inert until all pointers lift.
//
// The detector also owns the persistent scroll mode. The mode survives
// across touch sequences until explicitly changed; transitions notify a
// ScrollModeListener exactly once each.
//
// Plain single-finger movement is not a gesture. HandleEvent returns it as
// a Move delta so the owning view can translate it into pointer movement or
// wheel scrolling.
package gesture
