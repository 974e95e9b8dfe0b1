// Package touchpad composes the button tracker and gesture detector into a
// touchpad view that drives an HID mouse.
//
// View routes each raw touch event: events landing in a button zone (while
// the button overlay is shown and the sink is active) go to the button
// tracker; everything else feeds the gesture detector. Recognized gestures
// are translated by a fixed dispatch policy into scroll-mode activation or
// navigation button clicks, plain movement becomes pointer movement or
// wheel scrolling, and scroll releases with enough velocity keep scrolling
// as a decaying fling.
//
// The view is single-threaded. The one deferred piece of state, the 100ms
// click flash after a simulated click, is scheduled through a Scheduler
// that posts back onto the same event thread, with a generation counter so
// a superseded timer can never resurrect stale state.
package touchpad
