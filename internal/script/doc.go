// Package script runs a user-provided Lua hook for touchpad gestures.
//
// The script defines an on_gesture(kind, direction) function that is called
// for every gesture the built-in dispatch policy did not consume. Returning
// true marks the gesture handled. A touchpad module is exposed to the
// script for driving the mouse sink directly:
//
//	function on_gesture(kind, direction)
//	    if kind == "three-finger" and direction == "up" then
//	        touchpad.click("middle")
//	        return true
//	    end
//	    return false
//	end
//
// The engine is not goroutine-safe; all calls must come from the event loop
// goroutine that owns it.
package script
