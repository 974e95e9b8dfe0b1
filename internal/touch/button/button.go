// Package button maps touch pointers to on-screen button zones and drives
// the press/release state of the corresponding HID mouse buttons.
//
// Each zone owns the set of pointers currently holding it. The mapped HID
// button is asserted exactly once when the set becomes non-empty and
// released exactly once when it drains, so any number of fingers can pile
// onto a zone without double-pressing.
package button

import (
	"github.com/dshills/touchpad/internal/hid"
	"github.com/dshills/touchpad/internal/touch"
)

// Zone identifies a button zone on the touchpad.
type Zone uint8

const (
	// ZoneFirst is the left half of the button bar.
	ZoneFirst Zone = iota
	// ZoneSecond is the right half of the button bar.
	ZoneSecond
	// ZoneMiddle is the narrow strip centered on the first/second split.
	// It overlaps both halves and wins the hit test.
	ZoneMiddle

	// ZoneCount is the number of zones.
	ZoneCount
)

// String returns a string representation of the zone.
func (z Zone) String() string {
	switch z {
	case ZoneFirst:
		return "first"
	case ZoneSecond:
		return "second"
	case ZoneMiddle:
		return "middle"
	default:
		return "unknown"
	}
}

// Button returns the HID button mapped to the zone. Unknown zones map to
// hid.ButtonNone, never an error.
func (z Zone) Button() hid.Button {
	switch z {
	case ZoneFirst:
		return hid.ButtonFirst
	case ZoneSecond:
		return hid.ButtonSecond
	case ZoneMiddle:
		return hid.ButtonMiddle
	default:
		return hid.ButtonNone
	}
}

// ZoneForButton returns the zone mapped to an HID button, or ZoneCount and
// false if the button has no zone.
func ZoneForButton(b hid.Button) (Zone, bool) {
	switch b {
	case hid.ButtonFirst:
		return ZoneFirst, true
	case hid.ButtonSecond:
		return ZoneSecond, true
	case hid.ButtonMiddle:
		return ZoneMiddle, true
	default:
		return ZoneCount, false
	}
}

// Rect is an axis-aligned rectangle. Left/Top are inclusive, Right/Bottom
// exclusive, matching half-open screen rectangles.
type Rect struct {
	Left, Top, Right, Bottom int
}

// Contains reports whether the position falls inside the rectangle.
func (r Rect) Contains(p touch.Position) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Tracker maps active touch pointers to button zones.
//
// The hit test iterates zones from the highest index to the lowest so the
// middle zone, which overlaps the first/second split, takes priority. Keep
// this ordering; deriving priority from rectangle geometry loses the
// tie-break.
type Tracker struct {
	mouse hid.Mouse

	rects      [ZoneCount]Rect
	pointerIDs [ZoneCount][]int
}

// NewTracker creates a tracker with no zone rectangles and no mouse.
func NewTracker() *Tracker {
	return &Tracker{}
}

// SetMouse attaches the HID sink. A nil mouse turns every press/release
// side effect into a no-op.
func (t *Tracker) SetMouse(m hid.Mouse) {
	t.mouse = m
}

// SetRect sets the screen rectangle for a zone. Out-of-range zones are
// ignored.
func (t *Tracker) SetRect(z Zone, r Rect) {
	if z < ZoneCount {
		t.rects[z] = r
	}
}

// Rect returns the rectangle for a zone.
func (t *Tracker) Rect(z Zone) Rect {
	if z < ZoneCount {
		return t.rects[z]
	}
	return Rect{}
}

// PointerDown assigns a pointer to the zone containing the position, if
// any. Returns true if the event was consumed. The first pointer entering
// an empty zone presses the zone's HID button.
func (t *Tracker) PointerDown(id int, pos touch.Position) bool {
	// Highest index first so ZoneMiddle wins the overlap.
	for i := int(ZoneCount) - 1; i >= 0; i-- {
		if !t.rects[i].Contains(pos) {
			continue
		}
		if len(t.pointerIDs[i]) == 0 {
			t.press(Zone(i).Button())
		}
		if !t.holdsPointer(Zone(i), id) {
			t.pointerIDs[i] = append(t.pointerIDs[i], id)
		}
		return true
	}
	return false
}

// PointerUp removes a pointer from whichever zone holds it. Returns true if
// the pointer was found. The last pointer leaving a zone releases the
// zone's HID button. Unknown pointers are ignored without touching other
// zones.
func (t *Tracker) PointerUp(id int) bool {
	for i := range t.pointerIDs {
		if !t.holdsPointer(Zone(i), id) {
			continue
		}
		t.removePointer(Zone(i), id)
		if len(t.pointerIDs[i]) == 0 {
			t.release(Zone(i).Button())
		}
		return true
	}
	return false
}

// ReleaseAll clears every zone's pointer set, releasing the HID button of
// each zone that was held. Safe to call at any time; it is the cancel path
// for ACTION_CANCEL, final ACTION_UP, and sink disconnect.
func (t *Tracker) ReleaseAll() {
	for i := range t.pointerIDs {
		if len(t.pointerIDs[i]) == 0 {
			continue
		}
		t.release(Zone(i).Button())
		t.pointerIDs[i] = t.pointerIDs[i][:0]
	}
}

// ZonePressed reports whether a zone currently has active pointers. This is
// the raw press state; the transient click flash lives in the view layer.
func (t *Tracker) ZonePressed(z Zone) bool {
	if z >= ZoneCount {
		return false
	}
	return len(t.pointerIDs[z]) > 0
}

// ActivePointers returns the number of pointers holding a zone.
func (t *Tracker) ActivePointers(z Zone) int {
	if z >= ZoneCount {
		return 0
	}
	return len(t.pointerIDs[z])
}

func (t *Tracker) holdsPointer(z Zone, id int) bool {
	for _, pid := range t.pointerIDs[z] {
		if pid == id {
			return true
		}
	}
	return false
}

func (t *Tracker) removePointer(z Zone, id int) {
	ids := t.pointerIDs[z]
	for i, pid := range ids {
		if pid == id {
			t.pointerIDs[z] = append(ids[:i], ids[i+1:]...)
			return
		}
	}
}

func (t *Tracker) press(b hid.Button) {
	if t.mouse != nil {
		t.mouse.PressButton(b)
	}
}

func (t *Tracker) release(b hid.Button) {
	if t.mouse != nil {
		t.mouse.ReleaseButton(b)
	}
}
