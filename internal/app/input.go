package app

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/touchpad/internal/touch"
)

// fingerSpread is the horizontal distance between simulated contacts when a
// modifier key turns the terminal pointer into a multi-finger touch.
const fingerSpread = 6

// touchTranslator converts terminal mouse events into touch event
// sequences. Holding Alt while dragging simulates a two-finger touch,
// Ctrl a three-finger touch; the extra contacts track the pointer at a
// fixed spread.
type touchTranslator struct {
	active  bool
	fingers int
	last    touch.Position
}

// Translate returns the touch events for one terminal mouse event, in
// delivery order. Most events produce zero or one; a multi-finger press or
// release produces one per contact.
func (t *touchTranslator) Translate(ev *tcell.EventMouse) []touch.Event {
	x, y := ev.Position()
	pos := touch.Position{X: x, Y: y}
	pressed := ev.Buttons()&tcell.Button1 != 0

	switch {
	case pressed && !t.active:
		return t.begin(pos, modFingers(ev.Modifiers()), ev.When())
	case pressed && t.active:
		return t.move(pos, ev.When())
	case !pressed && t.active:
		return t.end(pos, ev.When())
	}
	return nil
}

// Cancel aborts any in-flight sequence, for focus loss or shutdown.
func (t *touchTranslator) Cancel() []touch.Event {
	if !t.active {
		return nil
	}
	t.active = false
	return []touch.Event{{Action: touch.ActionCancel, Timestamp: time.Now()}}
}

func (t *touchTranslator) begin(pos touch.Position, fingers int, when time.Time) []touch.Event {
	t.active = true
	t.fingers = fingers
	t.last = pos

	events := []touch.Event{{
		Action:    touch.ActionDown,
		Pointer:   0,
		Pointers:  t.contacts(pos, 1),
		Timestamp: when,
	}}
	for id := 1; id < fingers; id++ {
		events = append(events, touch.Event{
			Action:    touch.ActionPointerDown,
			Pointer:   id,
			Pointers:  t.contacts(pos, id+1),
			Timestamp: when,
		})
	}
	return events
}

func (t *touchTranslator) move(pos touch.Position, when time.Time) []touch.Event {
	if pos == t.last {
		return nil
	}
	t.last = pos
	return []touch.Event{{
		Action:    touch.ActionMove,
		Pointer:   0,
		Pointers:  t.contacts(pos, t.fingers),
		Timestamp: when,
	}}
}

func (t *touchTranslator) end(pos touch.Position, when time.Time) []touch.Event {
	t.active = false

	var events []touch.Event
	for id := t.fingers - 1; id >= 1; id-- {
		events = append(events, touch.Event{
			Action:    touch.ActionPointerUp,
			Pointer:   id,
			Pointers:  t.contacts(pos, id+1),
			Timestamp: when,
		})
	}
	events = append(events, touch.Event{
		Action:    touch.ActionUp,
		Pointer:   0,
		Pointers:  t.contacts(pos, 1),
		Timestamp: when,
	})
	return events
}

// contacts builds the pointer list for the first n simulated fingers, the
// primary at pos and the rest spread to the right.
func (t *touchTranslator) contacts(pos touch.Position, n int) []touch.Pointer {
	pointers := make([]touch.Pointer, n)
	for id := 0; id < n; id++ {
		pointers[id] = touch.Pointer{
			ID:       id,
			Position: touch.Position{X: pos.X + id*fingerSpread, Y: pos.Y},
		}
	}
	return pointers
}

func modFingers(mod tcell.ModMask) int {
	switch {
	case mod&tcell.ModCtrl != 0:
		return 3
	case mod&tcell.ModAlt != 0:
		return 2
	default:
		return 1
	}
}
