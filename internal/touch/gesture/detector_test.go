package gesture

import (
	"testing"

	"github.com/dshills/touchpad/internal/touch"
)

type gestureRecord struct {
	events  []Event
	consume bool
}

func (g *gestureRecord) OnTouchpadGesture(ev Event) bool {
	g.events = append(g.events, ev)
	return g.consume
}

type modeRecord struct {
	changes [][2]ScrollMode
}

func (m *modeRecord) OnScrollModeChanged(newMode, oldMode ScrollMode) {
	m.changes = append(m.changes, [2]ScrollMode{newMode, oldMode})
}

// testDetector returns a 200x200 detector with default thresholds
// (edge margin 16, swipe threshold 32) and a recording listener.
func testDetector() (*Detector, *gestureRecord) {
	d := NewDetector(DefaultConfig())
	d.SetSize(200, 200)
	rec := &gestureRecord{consume: true}
	d.SetListener(rec)
	return d, rec
}

func down(id, x, y int) touch.Event {
	return touch.Event{
		Action:   touch.ActionDown,
		Pointer:  id,
		Pointers: []touch.Pointer{{ID: id, Position: touch.Position{X: x, Y: y}}},
	}
}

func moveTo(pts ...touch.Pointer) touch.Event {
	ev := touch.Event{Action: touch.ActionMove, Pointers: pts}
	if len(pts) > 0 {
		ev.Pointer = pts[0].ID
	}
	return ev
}

func up(id, x, y int) touch.Event {
	return touch.Event{
		Action:   touch.ActionUp,
		Pointer:  id,
		Pointers: []touch.Pointer{{ID: id, Position: touch.Position{X: x, Y: y}}},
	}
}

func pt(id, x, y int) touch.Pointer {
	return touch.Pointer{ID: id, Position: touch.Position{X: x, Y: y}}
}

func TestEdgeRightSwipeUp(t *testing.T) {
	d, rec := testDetector()

	d.HandleEvent(down(0, 195, 100))
	d.HandleEvent(moveTo(pt(0, 195, 60)))

	if len(rec.events) != 1 {
		t.Fatalf("Gestures = %v, want one", rec.events)
	}
	got := rec.events[0]
	if got.Kind != KindEdgeRight || got.Direction != DirectionUp {
		t.Errorf("Gesture = %v, want edge-right/up", got)
	}
}

func TestEdgeDetectionPerSide(t *testing.T) {
	tests := []struct {
		name     string
		x, y     int
		dx, dy   int
		expected Kind
	}{
		{"top", 100, 5, 0, 50, KindEdgeTop},
		{"right", 190, 100, -50, 0, KindEdgeRight},
		{"bottom", 100, 190, 0, -50, KindEdgeBottom},
		{"left", 5, 100, 50, 0, KindEdgeLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, rec := testDetector()
			d.HandleEvent(down(0, tt.x, tt.y))
			d.HandleEvent(moveTo(pt(0, tt.x+tt.dx, tt.y+tt.dy)))

			if len(rec.events) != 1 {
				t.Fatalf("Gestures = %v, want one", rec.events)
			}
			if rec.events[0].Kind != tt.expected {
				t.Errorf("Kind = %v, want %v", rec.events[0].Kind, tt.expected)
			}
		})
	}
}

func TestBelowThresholdNoGesture(t *testing.T) {
	d, rec := testDetector()

	d.HandleEvent(down(0, 195, 100))
	mv := d.HandleEvent(moveTo(pt(0, 195, 80))) // 20 < threshold 32

	if len(rec.events) != 0 {
		t.Errorf("Gestures = %v, want none below threshold", rec.events)
	}
	if !mv.IsZero() {
		t.Errorf("Move = %v, want suppressed while candidate pending", mv)
	}
}

func TestPlainMovementPassesThrough(t *testing.T) {
	d, rec := testDetector()

	d.HandleEvent(down(0, 100, 100))
	mv := d.HandleEvent(moveTo(pt(0, 110, 95)))

	if mv.DX != 10 || mv.DY != -5 {
		t.Errorf("Move = %v, want {10, -5}", mv)
	}
	if len(rec.events) != 0 {
		t.Errorf("Gestures = %v, want none for plain movement", rec.events)
	}

	// Deltas are relative to the previous move, not the sequence start.
	mv = d.HandleEvent(moveTo(pt(0, 112, 95)))
	if mv.DX != 2 || mv.DY != 0 {
		t.Errorf("Second move = %v, want {2, 0}", mv)
	}
}

func TestTwoFingerSwipe(t *testing.T) {
	d, rec := testDetector()

	d.HandleEvent(down(0, 80, 100))
	d.HandleEvent(touch.Event{
		Action:   touch.ActionPointerDown,
		Pointer:  1,
		Pointers: []touch.Pointer{pt(0, 80, 100), pt(1, 120, 100)},
	})
	mv := d.HandleEvent(moveTo(pt(0, 80, 50), pt(1, 120, 50)))

	if len(rec.events) != 1 {
		t.Fatalf("Gestures = %v, want one", rec.events)
	}
	got := rec.events[0]
	if got.Kind != KindTwoFinger || got.Direction != DirectionUp {
		t.Errorf("Gesture = %v, want two-finger/up", got)
	}
	if !mv.IsZero() {
		t.Errorf("Move = %v, want zero for multi-finger contact", mv)
	}
}

func TestThreeFingerSwipe(t *testing.T) {
	d, rec := testDetector()

	d.HandleEvent(down(0, 60, 100))
	d.HandleEvent(touch.Event{
		Action:   touch.ActionPointerDown,
		Pointer:  1,
		Pointers: []touch.Pointer{pt(0, 60, 100), pt(1, 100, 100)},
	})
	d.HandleEvent(touch.Event{
		Action:   touch.ActionPointerDown,
		Pointer:  2,
		Pointers: []touch.Pointer{pt(0, 60, 100), pt(1, 100, 100), pt(2, 140, 100)},
	})
	d.HandleEvent(moveTo(pt(0, 20, 100), pt(1, 60, 100), pt(2, 100, 100)))

	if len(rec.events) != 1 {
		t.Fatalf("Gestures = %v, want one", rec.events)
	}
	got := rec.events[0]
	if got.Kind != KindThreeFinger || got.Direction != DirectionLeft {
		t.Errorf("Gesture = %v, want three-finger/left", got)
	}
}

func TestSecondContactCancelsEdgeCandidate(t *testing.T) {
	d, rec := testDetector()

	d.HandleEvent(down(0, 195, 100))
	d.HandleEvent(touch.Event{
		Action:   touch.ActionPointerDown,
		Pointer:  1,
		Pointers: []touch.Pointer{pt(0, 195, 100), pt(1, 150, 100)},
	})
	d.HandleEvent(moveTo(pt(0, 195, 40), pt(1, 150, 40)))

	if len(rec.events) != 1 {
		t.Fatalf("Gestures = %v, want one", rec.events)
	}
	if rec.events[0].Kind != KindTwoFinger {
		t.Errorf("Kind = %v, want two-finger after second contact", rec.events[0].Kind)
	}
}

func TestOneGesturePerSequence(t *testing.T) {
	d, rec := testDetector()

	d.HandleEvent(down(0, 195, 100))
	d.HandleEvent(moveTo(pt(0, 195, 50)))
	d.HandleEvent(moveTo(pt(0, 195, 190))) // big move the other way

	if len(rec.events) != 1 {
		t.Fatalf("Gestures = %v, want exactly one per sequence", rec.events)
	}

	mv := d.HandleEvent(moveTo(pt(0, 150, 190)))
	if !mv.IsZero() {
		t.Errorf("Move = %v, want zero while sequence inert", mv)
	}

	// A fresh sequence can recognize again.
	d.HandleEvent(up(0, 195, 190))
	d.HandleEvent(down(0, 195, 100))
	d.HandleEvent(moveTo(pt(0, 195, 50)))
	if len(rec.events) != 2 {
		t.Errorf("Gestures = %v, want a second after the sequence ended", rec.events)
	}
}

func TestUnconsumedGestureStillInert(t *testing.T) {
	d, rec := testDetector()
	rec.consume = false

	d.HandleEvent(down(0, 5, 100))
	d.HandleEvent(moveTo(pt(0, 60, 100)))
	d.HandleEvent(moveTo(pt(0, 130, 100)))

	if len(rec.events) != 1 {
		t.Errorf("Gestures = %v, want one even when unconsumed", rec.events)
	}
}

func TestCancelResetsSequence(t *testing.T) {
	d, rec := testDetector()

	d.HandleEvent(down(0, 195, 100))
	d.HandleEvent(touch.Event{Action: touch.ActionCancel})
	mv := d.HandleEvent(moveTo(pt(0, 195, 40)))

	if len(rec.events) != 0 {
		t.Errorf("Gestures = %v, want none after cancel", rec.events)
	}
	if !mv.IsZero() {
		t.Errorf("Move = %v, want zero after cancel", mv)
	}
}

func TestPointerUpRecalibratesFocus(t *testing.T) {
	d, _ := testDetector()

	d.HandleEvent(down(0, 100, 100))
	d.HandleEvent(moveTo(pt(0, 110, 100)))
	d.HandleEvent(touch.Event{
		Action:   touch.ActionPointerUp,
		Pointer:  1,
		Pointers: []touch.Pointer{pt(0, 110, 100), pt(1, 180, 100)},
	})

	// First move after a contact change only recalibrates.
	mv := d.HandleEvent(moveTo(pt(0, 110, 100)))
	if !mv.IsZero() {
		t.Errorf("Recalibration move = %v, want zero", mv)
	}

	mv = d.HandleEvent(moveTo(pt(0, 115, 100)))
	if mv.DX != 5 || mv.DY != 0 {
		t.Errorf("Move after recalibration = %v, want {5, 0}", mv)
	}
}

func TestNilListenerDoesNotPanic(t *testing.T) {
	d := NewDetector(DefaultConfig())
	d.SetSize(200, 200)

	d.HandleEvent(down(0, 195, 100))
	d.HandleEvent(moveTo(pt(0, 195, 40)))
}

func TestNoEdgeDetectionWithoutSize(t *testing.T) {
	d := NewDetector(DefaultConfig())
	rec := &gestureRecord{consume: true}
	d.SetListener(rec)

	d.HandleEvent(down(0, 1, 100))
	mv := d.HandleEvent(moveTo(pt(0, 60, 100)))

	if len(rec.events) != 0 {
		t.Errorf("Gestures = %v, want none without a configured size", rec.events)
	}
	if mv.DX != 59 {
		t.Errorf("Move = %v, want plain movement", mv)
	}
}

func TestScrollModeTransitions(t *testing.T) {
	d, _ := testDetector()
	rec := &modeRecord{}
	d.SetScrollModeListener(rec)

	d.ActivateScrollMode(ScrollVertical)
	d.ActivateScrollMode(ScrollVertical) // idempotent, silent
	d.ActivateScrollMode(ScrollHorizontal)
	d.DeactivateScrollMode()

	want := [][2]ScrollMode{
		{ScrollVertical, ScrollNone},
		{ScrollHorizontal, ScrollVertical},
		{ScrollNone, ScrollHorizontal},
	}
	if len(rec.changes) != len(want) {
		t.Fatalf("Changes = %v, want %v", rec.changes, want)
	}
	for i := range want {
		if rec.changes[i] != want[i] {
			t.Errorf("Change %d = %v, want %v", i, rec.changes[i], want[i])
		}
	}
}

func TestScrollModeSurvivesSequenceEnd(t *testing.T) {
	d, _ := testDetector()

	d.ActivateScrollMode(ScrollVertical)
	d.HandleEvent(down(0, 100, 100))
	d.HandleEvent(up(0, 100, 100))

	if d.ScrollMode() != ScrollVertical {
		t.Errorf("ScrollMode = %v, want vertical across sequences", d.ScrollMode())
	}

	d.HandleEvent(touch.Event{Action: touch.ActionCancel})
	if d.ScrollMode() != ScrollVertical {
		t.Errorf("Detector cancel must not reset scroll mode; view owns that call")
	}
}

func BenchmarkDetectorMove(b *testing.B) {
	d, _ := testDetector()
	d.HandleEvent(down(0, 100, 100))
	ev := moveTo(pt(0, 105, 100))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.HandleEvent(ev)
	}
}
