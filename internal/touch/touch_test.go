package touch

import (
	"testing"
)

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "none"},
		{ActionDown, "down"},
		{ActionPointerDown, "pointer-down"},
		{ActionMove, "move"},
		{ActionPointerUp, "pointer-up"},
		{ActionUp, "up"},
		{ActionCancel, "cancel"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.action.String(); got != tt.expected {
				t.Errorf("Action.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionIsDownIsUp(t *testing.T) {
	downActions := []Action{ActionDown, ActionPointerDown}
	upActions := []Action{ActionUp, ActionPointerUp}
	neither := []Action{ActionNone, ActionMove, ActionCancel}

	for _, a := range downActions {
		if !a.IsDown() {
			t.Errorf("%s.IsDown() = false, want true", a)
		}
		if a.IsUp() {
			t.Errorf("%s.IsUp() = true, want false", a)
		}
	}

	for _, a := range upActions {
		if !a.IsUp() {
			t.Errorf("%s.IsUp() = false, want true", a)
		}
		if a.IsDown() {
			t.Errorf("%s.IsDown() = true, want false", a)
		}
	}

	for _, a := range neither {
		if a.IsDown() || a.IsUp() {
			t.Errorf("%s should be neither down nor up", a)
		}
	}
}

func TestPositionDistance(t *testing.T) {
	tests := []struct {
		p1, p2   Position
		expected int
	}{
		{Position{0, 0}, Position{0, 0}, 0},
		{Position{0, 0}, Position{3, 4}, 7},
		{Position{5, 5}, Position{2, 1}, 7},
		{Position{-1, -1}, Position{1, 1}, 4},
	}

	for _, tt := range tests {
		got := tt.p1.Distance(tt.p2)
		if got != tt.expected {
			t.Errorf("Distance(%v, %v) = %d, want %d", tt.p1, tt.p2, got, tt.expected)
		}
	}
}

func TestEventPointerPosition(t *testing.T) {
	ev := Event{
		Action:  ActionMove,
		Pointer: 2,
		Pointers: []Pointer{
			{ID: 1, Position: Position{X: 10, Y: 20}},
			{ID: 2, Position: Position{X: 30, Y: 40}},
		},
	}

	pos, ok := ev.PointerPosition(2)
	if !ok {
		t.Fatal("Expected pointer 2 to be found")
	}
	if pos.X != 30 || pos.Y != 40 {
		t.Errorf("Position = %v, want {30, 40}", pos)
	}

	pos, ok = ev.ActingPosition()
	if !ok || pos.X != 30 {
		t.Errorf("ActingPosition = %v, %v, want {30, 40}, true", pos, ok)
	}

	if _, ok := ev.PointerPosition(99); ok {
		t.Error("Unknown pointer should not be found")
	}
}

func TestEventFocus(t *testing.T) {
	ev := Event{
		Pointers: []Pointer{
			{ID: 0, Position: Position{X: 10, Y: 20}},
			{ID: 1, Position: Position{X: 30, Y: 40}},
		},
	}

	focus, ok := ev.Focus()
	if !ok {
		t.Fatal("Expected focus for two pointers")
	}
	if focus.X != 20 || focus.Y != 30 {
		t.Errorf("Focus = %v, want {20, 30}", focus)
	}

	empty := Event{}
	if _, ok := empty.Focus(); ok {
		t.Error("Focus of empty event should report false")
	}
}
