package touch

import "time"

// Action represents the type of touch action.
type Action uint8

const (
	// ActionNone indicates no action.
	ActionNone Action = iota
	// ActionDown indicates the first pointer touched down.
	ActionDown
	// ActionPointerDown indicates an additional pointer touched down.
	ActionPointerDown
	// ActionMove indicates one or more pointers moved.
	ActionMove
	// ActionPointerUp indicates a non-final pointer lifted.
	ActionPointerUp
	// ActionUp indicates the final pointer lifted.
	ActionUp
	// ActionCancel indicates the touch sequence was aborted.
	ActionCancel
)

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case ActionDown:
		return "down"
	case ActionPointerDown:
		return "pointer-down"
	case ActionMove:
		return "move"
	case ActionPointerUp:
		return "pointer-up"
	case ActionUp:
		return "up"
	case ActionCancel:
		return "cancel"
	default:
		return "none"
	}
}

// IsDown returns true if the action adds a pointer.
func (a Action) IsDown() bool {
	return a == ActionDown || a == ActionPointerDown
}

// IsUp returns true if the action removes a pointer.
func (a Action) IsUp() bool {
	return a == ActionUp || a == ActionPointerUp
}

// Position represents a touchpad coordinate.
type Position struct {
	X int
	Y int
}

// Equal returns true if two positions are equal.
func (p Position) Equal(other Position) bool {
	return p.X == other.X && p.Y == other.Y
}

// Distance returns the Manhattan distance (|dx| + |dy|) between two
// positions. Manhattan distance is used for threshold checks as it is cheap
// and close enough for UI purposes.
func (p Position) Distance(other Position) int {
	dx := p.X - other.X
	if dx < 0 {
		dx = -dx
	}
	dy := p.Y - other.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Pointer represents one active touch contact.
type Pointer struct {
	// ID is stable for the lifetime of the contact.
	ID int

	// Position is the current location of the contact.
	Position Position
}

// Event represents a raw touch input event.
type Event struct {
	// Action is the type of touch action.
	Action Action

	// Pointer is the ID of the pointer the action applies to. For
	// ActionMove events it identifies the primary pointer.
	Pointer int

	// Pointers holds all currently active contacts with their positions,
	// including the acting pointer. For ActionUp and ActionPointerUp the
	// lifting pointer is still included with its last position.
	Pointers []Pointer

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// PointerPosition returns the position of the pointer with the given ID.
func (e Event) PointerPosition(id int) (Position, bool) {
	for _, p := range e.Pointers {
		if p.ID == id {
			return p.Position, true
		}
	}
	return Position{}, false
}

// ActingPosition returns the position of the acting pointer.
func (e Event) ActingPosition() (Position, bool) {
	return e.PointerPosition(e.Pointer)
}

// PointerCount returns the number of active contacts.
func (e Event) PointerCount() int {
	return len(e.Pointers)
}

// Focus returns the centroid of all active contacts. With no contacts it
// returns the zero position and false.
func (e Event) Focus() (Position, bool) {
	if len(e.Pointers) == 0 {
		return Position{}, false
	}
	var sumX, sumY int
	for _, p := range e.Pointers {
		sumX += p.Position.X
		sumY += p.Position.Y
	}
	return Position{X: sumX / len(e.Pointers), Y: sumY / len(e.Pointers)}, true
}
