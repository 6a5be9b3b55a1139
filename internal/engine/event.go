package engine

import "fmt"

// EventKind is the phase of a pointer event.
type EventKind int

const (
	Down EventKind = iota + 1
	Move
	Up
)

func (k EventKind) String() string {
	switch k {
	case Down:
		return "down"
	case Move:
		return "move"
	case Up:
		return "up"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// ParseEventKind maps "down", "move" and "up" to their kinds.
func ParseEventKind(s string) (EventKind, error) {
	switch s {
	case "down":
		return Down, nil
	case "move":
		return Move, nil
	case "up":
		return Up, nil
	}
	return 0, fmt.Errorf("unknown pointer event %q", s)
}

// Event is a pointer or touch event in device space, relative to the
// top-left corner of the rendering surface.
type Event struct {
	Kind EventKind
	X, Y float64
}

// Controls tells the host which affordances to enable.
type Controls struct {
	UndoAvailable  bool
	RedoAvailable  bool
	ClearAvailable bool
	Interacting    bool
}
