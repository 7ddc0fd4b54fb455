package domain

import "fmt"

// EventType enumerates the fixed set of match event kinds.
type EventType string

const (
	EventTouchdown    EventType = "Touchdown"
	EventOnePointTry  EventType = "One-Point-Try"
	EventTwoPointTry  EventType = "Two-Point-Try"
	EventInterception EventType = "Interception"
	EventSack         EventType = "Sack"
	EventSafety       EventType = "Safety"
)

// EventTypes lists the valid event types in upstream order.
var EventTypes = []EventType{
	EventTouchdown,
	EventOnePointTry,
	EventTwoPointTry,
	EventInterception,
	EventSack,
	EventSafety,
}

// ParseEventType validates a raw string against the fixed enumeration.
func ParseEventType(raw string) (EventType, error) {
	for _, t := range EventTypes {
		if string(t) == raw {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown event type %q", raw)
}

// TypeScore maps an event type to its score contribution. Interceptions and
// sacks are logged for statistics and carry no points.
func TypeScore(t EventType) int {
	switch t {
	case EventTouchdown:
		return 6
	case EventOnePointTry:
		return 1
	case EventTwoPointTry, EventSafety:
		return 2
	default:
		return 0
	}
}
