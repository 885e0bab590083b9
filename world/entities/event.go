package entities

import "fmt"

const EventPlayerSit = "player-sit"

// Event is a notification crossing the bridge from the simulation to its host.
// Only seating transitions produce one.
type Event struct {
	Type      string `json:"type"`
	IsSitting bool   `json:"isSitting"`
	RoomId    string `json:"roomId,omitempty"`
}

func SatDown(roomId string) Event {
	return Event{Type: EventPlayerSit, IsSitting: true, RoomId: roomId}
}

func StoodUp() Event {
	return Event{Type: EventPlayerSit, IsSitting: false}
}

// ParseEventType checks that s names an event the simulation can emit.
func ParseEventType(s string) (string, error) {
	switch s {
	case EventPlayerSit:
		return s, nil
	default:
		return "", fmt.Errorf("unknown event type '%s'", s)
	}
}
