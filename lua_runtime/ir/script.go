// ir/script.go
package ir

import (
	"errors"
	"fmt"
	"slices"

	"example.com/office/companion"
	"example.com/office/world/entities"
)

type RoomIR struct {
	Affordances []string
}

// ScriptIR is a companion script as read from Lua, before validation.
type ScriptIR struct {
	Rooms     map[string]RoomIR
	Reactions map[string][]companion.Reaction
}

func (s *ScriptIR) Build() (*companion.Script, error) {
	script := &companion.Script{
		Rooms:     make(map[string]companion.Room, len(s.Rooms)),
		Reactions: make(map[string][]companion.Reaction, len(s.Reactions)),
	}
	var errs []error

	for id, room := range s.Rooms {
		if id == "" {
			errs = append(errs, fmt.Errorf("room with an empty id"))
			continue
		}
		if slices.Contains(room.Affordances, "") {
			errs = append(errs, fmt.Errorf("room '%s' has an empty affordance name", id))
			continue
		}
		script.Rooms[id] = companion.Room{Affordances: slices.Clone(room.Affordances)}
	}

	for eventType, reactions := range s.Reactions {
		kind, err := entities.ParseEventType(eventType)
		if err != nil {
			errs = append(errs, fmt.Errorf("reactions: %w", err))
			continue
		}
		for _, r := range reactions {
			script.On(kind, r)
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return script, nil
}
