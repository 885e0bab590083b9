package companion

import (
	"slices"

	"example.com/office/world/entities"
	"example.com/office/world/layout"
	"example.com/office/world/scheduler"
	"go.uber.org/zap"
)

const (
	AffordanceMeetingNotes      = "meeting-notes"
	AffordanceMeetingInProgress = "meeting-in-progress"
)

// Room lists what the companion offers while the avatar is seated in it.
type Room struct {
	Affordances []string
}

// Context is what a reaction gets to work with.
type Context struct {
	Event     entities.Event
	Overlay   *Overlay
	Rooms     map[string]Room
	Logger    *zap.Logger
	Scheduler *scheduler.Scheduler
}

// Affordances returns a copy of the room's affordance list.
func (c *Context) Affordances(roomId string) []string {
	return slices.Clone(c.Rooms[roomId].Affordances)
}

type Reaction func(ctx *Context) error

// Script binds event types to the reactions run for them.
type Script struct {
	Rooms     map[string]Room
	Reactions map[string][]Reaction
}

func (s *Script) On(eventType string, r Reaction) {
	if s.Reactions == nil {
		s.Reactions = make(map[string][]Reaction)
	}
	s.Reactions[eventType] = append(s.Reactions[eventType], r)
}

// DefaultScript shows the meeting room tools while seated there and clears
// the overlay on standing up.
func DefaultScript() *Script {
	s := &Script{
		Rooms: map[string]Room{
			layout.RoomMeeting: {Affordances: []string{AffordanceMeetingNotes, AffordanceMeetingInProgress}},
		},
	}
	s.On(entities.EventPlayerSit, ShowSeatAffordances)
	return s
}

func ShowSeatAffordances(ctx *Context) error {
	if !ctx.Event.IsSitting {
		ctx.Overlay.Clear()
		return nil
	}
	for _, name := range ctx.Affordances(ctx.Event.RoomId) {
		ctx.Overlay.Show(name)
	}
	return nil
}
