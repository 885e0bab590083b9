// Package input describes what the simulation consumes from the keyboard:
// which keys are held this frame and which buttons were just pressed.
package input

// State is the set of actions held during one frame. The zero value means no
// input, which is also what a missing keyboard produces.
type State struct {
	Left, Right, Up, Down bool
	Interact, Sit         bool
}

func (s *State) set(a Action) {
	switch a {
	case ActionLeft:
		s.Left = true
	case ActionRight:
		s.Right = true
	case ActionUp:
		s.Up = true
	case ActionDown:
		s.Down = true
	case ActionInteract:
		s.Interact = true
	case ActionSit:
		s.Sit = true
	}
}

// Edges are the buttons that went from released to pressed this frame.
type Edges struct {
	Interact, Sit bool
}

// EdgeDetector remembers the previous frame so a held button fires once.
type EdgeDetector struct {
	interact, sit bool
}

func (d *EdgeDetector) Detect(s State) Edges {
	e := Edges{
		Interact: s.Interact && !d.interact,
		Sit:      s.Sit && !d.sit,
	}
	d.interact = s.Interact
	d.sit = s.Sit
	return e
}
