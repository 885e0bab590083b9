package input

import (
	"errors"
	"fmt"
	"maps"
	"sort"
	"strings"
)

type Action string

const (
	ActionLeft     Action = "left"
	ActionRight    Action = "right"
	ActionUp       Action = "up"
	ActionDown     Action = "down"
	ActionInteract Action = "interact"
	ActionSit      Action = "sit"
)

var Actions = map[Action]struct{}{
	ActionLeft:     {},
	ActionRight:    {},
	ActionUp:       {},
	ActionDown:     {},
	ActionInteract: {},
	ActionSit:      {},
}

// DefaultBindings maps key names onto actions: arrows and WASD move, space
// works doors, e sits down or stands up.
var DefaultBindings = map[string]Action{
	"left":  ActionLeft,
	"a":     ActionLeft,
	"right": ActionRight,
	"d":     ActionRight,
	"up":    ActionUp,
	"w":     ActionUp,
	"down":  ActionDown,
	"s":     ActionDown,

	"space": ActionInteract,
	"e":     ActionSit,
}

const HelpText = "Space: Door | E: Sit/Leave"

type Bindings map[string]Action

func NewBindings() Bindings {
	b := make(Bindings, len(DefaultBindings))
	maps.Copy(b, DefaultBindings)
	return b
}

// Register adds or replaces key bindings. Keys are case-insensitive. Every
// override is checked first; on any error none of them is applied.
func (b Bindings) Register(overrides map[string]string) error {
	valid := make(map[string]Action, len(overrides))
	var errs []error

	for key, action := range overrides {
		if strings.TrimSpace(key) == "" {
			errs = append(errs, fmt.Errorf("binding for action '%s' has no key", action))
			continue
		}

		a := Action(strings.ToLower(strings.TrimSpace(action)))
		if _, ok := Actions[a]; !ok {
			errs = append(errs, fmt.Errorf("key '%s' bound to unknown action '%s'", key, action))
			continue
		}

		valid[normalizeKey(key)] = a
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	maps.Copy(b, valid)
	return nil
}

// Keys lists the keys bound to an action, sorted.
func (b Bindings) Keys(action Action) []string {
	var keys []string
	for k, a := range b {
		if a == action {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Sample turns the keys held during one frame into a State. Keys with no
// binding are returned so the caller can report them.
func (b Bindings) Sample(keys []string) (State, []string) {
	var s State
	var unknown []string

	for _, key := range keys {
		action, ok := b[normalizeKey(key)]
		if !ok {
			unknown = append(unknown, key)
			continue
		}
		s.set(action)
	}

	return s, unknown
}

func normalizeKey(key string) string {
	k := strings.ToLower(strings.TrimSpace(key))
	switch k {
	case "spacebar":
		return "space"
	case "arrowleft":
		return "left"
	case "arrowright":
		return "right"
	case "arrowup":
		return "up"
	case "arrowdown":
		return "down"
	}
	return k
}
