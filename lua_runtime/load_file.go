package lua_runtime

import (
	"errors"
	"fmt"

	"example.com/office/companion"
	"example.com/office/lua_runtime/ir"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// LoadFile runs a companion script and builds it. The file returns a table
// with optional 'rooms' and 'reactions' fields.
func (lr *LuaRuntime) LoadFile(path string) (*companion.Script, error) {
	if err := lr.L.DoFile(path); err != nil {
		return nil, fmt.Errorf("load lua file: %w", err)
	}

	val := lr.L.Get(-1)
	lr.L.Pop(1)

	root, ok := val.(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("file %s did not return a table", path)
	}

	scriptIR, err := lr.buildScriptIR(root)
	if err != nil {
		return nil, fmt.Errorf("could not build script IR for '%s': %w", path, err)
	}

	script, err := scriptIR.Build()
	if err != nil {
		return nil, fmt.Errorf("could not build script '%s': %w", path, err)
	}

	lr.logger.Info("companion script loaded",
		zap.String("path", path),
		zap.Int("rooms", len(script.Rooms)),
		zap.Int("reactions", len(script.Reactions)))

	return script, nil
}

func (lr *LuaRuntime) buildScriptIR(root *lua.LTable) (*ir.ScriptIR, error) {
	s := &ir.ScriptIR{}
	var errs []error

	if roomsTable := tryGetTable(root, "rooms"); roomsTable != nil {
		rooms, err := buildRooms(roomsTable)
		if err != nil {
			errs = append(errs, fmt.Errorf("could not build rooms: %w", err))
		}
		s.Rooms = rooms
	} else if root.RawGetString("rooms") != lua.LNil {
		errs = append(errs, fmt.Errorf("field 'rooms' is not a table"))
	}

	if reactionsTable := tryGetTable(root, "reactions"); reactionsTable != nil {
		reactions, err := lr.buildReactions(reactionsTable)
		if err != nil {
			errs = append(errs, fmt.Errorf("could not build reactions: %w", err))
		}
		s.Reactions = reactions
	} else if root.RawGetString("reactions") != lua.LNil {
		errs = append(errs, fmt.Errorf("field 'reactions' is not a table"))
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return s, nil
}

func buildRooms(roomsTable *lua.LTable) (map[string]ir.RoomIR, error) {
	rooms := make(map[string]ir.RoomIR)
	var errs []error

	roomsTable.ForEach(func(k, v lua.LValue) {
		id := lua.LVAsString(k)

		t, ok := v.(*lua.LTable)
		if !ok {
			errs = append(errs, fmt.Errorf("room '%s' is not a table", id))
			return
		}

		rooms[id] = ir.RoomIR{Affordances: getStringArray(t, "affordances")}
	})

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return rooms, nil
}

// buildReactions accepts either one function or a list of functions per
// event type.
func (lr *LuaRuntime) buildReactions(reactionsTable *lua.LTable) (map[string][]companion.Reaction, error) {
	reacts := make(map[string][]companion.Reaction)
	var errs []error

	reactionsTable.ForEach(func(k, v lua.LValue) {
		eventType := lua.LVAsString(k)

		switch fn := v.(type) {
		case *lua.LFunction:
			reacts[eventType] = append(reacts[eventType], lr.wrapLuaReaction(eventType, fn))
		case *lua.LTable:
			fn.ForEach(func(_, item lua.LValue) {
				f, ok := item.(*lua.LFunction)
				if !ok {
					errs = append(errs, fmt.Errorf("reaction list for '%s' holds a non-function", eventType))
					return
				}
				reacts[eventType] = append(reacts[eventType], lr.wrapLuaReaction(eventType, f))
			})
		default:
			errs = append(errs, fmt.Errorf("reaction '%s' is not a function", eventType))
		}
	})

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return reacts, nil
}
