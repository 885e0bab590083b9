package lua_runtime

import (
	"fmt"

	"example.com/office/world/entities"
	lua "github.com/yuin/gopher-lua"
)

// convert an event into a table for lua, keyed like its JSON payload
func eventToTable(L *lua.LState, ev entities.Event) (*lua.LTable, error) {
	fields := map[string]any{
		"type":      ev.Type,
		"isSitting": ev.IsSitting,
	}
	if ev.RoomId != "" {
		fields["roomId"] = ev.RoomId
	}

	t, err := mapToTable(L, fields)
	if err != nil {
		return nil, fmt.Errorf("event to table: %w", err)
	}
	return t, nil
}

func stringsToTable(L *lua.LState, values []string) *lua.LTable {
	t := L.CreateTable(len(values), 0)
	for _, v := range values {
		t.Append(lua.LString(v))
	}
	return t
}

// recursively convert a map[string]any into a lua table
func mapToTable(L *lua.LState, m map[string]any) (*lua.LTable, error) {
	t := L.NewTable()

	for k, v := range m {
		luaValue, err := valueToLuaValue(L, v)
		if err != nil {
			return nil, fmt.Errorf("map to lua table: %w", err)
		}

		t.RawSetString(k, luaValue)
	}

	return t, nil
}

func valueToLuaValue(L *lua.LState, v any) (lua.LValue, error) {
	switch x := v.(type) {
	case nil:
		return lua.LNil, nil
	case string:
		return lua.LString(x), nil
	case bool:
		return lua.LBool(x), nil
	case float64:
		return lua.LNumber(x), nil
	case int:
		return lua.LNumber(float64(x)), nil
	case []string:
		return stringsToTable(L, x), nil
	case map[string]any:
		table, err := mapToTable(L, x)
		if err != nil {
			return nil, fmt.Errorf("nested table in value to lua value: %w", err)
		}
		return table, nil
	default:
		return nil, fmt.Errorf("value to lua value invalid type: %v", v)
	}
}
