package lua_runtime

import (
	lua "github.com/yuin/gopher-lua"
)

func getStringArray(t *lua.LTable, key string) []string {
	if v, ok := t.RawGetString(key).(*lua.LTable); ok {
		var out []string
		v.ForEach(func(_, x lua.LValue) {
			if s, ok := x.(lua.LString); ok {
				out = append(out, string(s))
			}
		})
		return out
	}
	return nil
}

func tryGetTable(t *lua.LTable, key string) *lua.LTable {
	if v := t.RawGetString(key); v != lua.LNil {
		if tbl, ok := v.(*lua.LTable); ok {
			return tbl
		}
	}
	return nil
}
