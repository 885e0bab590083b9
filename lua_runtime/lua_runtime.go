package lua_runtime

import (
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// LuaRuntime owns the Lua state scripts are loaded into. After loading, the
// state must only be touched from the scheduler goroutine.
type LuaRuntime struct {
	L      *lua.LState
	logger *zap.Logger
}

func NewLuaRuntime(logger *zap.Logger) *LuaRuntime {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LuaRuntime{L: lua.NewState(), logger: logger}
}

func (lr *LuaRuntime) Close() { lr.L.Close() }
