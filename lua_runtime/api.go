package lua_runtime

import (
	"fmt"
	"time"

	"example.com/office/companion"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

func (lr *LuaRuntime) wrapLuaReaction(eventType string, fn *lua.LFunction) companion.Reaction {
	return func(ctx *companion.Context) error {
		if ctx.Scheduler == nil {
			return fmt.Errorf("lua reaction for '%s' needs a scheduler", eventType)
		}

		// schedule a job to run the reaction function, in the single-threaded scheduler
		ctx.Scheduler.After("lua:"+eventType, 0, lr.runner(fn, ctx))
		return nil
	}
}

func (lr *LuaRuntime) runner(fn *lua.LFunction, ctx *companion.Context) func() error {
	return func() error {
		co, _ := lr.L.NewThread()
		injectOfficeApi(co, lr, ctx)

		if err := co.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true}); err != nil {
			return err
		}

		return nil
	}
}

// injectOfficeApi exposes the API table to a reaction running on thread L.
func injectOfficeApi(L *lua.LState, lr *LuaRuntime, ctx *companion.Context) {
	api := L.NewTable()

	L.SetField(api, "event", L.NewClosure(getApiEvent(ctx)))

	L.SetField(api, "show", L.NewClosure(getApiShow(ctx)))
	L.SetField(api, "hide", L.NewClosure(getApiHide(ctx)))
	L.SetField(api, "clear", L.NewClosure(getApiClear(ctx)))
	L.SetField(api, "visible", L.NewClosure(getApiVisible(ctx)))

	L.SetField(api, "affordances", L.NewClosure(getApiAffordances(ctx)))
	L.SetField(api, "log", L.NewClosure(getApiLog(ctx)))

	L.SetField(api, "after", L.NewClosure(getApiAfter(lr, ctx)))

	L.SetGlobal("API", api)
}

func luaErr(L *lua.LState, format string, args ...interface{}) int {
	L.RaiseError(format, args...)
	return 0
}

func getApiEvent(ctx *companion.Context) func(L *lua.LState) int {
	return func(L *lua.LState) int {
		t, err := eventToTable(L, ctx.Event)
		if err != nil {
			return luaErr(L, "API.event: %v", err)
		}
		L.Push(t)
		return 1
	}
}

func getApiShow(ctx *companion.Context) func(L *lua.LState) int {
	return func(L *lua.LState) int {
		name := L.CheckString(1)
		if name == "" {
			L.ArgError(1, "API.show: affordance name must not be empty")
			return 0
		}
		ctx.Overlay.Show(name)
		return 0
	}
}

func getApiHide(ctx *companion.Context) func(L *lua.LState) int {
	return func(L *lua.LState) int {
		ctx.Overlay.Hide(L.CheckString(1))
		return 0
	}
}

func getApiClear(ctx *companion.Context) func(L *lua.LState) int {
	return func(L *lua.LState) int {
		ctx.Overlay.Clear()
		return 0
	}
}

func getApiVisible(ctx *companion.Context) func(L *lua.LState) int {
	return func(L *lua.LState) int {
		L.Push(stringsToTable(L, ctx.Overlay.Visible()))
		return 1
	}
}

func getApiAffordances(ctx *companion.Context) func(L *lua.LState) int {
	return func(L *lua.LState) int {
		roomId := L.OptString(1, ctx.Event.RoomId)
		L.Push(stringsToTable(L, ctx.Affordances(roomId)))
		return 1
	}
}

func getApiLog(ctx *companion.Context) func(L *lua.LState) int {
	return func(L *lua.LState) int {
		msg := L.CheckString(1)
		if ctx.Logger != nil {
			ctx.Logger.Info(msg, zap.String("event", ctx.Event.Type), zap.String("source", "lua"))
		}
		return 0
	}
}

func getApiAfter(lr *LuaRuntime, ctx *companion.Context) func(L *lua.LState) int {
	return func(L *lua.LState) int {
		msDelay := L.CheckInt(1)
		if msDelay < 0 {
			L.ArgError(1, "API.after: delay must not be negative")
			return 0
		}

		f := L.CheckFunction(2)

		ctx.Scheduler.After("lua:after", time.Duration(msDelay)*time.Millisecond, lr.runner(f, ctx))
		return 0
	}
}
