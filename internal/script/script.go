package script

import (
	"errors"
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/touchpad/internal/hid"
	"github.com/dshills/touchpad/internal/touch/gesture"
)

// Errors returned by the script engine.
var (
	ErrEngineClosed = errors.New("script engine is closed")
	ErrNoHandler    = errors.New("script defines no on_gesture function")
)

// handlerName is the global function the script must define.
const handlerName = "on_gesture"

// Binding is what the touchpad Lua module drives. The view satisfies the
// scroll mode half; the HID sink the rest.
type Binding interface {
	Mouse() hid.Mouse
	ActivateScrollMode(mode gesture.ScrollMode)
	DeactivateScrollMode()
}

// Engine hosts a loaded gesture script.
type Engine struct {
	state   *lua.LState
	binding Binding
	closed  bool
}

// New loads the Lua script at path and verifies it defines on_gesture.
// The binding backs the touchpad module exposed to the script.
func New(path string, binding Binding) (*Engine, error) {
	L := lua.NewState()
	e := &Engine{state: L, binding: binding}
	e.registerModule()

	if err := L.DoFile(path); err != nil {
		L.Close()
		return nil, fmt.Errorf("loading script %s: %w", path, err)
	}
	if _, ok := L.GetGlobal(handlerName).(*lua.LFunction); !ok {
		L.Close()
		return nil, fmt.Errorf("%s: %w", path, ErrNoHandler)
	}
	return e, nil
}

// NewFromString loads a script from source text. Used by tests and the
// config-embedded hook form.
func NewFromString(src string, binding Binding) (*Engine, error) {
	L := lua.NewState()
	e := &Engine{state: L, binding: binding}
	e.registerModule()

	if err := L.DoString(src); err != nil {
		L.Close()
		return nil, fmt.Errorf("loading script: %w", err)
	}
	if _, ok := L.GetGlobal(handlerName).(*lua.LFunction); !ok {
		L.Close()
		return nil, ErrNoHandler
	}
	return e, nil
}

// OnGesture invokes the script's on_gesture handler. It reports whether the
// script consumed the gesture. A script error leaves the gesture unconsumed.
func (e *Engine) OnGesture(ev gesture.Event) (bool, error) {
	if e.closed {
		return false, ErrEngineClosed
	}

	L := e.state
	fn := L.GetGlobal(handlerName)
	if err := L.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true},
		lua.LString(ev.Kind.String()),
		lua.LString(ev.Direction.String()),
	); err != nil {
		return false, fmt.Errorf("%s: %w", handlerName, err)
	}

	ret := L.Get(-1)
	L.Pop(1)
	return lua.LVAsBool(ret), nil
}

// Close releases the Lua state. Safe to call more than once.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	e.closed = true
	e.state.Close()
}

// registerModule installs the touchpad table into the script globals.
func (e *Engine) registerModule() {
	L := e.state
	mod := L.NewTable()
	L.SetFuncs(mod, map[string]lua.LGFunction{
		"click":       e.luaClick,
		"press":       e.luaPress,
		"release":     e.luaRelease,
		"move":        e.luaMove,
		"scroll":      e.luaScroll,
		"scroll_mode": e.luaScrollMode,
	})
	L.SetGlobal("touchpad", mod)
}

func (e *Engine) luaClick(L *lua.LState) int {
	if m := e.binding.Mouse(); m != nil {
		m.ClickButton(buttonFromName(L.CheckString(1)))
	}
	return 0
}

func (e *Engine) luaPress(L *lua.LState) int {
	if m := e.binding.Mouse(); m != nil {
		m.PressButton(buttonFromName(L.CheckString(1)))
	}
	return 0
}

func (e *Engine) luaRelease(L *lua.LState) int {
	if m := e.binding.Mouse(); m != nil {
		m.ReleaseButton(buttonFromName(L.CheckString(1)))
	}
	return 0
}

func (e *Engine) luaMove(L *lua.LState) int {
	dx := L.CheckInt(1)
	dy := L.CheckInt(2)
	if m := e.binding.Mouse(); m != nil {
		m.MoveMouse(dx, dy)
	}
	return 0
}

func (e *Engine) luaScroll(L *lua.LState) int {
	dy := L.CheckInt(1)
	dx := L.OptInt(2, 0)
	if m := e.binding.Mouse(); m != nil {
		m.ScrollWheel(dy, dx)
	}
	return 0
}

func (e *Engine) luaScrollMode(L *lua.LState) int {
	switch name := L.CheckString(1); name {
	case "vertical":
		e.binding.ActivateScrollMode(gesture.ScrollVertical)
	case "horizontal":
		e.binding.ActivateScrollMode(gesture.ScrollHorizontal)
	case "all":
		e.binding.ActivateScrollMode(gesture.ScrollAll)
	case "none":
		e.binding.DeactivateScrollMode()
	default:
		L.ArgError(1, fmt.Sprintf("unknown scroll mode %q", name))
	}
	return 0
}

// buttonFromName maps a Lua button name to a HID button. Unknown names map
// to ButtonNone, which every sink ignores.
func buttonFromName(name string) hid.Button {
	switch name {
	case "first", "left":
		return hid.ButtonFirst
	case "second", "right":
		return hid.ButtonSecond
	case "middle":
		return hid.ButtonMiddle
	case "button4", "back":
		return hid.Button4
	case "button5", "forward":
		return hid.Button5
	default:
		return hid.ButtonNone
	}
}
