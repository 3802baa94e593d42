// Package script runs an optional user Lua file that customizes the
// keycast display: a `symbols` table extends the glyph table, and a
// `transform` function may rewrite or drop individual symbols.
package script

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// Hook wraps a loaded user script.
//
// gopher-lua's LState is not goroutine-safe. The caster pipeline is
// single-threaded, so all Hook calls must come from that one path.
type Hook struct {
	state *lua.LState
}

// Load executes the script at path and returns the hook. Script
// errors fail loading; a hook is never half-initialized.
func Load(path string) (*Hook, error) {
	state := lua.NewState()
	if err := state.DoFile(path); err != nil {
		state.Close()
		return nil, fmt.Errorf("loading script %s: %w", path, err)
	}
	return &Hook{state: state}, nil
}

// Close releases the Lua state.
func (h *Hook) Close() {
	h.state.Close()
}

// Symbols returns the entries of the script's global `symbols` table,
// or nil when the script defines none. Non-string pairs are skipped.
func (h *Hook) Symbols() map[string]string {
	tbl, ok := h.state.GetGlobal("symbols").(*lua.LTable)
	if !ok {
		return nil
	}

	symbols := make(map[string]string)
	tbl.ForEach(func(k, v lua.LValue) {
		name, nameOK := k.(lua.LString)
		glyph, glyphOK := v.(lua.LString)
		if nameOK && glyphOK {
			symbols[string(name)] = string(glyph)
		}
	})
	if len(symbols) == 0 {
		return nil
	}
	return symbols
}

// HasTransform reports whether the script defines a transform function.
func (h *Hook) HasTransform() bool {
	_, ok := h.state.GetGlobal("transform").(*lua.LFunction)
	return ok
}

// Transform passes a display symbol through the script's `transform`
// function. Returning nil or an empty string drops the symbol. When
// the script has no transform function the symbol passes unchanged; a
// runtime error is returned with the symbol left unchanged, so the
// caller can log and continue.
func (h *Hook) Transform(sym string) (string, bool, error) {
	fn, ok := h.state.GetGlobal("transform").(*lua.LFunction)
	if !ok {
		return sym, true, nil
	}

	h.state.Push(fn)
	h.state.Push(lua.LString(sym))
	if err := h.state.PCall(1, 1, nil); err != nil {
		return sym, true, fmt.Errorf("transform(%q): %w", sym, err)
	}

	ret := h.state.Get(-1)
	h.state.Pop(1)

	switch v := ret.(type) {
	case lua.LString:
		if v == "" {
			return "", false, nil
		}
		return string(v), true, nil
	case *lua.LNilType:
		return "", false, nil
	default:
		// Non-string results are ignored rather than displayed raw.
		return sym, true, nil
	}
}
