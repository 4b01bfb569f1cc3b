package config

import (
	lua "github.com/yuin/gopher-lua"
)

// sandboxLuaVM removes every global that could run commands, touch the
// filesystem, or load code. string, table and math stay available.
func sandboxLuaVM(L *lua.LState) {
	for _, name := range []string{
		"os",
		"io",
		"require",
		"dofile",
		"loadfile",
		"load",
		"loadstring",
		"debug",
		"package",
	} {
		L.SetGlobal(name, lua.LNil)
	}
}

// newSandboxedVM creates a new Lua VM with sandboxing applied.
func newSandboxedVM() *lua.LState {
	L := lua.NewState()
	sandboxLuaVM(L)
	return L
}
