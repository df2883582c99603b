package scripting

import lua "github.com/yuin/gopher-lua"

// RegisterModules registers the sheet.* helper table into L:
//
//	sheet.count(codes, code)    occurrences of code in the array codes
//	sheet.contains(codes, code) whether code occurs in codes
//
// Precondition: L must be from NewSandboxedState.
// Postcondition: sheet global is defined in L.
func RegisterModules(L *lua.LState) {
	sheet := L.NewTable()
	L.SetField(sheet, "count", L.NewFunction(luaCount))
	L.SetField(sheet, "contains", L.NewFunction(luaContains))
	L.SetGlobal("sheet", sheet)
}

func countIn(L *lua.LState) int {
	codes := L.CheckTable(1)
	code := L.CheckString(2)
	n := 0
	codes.ForEach(func(_, v lua.LValue) {
		if s, ok := v.(lua.LString); ok && string(s) == code {
			n++
		}
	})
	return n
}

func luaCount(L *lua.LState) int {
	L.Push(lua.LNumber(countIn(L)))
	return 1
}

func luaContains(L *lua.LState) int {
	L.Push(lua.LBool(countIn(L) > 0))
	return 1
}
