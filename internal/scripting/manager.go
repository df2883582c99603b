package scripting

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"sync"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// ErrNotANumber is returned when a hook returns something other than a number or nil.
var ErrNotANumber = errors.New("hook did not return a number")

// Manager owns one sandboxed LState holding the house-rule scripts and
// dispatches numeric hooks into it.
//
// An LState is single-threaded; Manager serializes every call on it, so a
// Manager is safe for concurrent use.
type Manager struct {
	mu        sync.Mutex
	state     *lua.LState
	instLimit int
	logger    *zap.Logger
}

// NewManager creates a Manager without scripts.
//
// Precondition: logger must be non-nil; instLimit >= 0 (0 uses DefaultInstructionLimit).
// Postcondition: Returns a non-nil Manager; every hook is missing until Load.
func NewManager(instLimit int, logger *zap.Logger) *Manager {
	if logger == nil {
		panic("scripting.NewManager: precondition violated: logger must be non-nil")
	}
	return &Manager{instLimit: instLimit, logger: logger}
}

// Load creates a sandboxed VM, registers the sheet.* helpers, then executes
// every *.lua file in scriptDir in lexicographic order. On success the new
// VM replaces the previous one.
//
// Precondition: scriptDir must be a readable directory.
// Postcondition: returns error on read or Lua load failure, leaving the previous VM in place.
func (m *Manager) Load(scriptDir string) error {
	entries, err := os.ReadDir(scriptDir)
	if err != nil {
		return fmt.Errorf("scripting: reading script dir %q: %w", scriptDir, err)
	}
	var luaFiles []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".lua" {
			luaFiles = append(luaFiles, filepath.Join(scriptDir, e.Name()))
		}
	}
	sort.Strings(luaFiles)

	L := NewSandboxedState(m.instLimit)
	RegisterModules(L)
	for _, path := range luaFiles {
		if err := limited(L, m.instLimit, func() error { return L.DoFile(path) }); err != nil {
			L.Close()
			return fmt.Errorf("scripting: loading %q: %w", path, err)
		}
	}

	m.mu.Lock()
	old := m.state
	m.state = L
	m.mu.Unlock()
	if old != nil {
		old.Close()
	}
	m.logger.Info("scripting: house rules loaded",
		zap.String("dir", scriptDir),
		zap.Int("files", len(luaFiles)),
	)
	return nil
}

// Close releases the VM. Hooks are missing afterwards.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != nil {
		m.state.Close()
		m.state = nil
	}
}

// HasHook reports whether a global function named hook is defined.
func (m *Manager) HasHook(hook string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == nil {
		return false
	}
	_, ok := m.state.GetGlobal(hook).(*lua.LFunction)
	return ok
}

// CallNumber calls the named Lua global function with args converted to Lua
// values and returns its result as an int. Supported arguments are string,
// int, bool, []string (as an array) and nil.
//
// Postcondition: ok is false and err nil when no VM is loaded or the hook is
// not defined; a nil result is 0; fractional results are truncated toward zero.
// Lua runtime errors and instruction limit overruns are returned unlogged;
// the caller decides how to report them.
func (m *Manager) CallNumber(hook string, args ...any) (n int, ok bool, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	L := m.state
	if L == nil {
		return 0, false, nil
	}
	fn, isFn := L.GetGlobal(hook).(*lua.LFunction)
	if !isFn {
		return 0, false, nil
	}
	lvs := make([]lua.LValue, len(args))
	for i, a := range args {
		lv, err := toLValue(L, a)
		if err != nil {
			return 0, false, fmt.Errorf("scripting: hook %q argument %d: %w", hook, i+1, err)
		}
		lvs[i] = lv
	}

	err = limited(L, m.instLimit, func() error {
		return L.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, lvs...)
	})
	if err != nil {
		return 0, true, fmt.Errorf("scripting: hook %q: %w", hook, err)
	}

	ret := L.Get(-1)
	L.Pop(1)
	switch v := ret.(type) {
	case lua.LNumber:
		return int(math.Trunc(float64(v))), true, nil
	case *lua.LNilType:
		return 0, true, nil
	default:
		return 0, true, fmt.Errorf("scripting: hook %q returned %s: %w", hook, ret.Type(), ErrNotANumber)
	}
}

func toLValue(L *lua.LState, v any) (lua.LValue, error) {
	switch x := v.(type) {
	case nil:
		return lua.LNil, nil
	case string:
		return lua.LString(x), nil
	case int:
		return lua.LNumber(x), nil
	case bool:
		return lua.LBool(x), nil
	case []string:
		t := L.CreateTable(len(x), 0)
		for _, s := range x {
			t.Append(lua.LString(s))
		}
		return t, nil
	default:
		return nil, fmt.Errorf("unsupported type %T", v)
	}
}
