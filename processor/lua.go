package processor

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/thisisjab/journalcat/entity"
	lua "github.com/yuin/gopher-lua"
	luajson "layeh.com/gopher-json"
)

type LuaHookConfig struct {
	ScriptPath string `yaml:"script"`
}

// LuaHook runs a user script against every record before filtering.
// The script MUST define a global function `process(record)` which receives a table with
// the fields message, priority, pid, identifier, realtime, code_func, code_line and code_file.
// It returns either a table (fields that are missing keep their old value) or nil to drop
// the record. Scripts can decode JSON payloads with `local json = require("json")`.
type LuaHook struct {
	cfg  LuaHookConfig
	pool *sync.Pool
}

func NewLuaHook(cfg LuaHookConfig) (*LuaHook, error) {
	// Load once up front so a broken script is reported before any input is read.
	first, err := newLuaState(cfg.ScriptPath)
	if err != nil {
		return nil, fmt.Errorf("cannot load lua script: %w", err)
	}

	pool := &sync.Pool{
		New: func() any {
			L, err := newLuaState(cfg.ScriptPath)
			if err != nil {
				panic(err)
			}
			return L
		},
	}
	pool.Put(first)

	return &LuaHook{cfg: cfg, pool: pool}, nil
}

func newLuaState(scriptPath string) (*lua.LState, error) {
	L := lua.NewState(lua.Options{
		SkipOpenLibs: true,
	})

	// No 'os' or 'io': scripts only reshape records.
	for _, lib := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.LoadLibName, lua.OpenPackage},
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
	} {
		L.Push(L.NewFunction(lib.fn))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}

	luajson.Preload(L)

	if err := L.DoFile(scriptPath); err != nil {
		L.Close()
		return nil, err
	}

	if L.GetGlobal("process").Type() != lua.LTFunction {
		L.Close()
		return nil, fmt.Errorf("%s does not define a `process` function", scriptPath)
	}

	return L, nil
}

func (h *LuaHook) Process(record entity.Record) (entity.Record, error) {
	L := h.pool.Get().(*lua.LState)
	defer h.pool.Put(L)

	err := L.CallByParam(lua.P{
		Fn:      L.GetGlobal("process"),
		NRet:    1,
		Protect: true,
	}, recordToTable(L, record))
	if err != nil {
		return record, fmt.Errorf("lua script error: %w", err)
	}

	ret := L.Get(-1)
	L.Pop(1)

	if ret == lua.LNil {
		return record, ErrSkip
	}

	tbl, ok := ret.(*lua.LTable)
	if !ok {
		return record, fmt.Errorf("lua script returned %s, want table or nil", ret.Type())
	}

	return tableToRecord(tbl, record)
}

func recordToTable(L *lua.LState, r entity.Record) *lua.LTable {
	t := L.NewTable()
	t.RawSetString("message", lua.LString(r.Message))
	t.RawSetString("priority", lua.LNumber(r.Priority))
	t.RawSetString("pid", lua.LString(r.PID))
	t.RawSetString("identifier", lua.LString(r.Identifier))
	if r.HasRealtime {
		t.RawSetString("realtime", lua.LNumber(r.Realtime))
	}
	t.RawSetString("code_func", lua.LString(r.CodeFunc))
	t.RawSetString("code_line", lua.LString(r.CodeLine))
	t.RawSetString("code_file", lua.LString(r.CodeFile))
	return t
}

func tableToRecord(t *lua.LTable, base entity.Record) (entity.Record, error) {
	r := base

	str := func(key string, dst *string) {
		if v := t.RawGetString(key); v != lua.LNil {
			*dst = v.String()
		}
	}
	str("message", &r.Message)
	str("pid", &r.PID)
	str("identifier", &r.Identifier)
	str("code_func", &r.CodeFunc)
	str("code_line", &r.CodeLine)
	str("code_file", &r.CodeFile)

	if v := t.RawGetString("priority"); v != lua.LNil {
		n, err := strconv.Atoi(v.String())
		if err != nil || n < 0 || n >= entity.PriorityCount {
			return base, fmt.Errorf("lua script returned invalid priority %q", v.String())
		}
		r.Priority = entity.Priority(n)
	}

	if v, ok := t.RawGetString("realtime").(lua.LNumber); ok {
		r.Realtime = int64(v)
		r.HasRealtime = true
	}

	return r, nil
}
