package lua

import (
	"fmt"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"
)

// ColorFunc is the global a color script must define.
const ColorFunc = "color"

// Logger receives script diagnostics.
type Logger interface {
	Warn(msg string, args ...any)
}

// ColorScript derives default color tags from a Lua function.
type ColorScript struct {
	state  *State
	name   string
	logger Logger

	mu       sync.Mutex
	failures int
}

// ScriptOption configures a ColorScript.
type ScriptOption func(*scriptConfig)

type scriptConfig struct {
	logger  Logger
	timeout time.Duration
}

// WithLogger sets the logger for script failures and print output.
func WithLogger(l Logger) ScriptOption {
	return func(c *scriptConfig) {
		c.logger = l
	}
}

// WithTimeout sets the per-call deadline.
func WithTimeout(d time.Duration) ScriptOption {
	return func(c *scriptConfig) {
		c.timeout = d
	}
}

// LoadColorScript loads a color script from a file.
func LoadColorScript(path string, opts ...ScriptOption) (*ColorScript, error) {
	return newColorScript(path, func(s *State) error { return s.DoFile(path) }, opts)
}

// NewColorScript loads a color script from source text.
func NewColorScript(source string, opts ...ScriptOption) (*ColorScript, error) {
	return newColorScript("<string>", func(s *State) error { return s.DoString(source) }, opts)
}

func newColorScript(name string, load func(*State) error, opts []ScriptOption) (*ColorScript, error) {
	cfg := scriptConfig{timeout: DefaultExecutionTimeout}
	for _, opt := range opts {
		opt(&cfg)
	}

	stateOpts := []StateOption{WithExecutionTimeout(cfg.timeout)}
	if cfg.logger != nil {
		logger := cfg.logger
		stateOpts = append(stateOpts, WithPrint(func(s string) {
			logger.Warn("script %s: %s", name, s)
		}))
	}

	state, err := NewState(stateOpts...)
	if err != nil {
		return nil, err
	}
	state.RegisterFunc("isprint", luaIsPrint)

	if err := load(state); err != nil {
		state.Close()
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	if state.GetGlobal(ColorFunc).Type() != lua.LTFunction {
		state.Close()
		return nil, fmt.Errorf("load %s: %w", name, ErrNoColorFunc)
	}

	return &ColorScript{
		state:  state,
		name:   name,
		logger: cfg.logger,
	}, nil
}

// luaIsPrint reports whether a byte value is printable ASCII.
func luaIsPrint(L *lua.LState) int {
	b := L.CheckInt(1)
	L.Push(lua.LBool(b >= 0x20 && b < 0x7f))
	return 1
}

// DefaultColor calls the script's color function.
func (c *ColorScript) DefaultColor(addr int64, b byte, ok bool, cursor int64) int {
	var bv lua.LValue = lua.LNil
	if ok {
		bv = lua.LNumber(b)
	}

	ret, err := c.state.Call(ColorFunc, lua.LNumber(addr), bv, lua.LNumber(cursor))
	if err != nil {
		c.fail("%s(0x%08x): %v", ColorFunc, addr, err)
		return 0
	}
	if len(ret) == 0 {
		c.fail("%s(0x%08x) returned nothing", ColorFunc, addr)
		return 0
	}
	n, isNum := ret[0].(lua.LNumber)
	if !isNum {
		c.fail("%s(0x%08x) returned %s, want number", ColorFunc, addr, ret[0].Type())
		return 0
	}
	return int(n)
}

func (c *ColorScript) fail(format string, args ...any) {
	c.mu.Lock()
	c.failures++
	first := c.failures == 1
	c.mu.Unlock()

	if first && c.logger != nil {
		c.logger.Warn("script %s: "+format, append([]any{c.name}, args...)...)
	}
}

// Failures returns how many calls have failed.
func (c *ColorScript) Failures() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.failures
}

// Close releases the Lua state.
func (c *ColorScript) Close() error {
	return c.state.Close()
}
