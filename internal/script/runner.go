// Package script runs Lua key actions in a sandboxed interpreter.
//
// A chunk bound to a key sees a global "event" table describing the press
// (key, code, combo, ctrl, meta, shift, alt) and may call emit(msg) to
// write a line to the runner's output. Only the base, table, string and
// math libraries are available.
package script

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/keynav/internal/input/key"
	"github.com/dshills/keynav/internal/input/keymap"
	"github.com/dshills/keynav/internal/logging"
)

// DefaultTimeout bounds a single action.
const DefaultTimeout = time.Second

var (
	// ErrClosed is returned after Close.
	ErrClosed = errors.New("script runner is closed")

	// ErrEmptyChunk is returned by Handler for blank source.
	ErrEmptyChunk = errors.New("empty lua chunk")
)

// Runner owns one Lua state. Handlers built from the same Runner share
// globals, so a chunk can keep state between presses.
//
// gopher-lua states are single-threaded; the mutex serializes handlers.
type Runner struct {
	L *lua.LState

	mu      sync.Mutex
	out     io.Writer
	lines   []string
	timeout time.Duration
	logger  *logging.Logger
	closed  bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithOutput also writes emitted lines to w.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) { r.out = w }
}

// WithTimeout sets the per-action time limit.
func WithTimeout(d time.Duration) Option {
	return func(r *Runner) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l.WithComponent("script")
		}
	}
}

// NewRunner creates a sandboxed Lua runner.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		timeout: DefaultTimeout,
		logger:  logging.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "module"} {
		L.SetGlobal(name, lua.LNil)
	}
	L.SetGlobal("emit", L.NewFunction(r.luaEmit))
	L.SetGlobal("print", L.NewFunction(r.luaPrint))
	r.L = L
	return r
}

// Handler compiles chunk and returns a key handler that runs it. Syntax
// errors are reported here rather than on the first press.
func (r *Runner) Handler(chunk string) (keymap.Handler, error) {
	if strings.TrimSpace(chunk) == "" {
		return nil, ErrEmptyChunk
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil, ErrClosed
	}
	fn, err := r.L.LoadString(chunk)
	if err != nil {
		return nil, fmt.Errorf("compiling lua action: %w", err)
	}

	return func(ev *key.Event) error {
		return r.run(fn, ev)
	}, nil
}

// Run compiles and runs chunk once against ev.
func (r *Runner) Run(chunk string, ev *key.Event) error {
	h, err := r.Handler(chunk)
	if err != nil {
		return err
	}
	return h(ev)
}

func (r *Runner) run(fn *lua.LFunction, ev *key.Event) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrClosed
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	r.L.SetContext(ctx)
	defer r.L.RemoveContext()

	r.L.SetGlobal("event", r.eventTable(ev))
	defer r.L.SetTop(0)

	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("lua panic: %v", rec)
		}
	}()

	r.L.Push(fn)
	if err := r.L.PCall(0, lua.MultRet, nil); err != nil {
		r.logger.Warn("lua action failed: %v", err)
		return fmt.Errorf("lua action: %w", err)
	}
	return nil
}

func (r *Runner) eventTable(ev *key.Event) *lua.LTable {
	t := r.L.NewTable()
	if ev == nil {
		return t
	}
	t.RawSetString("key", lua.LString(ev.Key))
	t.RawSetString("code", lua.LString(ev.Code))
	t.RawSetString("combo", lua.LString(ev.Combo().String()))
	t.RawSetString("ctrl", lua.LBool(ev.Ctrl))
	t.RawSetString("meta", lua.LBool(ev.Meta))
	t.RawSetString("shift", lua.LBool(ev.Shift))
	t.RawSetString("alt", lua.LBool(ev.Alt))
	return t
}

func (r *Runner) luaEmit(L *lua.LState) int {
	r.write(L.CheckString(1))
	return 0
}

func (r *Runner) luaPrint(L *lua.LState) int {
	parts := make([]string, 0, L.GetTop())
	for i := 1; i <= L.GetTop(); i++ {
		parts = append(parts, L.ToStringMeta(L.Get(i)).String())
	}
	r.write(strings.Join(parts, "\t"))
	return 0
}

// write is called from inside run, with mu held.
func (r *Runner) write(line string) {
	r.lines = append(r.lines, line)
	if r.out != nil {
		fmt.Fprintln(r.out, line)
	}
}

// Output returns every line emitted so far.
func (r *Runner) Output() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.lines))
	copy(out, r.lines)
	return out
}

// Close releases the Lua state.
func (r *Runner) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.closed = true
	r.L.Close()
}
