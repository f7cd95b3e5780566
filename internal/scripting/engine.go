package scripting

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/bounceshot/shooter/internal/game"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Engine wraps a single gopher-lua VM and serves as the game's spawn policy.
// Scripts may define spawn_interval(ctx) and spawn_x(ctx); anything they
// leave undefined, or that errors, falls back to the Go policy.
// Single-goroutine access only (game loop).
type Engine struct {
	vm       *lua.LState
	fallback game.SpawnPolicy
	log      *zap.Logger
}

var _ game.SpawnPolicy = (*Engine)(nil)

// maxSpawnInterval bounds scripted intervals when the fallback has no range.
const maxSpawnInterval = 1 << 20

// NewEngine creates a Lua engine and loads every .lua file in scriptsDir.
// A missing directory is not an error; the engine then behaves exactly like
// fallback.
func NewEngine(scriptsDir string, fallback game.SpawnPolicy, log *zap.Logger) (*Engine, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if fallback == nil {
		fallback = game.UniformSpawn{Min: game.DefaultSpawnMin, Max: game.DefaultSpawnMax}
	}
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})

	// Set API version global
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, fallback: fallback, log: log}
	if scriptsDir != "" {
		if err := e.loadDir(scriptsDir); err != nil {
			vm.Close()
			return nil, fmt.Errorf("load scripts: %w", err)
		}
	}
	return e, nil
}

// loadDir loads all .lua files in a directory.
func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // skip missing dirs
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// Has reports whether the scripts define a global function name.
func (e *Engine) Has(name string) bool {
	_, ok := e.vm.GetGlobal(name).(*lua.LFunction)
	return ok
}

// NextInterval calls Lua spawn_interval(ctx). ctx carries step, min, max and
// default, the interval the Go policy drew for this spawn.
func (e *Engine) NextInterval(step int, rng game.Rand) int {
	def := e.fallback.NextInterval(step, rng)
	fn, ok := e.vm.GetGlobal("spawn_interval").(*lua.LFunction)
	if !ok {
		return def
	}

	t := e.vm.NewTable()
	t.RawSetString("step", lua.LNumber(step))
	t.RawSetString("default", lua.LNumber(def))
	if u, ok := e.fallback.(game.UniformSpawn); ok {
		t.RawSetString("min", lua.LNumber(u.Min))
		t.RawSetString("max", lua.LNumber(u.Max))
	}

	result, err := e.call(fn, t)
	if err != nil {
		e.log.Error("lua spawn_interval error", zap.Error(err))
		return def
	}
	if result == lua.LNil {
		return def
	}
	n, ok := result.(lua.LNumber)
	if !ok {
		e.log.Error("lua spawn_interval returned non-number", zap.String("type", result.Type().String()))
		return def
	}
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		e.log.Error("lua spawn_interval returned non-finite number", zap.Float64("value", f))
		return def
	}
	return int(min(max(f, 1), float64(e.maxInterval())))
}

// SpawnX calls Lua spawn_x(ctx) with step, max_x and default.
// The result is clamped into [0, maxX].
func (e *Engine) SpawnX(step int, maxX float64, rng game.Rand) float64 {
	def := e.fallback.SpawnX(step, maxX, rng)
	fn, ok := e.vm.GetGlobal("spawn_x").(*lua.LFunction)
	if !ok {
		return def
	}

	t := e.vm.NewTable()
	t.RawSetString("step", lua.LNumber(step))
	t.RawSetString("max_x", lua.LNumber(maxX))
	t.RawSetString("default", lua.LNumber(def))

	result, err := e.call(fn, t)
	if err != nil {
		e.log.Error("lua spawn_x error", zap.Error(err))
		return def
	}
	if result == lua.LNil {
		return def
	}
	n, ok := result.(lua.LNumber)
	if !ok {
		e.log.Error("lua spawn_x returned non-number", zap.String("type", result.Type().String()))
		return def
	}
	if math.IsNaN(float64(n)) {
		e.log.Error("lua spawn_x returned NaN")
		return def
	}
	return min(max(float64(n), 0), max(maxX, 0))
}

// maxInterval caps scripted intervals: the fallback's upper bound when it
// has one, otherwise maxSpawnInterval.
func (e *Engine) maxInterval() int {
	if u, ok := e.fallback.(game.UniformSpawn); ok && u.Max > 1 {
		return u.Max
	}
	return maxSpawnInterval
}

// call invokes fn with one argument and pops its single result.
func (e *Engine) call(fn *lua.LFunction, arg lua.LValue) (lua.LValue, error) {
	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, arg); err != nil {
		return lua.LNil, err
	}
	result := e.vm.Get(-1)
	e.vm.Pop(1)
	return result, nil
}

// Close shuts down the Lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}
