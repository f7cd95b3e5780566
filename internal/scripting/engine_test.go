package scripting

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bounceshot/shooter/internal/game"
)

type fixedRand struct {
	n int
	f float64
}

func (r fixedRand) Intn(int) int     { return r.n }
func (r fixedRand) Float64() float64 { return r.f }

func newTestEngine(t *testing.T, script string) *Engine {
	t.Helper()
	dir := t.TempDir()
	if script != "" {
		if err := os.WriteFile(filepath.Join(dir, "spawn.lua"), []byte(script), 0o644); err != nil {
			t.Fatalf("write script: %v", err)
		}
	}
	// non-lua files are ignored
	if err := os.WriteFile(filepath.Join(dir, "README.txt"), []byte("not lua"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	e, err := NewEngine(dir, game.UniformSpawn{Min: 50, Max: 350}, nil)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	t.Cleanup(e.Close)
	return e
}

func TestFallbackWithoutHooks(t *testing.T) {
	e := newTestEngine(t, "")
	rng := fixedRand{n: 10, f: 0.5}

	if got := e.NextInterval(0, rng); got != 60 {
		t.Fatalf("expected fallback interval 60, got %d", got)
	}
	if got := e.SpawnX(0, 92, rng); got != 46 {
		t.Fatalf("expected fallback x 46, got %v", got)
	}
	if e.Has("spawn_interval") {
		t.Fatalf("no hook defined")
	}
}

func TestMissingDirIsFallback(t *testing.T) {
	e, err := NewEngine(filepath.Join(t.TempDir(), "absent"), nil, nil)
	if err != nil {
		t.Fatalf("missing dir must not fail: %v", err)
	}
	defer e.Close()
	if got := e.NextInterval(0, fixedRand{n: 0}); got != game.DefaultSpawnMin {
		t.Fatalf("expected default min, got %d", got)
	}
}

func TestSpawnIntervalHook(t *testing.T) {
	e := newTestEngine(t, `
function spawn_interval(ctx)
  -- speed up as the round goes on, never below min
  return math.max(ctx.min, ctx.default - math.floor(ctx.step / 10))
end
`)
	rng := fixedRand{n: 100}

	if got := e.NextInterval(0, rng); got != 150 {
		t.Fatalf("expected 150 at step 0, got %d", got)
	}
	if got := e.NextInterval(500, rng); got != 100 {
		t.Fatalf("expected 100 at step 500, got %d", got)
	}
	if got := e.NextInterval(100000, rng); got != 50 {
		t.Fatalf("expected clamp to min 50, got %d", got)
	}
}

func TestSpawnXHookClamped(t *testing.T) {
	e := newTestEngine(t, `
function spawn_x(ctx)
  if ctx.step == 0 then return ctx.max_x / 2 end
  if ctx.step == 1 then return -10 end
  return ctx.max_x + 10
end
`)
	rng := fixedRand{}
	if got := e.SpawnX(0, 92, rng); got != 46 {
		t.Fatalf("expected 46, got %v", got)
	}
	if got := e.SpawnX(1, 92, rng); got != 0 {
		t.Fatalf("expected clamp to 0, got %v", got)
	}
	if got := e.SpawnX(2, 92, rng); got != 92 {
		t.Fatalf("expected clamp to 92, got %v", got)
	}
}

func TestHookErrorsFallBack(t *testing.T) {
	e := newTestEngine(t, `
function spawn_interval(ctx) error("boom") end
function spawn_x(ctx) return "left" end
`)
	rng := fixedRand{n: 7, f: 0.25}
	if got := e.NextInterval(0, rng); got != 57 {
		t.Fatalf("expected fallback 57, got %d", got)
	}
	if got := e.SpawnX(0, 80, rng); got != 20 {
		t.Fatalf("expected fallback 20, got %v", got)
	}
}

func TestBadScriptFailsLoad(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "broken.lua"), []byte("function ("), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := NewEngine(dir, nil, nil)
	if err == nil || !strings.Contains(err.Error(), "broken.lua") {
		t.Fatalf("expected load error naming the file, got %v", err)
	}
}

func TestEngineDrivesGame(t *testing.T) {
	e := newTestEngine(t, `function spawn_interval(ctx) return 3 end`)
	g := game.New(game.Options{Spawn: e, Rand: fixedRand{}})
	if err := g.SetVirtualCoordinates(1.5); err != nil {
		t.Fatalf("ratio: %v", err)
	}
	if err := g.Start(3, 1); err != nil {
		t.Fatalf("start: %v", err)
	}
	for i := 0; i < 7; i++ {
		g.Update()
	}
	// spawns at steps 0, 3, 6
	if g.EnemyCount() != 3 {
		t.Fatalf("expected 3 enemies, got %d", g.EnemyCount())
	}
}

func TestNilResultUsesDefault(t *testing.T) {
	e := newTestEngine(t, `
function spawn_interval(ctx) return nil end
function spawn_x(ctx) end
`)
	rng := fixedRand{n: 3, f: 0.5}
	if got := e.NextInterval(0, rng); got != 53 {
		t.Fatalf("expected default 53, got %d", got)
	}
	if got := e.SpawnX(0, 80, rng); got != 40 {
		t.Fatalf("expected default 40, got %v", got)
	}
}

func TestShippedScripts(t *testing.T) {
	e, err := NewEngine(filepath.Join("..", "..", "scripts"), game.UniformSpawn{Min: 50, Max: 350}, nil)
	if err != nil {
		t.Fatalf("load shipped scripts: %v", err)
	}
	defer e.Close()
	if !e.Has("spawn_interval") || !e.Has("spawn_x") {
		t.Fatal("shipped hooks missing")
	}

	rng := fixedRand{n: 100, f: 0.5}
	if got := e.NextInterval(0, rng); got != 150 {
		t.Fatalf("expected 150 at step 0, got %d", got)
	}
	if got := e.NextInterval(5000, rng); got != 100 {
		t.Fatalf("expected 100 at step 5000, got %d", got)
	}
	if got := e.NextInterval(100000, rng); got != 50 {
		t.Fatalf("expected floor at min, got %d", got)
	}
	if got := e.SpawnX(0, 92, rng); got != 46 {
		t.Fatalf("expected default x 46, got %v", got)
	}
}

func TestSpawnIntervalHookBounded(t *testing.T) {
	e := newTestEngine(t, `
function spawn_interval(ctx)
  if ctx.step == 0 then return 1e300 end
  if ctx.step == 1 then return -5 end
  if ctx.step == 2 then return 0/0 end
  return math.huge
end
function spawn_x(ctx) return 0/0 end
`)
	rng := fixedRand{n: 20, f: 0.5}
	if got := e.NextInterval(0, rng); got != 350 {
		t.Fatalf("expected huge interval capped at 350, got %d", got)
	}
	if got := e.NextInterval(1, rng); got != 1 {
		t.Fatalf("expected negative interval raised to 1, got %d", got)
	}
	if got := e.NextInterval(2, rng); got != 70 {
		t.Fatalf("expected NaN to fall back to 70, got %d", got)
	}
	if got := e.NextInterval(3, rng); got != 70 {
		t.Fatalf("expected Inf to fall back to 70, got %d", got)
	}
	if got := e.SpawnX(0, 80, rng); got != 40 {
		t.Fatalf("expected NaN x to fall back to 40, got %v", got)
	}
}

func TestHugeScriptedIntervalKeepsSpawning(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "spawn.lua"), []byte("function spawn_interval(ctx) return 1e300 end\n"), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	e, err := NewEngine(dir, game.UniformSpawn{Min: 1, Max: 4}, nil)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	defer e.Close()

	g := game.New(game.Options{Spawn: e, Rand: fixedRand{}})
	if err := g.SetVirtualCoordinates(1.5); err != nil {
		t.Fatal(err)
	}
	if err := g.Start(3, 3); err != nil {
		t.Fatal(err)
	}
	g.Update()
	if got := g.NextSpawnStep(); got != 4 {
		t.Fatalf("expected next spawn at step 4, got %d", got)
	}
	for g.Step() <= 4 {
		g.Update()
	}
	if g.EnemyCount() != 2 {
		t.Fatalf("expected a second spawn, got %d enemies", g.EnemyCount())
	}
}
