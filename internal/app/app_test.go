package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bounceshot/shooter/internal/config"
	"github.com/bounceshot/shooter/internal/game"
	"github.com/bounceshot/shooter/internal/system"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Data.Tuning = ""
	cfg.Scripting.Dir = t.TempDir()
	cfg.Game.Seed = 1
	return cfg
}

func TestNewUsesDisplayRatio(t *testing.T) {
	a, err := New(testConfig(t), 1.5, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()

	if s := a.Game.Space(); s.W != 100 || s.H != 150 {
		t.Errorf("space = %vx%v, want 100x150", s.W, s.H)
	}
	if a.Game.State() != game.StateNotStarted {
		t.Errorf("state = %v", a.Game.State())
	}
	if got := a.Game.Cannon().Angle(); got != 90 {
		t.Errorf("angle = %v, want 90", got)
	}
}

func TestConfigRatioWins(t *testing.T) {
	cfg := testConfig(t)
	cfg.Game.DisplayRatio = 0.5
	a, err := New(cfg, 1.5, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()
	if h := a.Game.Space().H; h != 50 {
		t.Errorf("height = %v, want 50", h)
	}
}

func TestNewRejectsBadRatio(t *testing.T) {
	_, err := New(testConfig(t), 0, nil)
	if !errors.Is(err, game.ErrInvalidRatio) {
		t.Fatalf("err = %v, want ErrInvalidRatio", err)
	}
}

func TestNewTuningError(t *testing.T) {
	cfg := testConfig(t)
	cfg.Data.Tuning = filepath.Join(t.TempDir(), "missing.yaml")
	_, err := New(cfg, 1, nil)
	if err == nil || !strings.Contains(err.Error(), "load tuning") {
		t.Fatalf("err = %v, want load tuning error", err)
	}
}

func TestCommandsDriveRound(t *testing.T) {
	a, err := New(testConfig(t), 1.5, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()

	a.Commands <- system.Command{Kind: system.CmdRestart}
	a.Commands <- system.Command{Kind: system.CmdFire}
	a.Tick()

	if !a.Game.Running() {
		t.Fatal("round not running after restart")
	}
	if a.Game.BulletCount() != 1 {
		t.Errorf("bullets = %d, want 1", a.Game.BulletCount())
	}
	if a.Game.EnemyCount() != 1 {
		t.Errorf("enemies = %d, want 1 (first tick spawns)", a.Game.EnemyCount())
	}

	a.Tick() // dispatch the first tick's events
	if cur := a.Journal.Current(); cur.RoundID != a.Game.RoundID() || cur.Shots != 1 {
		t.Errorf("journal = %+v", cur)
	}
}

func TestScriptedSpawn(t *testing.T) {
	cfg := testConfig(t)
	script := "function spawn_interval(ctx) return 2 end\n"
	if err := os.WriteFile(filepath.Join(cfg.Scripting.Dir, "spawn.lua"), []byte(script), 0o644); err != nil {
		t.Fatal(err)
	}
	a, err := New(cfg, 1.5, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()

	a.Commands <- system.Command{Kind: system.CmdRestart}
	a.Tick()
	if got := a.Game.NextSpawnStep(); got != 2 {
		t.Errorf("next spawn = %d, want 2", got)
	}
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shooter.log")
	log, err := NewLogger(config.LoggingConfig{Level: "debug", Format: "json", Output: path})
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	log.Debug("hello")
	_ = log.Sync()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), `"msg":"hello"`) {
		t.Errorf("log = %q", b)
	}
}

func TestSoakFinishesRounds(t *testing.T) {
	cfg := testConfig(t)
	cfg.Game.LifeLimit = 1
	cfg.Spawn.MinInterval = 5
	cfg.Spawn.MaxInterval = 10
	a, err := New(cfg, 1.5, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()

	// enemies spawn constantly and a single escape ends the round
	stats := a.Soak(NewBot(7, 0.5), 3, 5000)
	if len(stats) != 3 {
		t.Fatalf("finished rounds = %d, want 3", len(stats))
	}
	seen := map[string]bool{}
	for _, s := range stats {
		if !s.Over || s.Escapes < 1 {
			t.Errorf("round %v: %+v", s.RoundID, s)
		}
		if s.Shots > 0 && s.Shots < s.Kills {
			t.Errorf("round %v: more kills than shots: %+v", s.RoundID, s)
		}
		if seen[s.RoundID.String()] {
			t.Errorf("round id %v reused", s.RoundID)
		}
		seen[s.RoundID.String()] = true
	}
}

func TestSoakAbandonsLongRounds(t *testing.T) {
	a, err := New(testConfig(t), 1.5, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()

	if stats := a.Soak(NewBot(1, 0), 2, 10); len(stats) != 0 {
		t.Errorf("finished rounds = %d, want 0", len(stats))
	}
}
