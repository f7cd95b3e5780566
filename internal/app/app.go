// Package app assembles a playable round from configuration: tuning, spawn
// scripts, the event bus, the game and the system runner.
package app

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/bounceshot/shooter/internal/config"
	"github.com/bounceshot/shooter/internal/core/event"
	coresys "github.com/bounceshot/shooter/internal/core/system"
	"github.com/bounceshot/shooter/internal/data"
	"github.com/bounceshot/shooter/internal/game"
	"github.com/bounceshot/shooter/internal/scripting"
	"github.com/bounceshot/shooter/internal/system"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type App struct {
	Config   *config.Config
	Game     *game.Game
	Bus      *event.Bus
	Runner   *coresys.Runner
	Journal  *system.Journal
	Commands chan system.Command

	scripts *scripting.Engine
	log     *zap.Logger
}

// New builds the game and registers the input, dispatch and simulation
// systems. displayRatio overrides game.display_ratio when the config leaves
// it at zero. Output systems are registered by the caller.
func New(cfg *config.Config, displayRatio float64, log *zap.Logger) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}

	tuning := data.DefaultTuning()
	if cfg.Data.Tuning != "" {
		t, err := data.LoadTuning(cfg.Data.Tuning)
		if err != nil {
			return nil, fmt.Errorf("load tuning: %w", err)
		}
		tuning = t
	}

	fallback := game.UniformSpawn{Min: cfg.Spawn.MinInterval, Max: cfg.Spawn.MaxInterval}
	var spawn game.SpawnPolicy = fallback
	var scripts *scripting.Engine
	if cfg.Scripting.Dir != "" {
		eng, err := scripting.NewEngine(cfg.Scripting.Dir, fallback, log)
		if err != nil {
			return nil, fmt.Errorf("scripting: %w", err)
		}
		scripts = eng
		spawn = eng
	}

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	bus := event.NewBus()
	g := game.New(game.Options{
		MaxBulletID: cfg.Game.MaxBulletID,
		MaxEnemyID:  cfg.Game.MaxEnemyID,
		Tuning:      tuning,
		Spawn:       spawn,
		Rand:        rand.New(rand.NewSource(seed)),
		Bus:         bus,
		Log:         log,
	})

	ratio := cfg.Game.DisplayRatio
	if ratio == 0 {
		ratio = displayRatio
	}
	if err := g.SetVirtualCoordinates(ratio); err != nil {
		if scripts != nil {
			scripts.Close()
		}
		return nil, fmt.Errorf("virtual coordinates: %w", err)
	}
	g.Cannon().SetAngle(cfg.Input.StartAngle)

	a := &App{
		Config:   cfg,
		Game:     g,
		Bus:      bus,
		Runner:   coresys.NewRunner(),
		Journal:  system.NewJournal(bus, log),
		Commands: make(chan system.Command, cfg.Input.QueueSize),
		scripts:  scripts,
		log:      log,
	}
	a.Runner.Register(system.NewInputSystem(a.Commands, g, cfg.Input, cfg.Game, log))
	a.Runner.Register(system.NewEventDispatchSystem(bus))
	a.Runner.Register(system.NewSimulationSystem(g))

	log.Info("game assembled",
		zap.Float64("width", g.Space().W),
		zap.Float64("height", g.Space().H),
		zap.Int64("seed", seed),
		zap.Bool("scripted_spawn", scripts != nil && (scripts.Has("spawn_interval") || scripts.Has("spawn_x"))),
	)
	return a, nil
}

// Tick runs one frame with the configured tick rate.
func (a *App) Tick() {
	a.Runner.Tick(a.Config.Loop.TickRate)
}

func (a *App) Close() {
	if a.scripts != nil {
		a.scripts.Close()
	}
}

// NewLogger builds a zap logger from the logging section. Console format
// uses the development encoder with plain capital levels (no color codes);
// json uses production.
func NewLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	if cfg.Output != "" {
		zapCfg.OutputPaths = []string{cfg.Output}
		zapCfg.ErrorOutputPaths = []string{cfg.Output}
	}

	return zapCfg.Build()
}
