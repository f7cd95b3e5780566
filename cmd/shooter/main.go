package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bounceshot/shooter/internal/app"
	"github.com/bounceshot/shooter/internal/config"
	coresys "github.com/bounceshot/shooter/internal/core/system"
	"github.com/bounceshot/shooter/internal/terminal"
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load config
	cfgPath := "config/shooter.toml"
	if p := os.Getenv("SHOOTER_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger. Never stdout/stderr while the screen is up.
	log, err := app.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	// 3. Terminal
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	// 4. Game, systems and view
	a, err := app.New(cfg, terminal.DisplayRatio(screen), log)
	if err != nil {
		return err
	}
	defer a.Close()

	a.Runner.Register(terminal.NewView(screen, a.Game, a.Journal))

	quit := make(chan struct{})
	resized := make(chan struct{}, 1)
	go terminal.PollInput(screen, a.Commands, quit, resized)

	// 5. Start game loop
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(cfg.Loop.TickRate)
	defer ticker.Stop()

	log.Info("game loop started", zap.Duration("tick", cfg.Loop.TickRate))

	for {
		select {
		case <-ticker.C:
			a.Tick()
		case <-resized:
			// the virtual space only follows the terminal between rounds
			if cfg.Game.DisplayRatio == 0 && !a.Game.Running() {
				if err := a.Game.SetVirtualCoordinates(terminal.DisplayRatio(screen)); err != nil {
					log.Warn("resize ignored", zap.Error(err))
				}
			}
			a.Runner.TickPhase(coresys.PhaseOutput, 0)
		case <-quit:
			log.Info("quit requested", zap.Uint64("ticks", a.Runner.Ticks()))
			return nil
		case sig := <-shutdownCh:
			log.Info("shutdown signal", zap.String("signal", sig.String()))
			return nil
		}
	}
}
