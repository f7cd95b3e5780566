package system

import (
	"time"

	"github.com/bounceshot/shooter/internal/config"
	coresys "github.com/bounceshot/shooter/internal/core/system"
	"github.com/bounceshot/shooter/internal/game"
	"go.uber.org/zap"
)

// InputSystem drains the host command queue and applies commands to the
// game. It is the only path from input goroutines into the core, so the game
// is never touched off the loop goroutine. Phase 0 (Input).
type InputSystem struct {
	queue <-chan Command
	game  *game.Game
	input config.InputConfig
	round config.GameConfig
	log   *zap.Logger
}

func NewInputSystem(queue <-chan Command, g *game.Game, input config.InputConfig, round config.GameConfig, log *zap.Logger) *InputSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &InputSystem{queue: queue, game: g, input: input, round: round, log: log}
}

func (s *InputSystem) Phase() coresys.Phase { return coresys.PhaseInput }

// Update applies at most MaxCommandsPerTick queued commands; the rest wait
// for the next tick.
func (s *InputSystem) Update(_ time.Duration) {
	for i := 0; i < s.input.MaxCommandsPerTick; i++ {
		select {
		case cmd := <-s.queue:
			s.apply(cmd)
		default:
			return
		}
	}
}

func (s *InputSystem) apply(cmd Command) {
	cannon := s.game.Cannon()
	switch cmd.Kind {
	case CmdFire:
		if id, ok := s.game.AddBullet(); ok {
			s.log.Debug("bullet fired", zap.Int("id", id), zap.Float64("angle", cannon.Angle()))
		}
	case CmdAimLeft:
		cannon.SetAngle(s.clampAngle(cannon.Angle() + s.input.AimStep))
	case CmdAimRight:
		cannon.SetAngle(s.clampAngle(cannon.Angle() - s.input.AimStep))
	case CmdAim:
		cannon.SetAngle(s.clampAngle(cmd.Angle))
	case CmdRestart:
		if err := s.game.Start(s.round.LifeLimit, s.round.BulletLimit); err != nil {
			s.log.Error("restart failed", zap.Error(err))
			return
		}
		cannon.SetAngle(s.clampAngle(s.input.StartAngle))
	default:
		s.log.Warn("unknown command", zap.Int("kind", int(cmd.Kind)))
	}
}

func (s *InputSystem) clampAngle(a float64) float64 {
	return min(max(a, s.input.MinAngle), s.input.MaxAngle)
}
