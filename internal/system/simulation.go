package system

import (
	"time"

	coresys "github.com/bounceshot/shooter/internal/core/system"
	"github.com/bounceshot/shooter/internal/game"
)

// SimulationSystem advances the game one step per tick while a round is
// running. Phase 2 (Update).
type SimulationSystem struct {
	game *game.Game
}

func NewSimulationSystem(g *game.Game) *SimulationSystem {
	return &SimulationSystem{game: g}
}

func (s *SimulationSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *SimulationSystem) Update(_ time.Duration) {
	if !s.game.Running() {
		return
	}
	s.game.Update()
}
