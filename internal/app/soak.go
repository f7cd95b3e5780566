package app

import (
	"math/rand"

	"github.com/bounceshot/shooter/internal/system"
)

// Bot plays through the command queue like a human would: it aims at a
// random angle inside the configured range and fires on some ticks.
type Bot struct {
	FireChance float64 // per tick, 0..1
	rng        *rand.Rand
}

func NewBot(seed int64, fireChance float64) *Bot {
	return &Bot{FireChance: fireChance, rng: rand.New(rand.NewSource(seed))}
}

// Act queues this tick's commands. Commands that do not fit in the queue are
// dropped.
func (b *Bot) Act(a *App) {
	if b.rng.Float64() >= b.FireChance {
		return
	}
	in := a.Config.Input
	angle := in.MinAngle + b.rng.Float64()*(in.MaxAngle-in.MinAngle)
	a.send(system.Command{Kind: system.CmdAim, Angle: angle})
	a.send(system.Command{Kind: system.CmdFire})
}

// Soak plays rounds back to back with bot input and returns the journal's
// finished rounds. A round still running after maxTicks is abandoned and
// does not appear in the result.
func (a *App) Soak(bot *Bot, rounds, maxTicks int) []system.RoundStats {
	for r := 0; r < rounds; r++ {
		a.send(system.Command{Kind: system.CmdRestart})
		a.Tick()
		for t := 0; t < maxTicks && a.Game.Running(); t++ {
			bot.Act(a)
			a.Tick()
		}
		// deliver the last tick's events
		a.Tick()
	}
	return a.Journal.Finished()
}

func (a *App) send(cmd system.Command) {
	select {
	case a.Commands <- cmd:
	default:
	}
}
