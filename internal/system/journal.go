package system

import (
	"github.com/bounceshot/shooter/internal/core/event"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RoundStats are the per-round totals collected from game events.
type RoundStats struct {
	RoundID  uuid.UUID
	Shots    int
	Kills    int
	Escapes  int
	Expired  int // bullets that left through the top
	Rejected int // spawns refused because the enemy pool was full
	Steps    int // step at game over
	Over     bool
}

// Journal logs game events and keeps round totals for the HUD and the soak
// driver. It only runs inside event dispatch, on the loop goroutine.
type Journal struct {
	log      *zap.Logger
	current   RoundStats
	finished  []RoundStats
	abandoned int
}

func NewJournal(bus *event.Bus, log *zap.Logger) *Journal {
	if log == nil {
		log = zap.NewNop()
	}
	j := &Journal{log: log}

	event.Subscribe(bus, func(e event.RoundStarted) {
		if prev := j.current; prev.RoundID != uuid.Nil && !prev.Over {
			j.abandoned++
			j.log.Debug("round abandoned",
				zap.Stringer("round", prev.RoundID),
				zap.Int("shots", prev.Shots),
				zap.Int("kills", prev.Kills),
			)
		}
		j.current = RoundStats{RoundID: e.RoundID}
	})
	event.Subscribe(bus, func(e event.BulletFired) {
		j.current.Shots++
	})
	event.Subscribe(bus, func(e event.BulletExpired) {
		j.current.Expired++
	})
	event.Subscribe(bus, func(e event.EnemyDestroyed) {
		j.current.Kills++
		j.log.Debug("enemy destroyed",
			zap.Stringer("round", e.RoundID),
			zap.Int("enemy", e.EnemyID),
			zap.Int("bullet", e.BulletID),
		)
	})
	event.Subscribe(bus, func(e event.EnemyEscaped) {
		j.current.Escapes++
	})
	event.Subscribe(bus, func(e event.SpawnRejected) {
		j.current.Rejected++
	})
	event.Subscribe(bus, func(e event.LifeLost) {
		j.log.Info("life lost", zap.Stringer("round", e.RoundID), zap.Int("remaining", e.Remaining))
	})
	event.Subscribe(bus, func(e event.GameOver) {
		j.current.Steps = e.Step
		j.current.Over = true
		j.finished = append(j.finished, j.current)
		j.log.Info("round finished",
			zap.Stringer("round", e.RoundID),
			zap.Int("steps", e.Step),
			zap.Int("shots", j.current.Shots),
			zap.Int("kills", j.current.Kills),
			zap.Int("escapes", j.current.Escapes),
		)
	})
	return j
}

// Current returns totals for the round in progress (or the last one).
func (j *Journal) Current() RoundStats { return j.current }

// Finished returns every round that reached game over, oldest first.
// Rounds restarted before game over are not included; see Abandoned.
func (j *Journal) Finished() []RoundStats {
	out := make([]RoundStats, len(j.finished))
	copy(out, j.finished)
	return out
}

// Abandoned counts rounds replaced by a restart before they ended.
func (j *Journal) Abandoned() int { return j.abandoned }
