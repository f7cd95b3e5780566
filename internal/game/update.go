package game

import (
	"github.com/bounceshot/shooter/internal/core/event"
	"go.uber.org/zap"
)

// Update advances the round by one tick. The order is fixed:
// spawn, step++, bullets, enemies, collisions. It does nothing unless a
// round is running.
func (g *Game) Update() {
	if g.state != StateRunning {
		return
	}

	if g.step == g.enemyGenStep {
		g.AddEnemy()
		g.enemyGenStep = g.step + g.nextInterval()
	}
	g.step++

	g.updateBullets()
	g.updateEnemies()
	g.removeCollisions()
}

// nextInterval is at least 1 so the spawn step always lies ahead.
func (g *Game) nextInterval() int {
	return max(g.spawn.NextInterval(g.step, g.rng), 1)
}

// updateBullets moves every bullet and drops those past the top edge.
func (g *Game) updateBullets() {
	g.bullets.Each(func(id int, b *Bullet) {
		b.Move(g.space)
		if b.pos.Y < 0 {
			g.bullets.Remove(id)
			event.Emit(g.bus, event.BulletExpired{RoundID: g.roundID, ID: id, Bounces: b.bounces})
		}
	})
}

// updateEnemies moves every enemy; one that falls past the bottom edge
// costs a life.
func (g *Game) updateEnemies() {
	g.enemies.Each(func(id int, e *Enemy) {
		e.Move()
		if e.pos.Y > g.space.H {
			g.enemies.Remove(id)
			event.Emit(g.bus, event.EnemyEscaped{RoundID: g.roundID, ID: id})
			g.decreaseLife()
		}
	})
}

// removeCollisions pairs each enemy, in id order, with the lowest-id bounced
// bullet overlapping it, and removes both at once. A bullet consumed by an
// earlier enemy is gone before later enemies are checked.
func (g *Game) removeCollisions() {
	g.enemies.Each(func(eid int, e *Enemy) {
		er := e.Rect()
		bid, _, ok := g.bullets.Find(func(_ int, b *Bullet) bool {
			return b.Bounced() && b.Rect().Overlaps(er)
		})
		if !ok {
			return
		}
		g.enemies.Remove(eid)
		g.bullets.Remove(bid)
		event.Emit(g.bus, event.EnemyDestroyed{RoundID: g.roundID, EnemyID: eid, BulletID: bid})
	})
}

// decreaseLife is the only way a round ends. Life never goes below zero,
// even if more enemies escape in the tick that ended the round.
func (g *Game) decreaseLife() {
	if g.life <= 0 {
		return
	}
	g.life--
	event.Emit(g.bus, event.LifeLost{RoundID: g.roundID, Remaining: g.life})
	if g.life == 0 {
		g.state = StateGameOver
		event.Emit(g.bus, event.GameOver{RoundID: g.roundID, Step: g.step})
		g.log.Info("game over", zap.Stringer("round", g.roundID), zap.Int("step", g.step))
	}
}
