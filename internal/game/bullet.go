package game

import "github.com/bounceshot/shooter/internal/geom"

// Bullet is a projectile fired from the cannon. Its direction is fixed at
// creation; only side-wall reflections change it afterwards.
type Bullet struct {
	id      int
	pos     geom.Vec2
	dir     geom.Vec2
	bounces int // side-wall reflections so far
	kind    *body
}

func newBullet(id int, pos, dir geom.Vec2, kind *body) *Bullet {
	return &Bullet{id: id, pos: pos, dir: dir, kind: kind}
}

// Move advances the bullet one step. Crossing the left or right edge of the
// space mirrors the overshoot back inside, flips the x direction and counts
// one bounce.
func (b *Bullet) Move(s geom.Space) {
	b.pos = b.pos.Add(b.dir.Scale(b.kind.speed))

	right := s.W - b.kind.w
	switch {
	case b.pos.X < 0:
		b.pos.X = -b.pos.X
		b.dir.X = -b.dir.X
		b.bounces++
	case b.pos.X > right:
		b.pos.X = 2*right - b.pos.X
		b.dir.X = -b.dir.X
		b.bounces++
	default:
		return
	}
	// a step longer than the playfield can overshoot twice
	b.pos.X = min(max(b.pos.X, 0), right)
}

// Bounced reports whether the bullet has hit a side wall at least once.
// Only bounced bullets can destroy enemies.
func (b *Bullet) Bounced() bool { return b.bounces >= 1 }

func (b *Bullet) ID() int              { return b.id }
func (b *Bullet) X() float64           { return b.pos.X }
func (b *Bullet) Y() float64           { return b.pos.Y }
func (b *Bullet) Bounces() int         { return b.bounces }
func (b *Bullet) Direction() geom.Vec2 { return b.dir }

func (b *Bullet) Rect() geom.Rect {
	return geom.Rect{X: b.pos.X, Y: b.pos.Y, W: b.kind.w, H: b.kind.h}
}
