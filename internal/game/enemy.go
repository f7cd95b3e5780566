package game

import "github.com/bounceshot/shooter/internal/geom"

// Enemy falls straight down at a constant speed.
type Enemy struct {
	id   int
	pos  geom.Vec2
	kind *body
}

func newEnemy(id int, pos geom.Vec2, kind *body) *Enemy {
	return &Enemy{id: id, pos: pos, kind: kind}
}

func (e *Enemy) Move() {
	e.pos.Y += e.kind.speed
}

func (e *Enemy) ID() int    { return e.id }
func (e *Enemy) X() float64 { return e.pos.X }
func (e *Enemy) Y() float64 { return e.pos.Y }

func (e *Enemy) Rect() geom.Rect {
	return geom.Rect{X: e.pos.X, Y: e.pos.Y, W: e.kind.w, H: e.kind.h}
}
