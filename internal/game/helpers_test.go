package game

import (
	"math"
	"testing"

	"github.com/bounceshot/shooter/internal/geom"
)

// fixedRand always returns the same draws.
type fixedRand struct {
	n int
	f float64
}

func (r fixedRand) Intn(int) int     { return r.n }
func (r fixedRand) Float64() float64 { return r.f }

// newTestGame returns a game on a 100x150 space. Not started.
func newTestGame(t *testing.T, opts Options) *Game {
	t.Helper()
	if opts.Rand == nil {
		opts.Rand = fixedRand{}
	}
	g := New(opts)
	if err := g.SetVirtualCoordinates(1.5); err != nil {
		t.Fatalf("set virtual coordinates: %v", err)
	}
	return g
}

func startTestGame(t *testing.T, opts Options, life, bulletLimit int) *Game {
	t.Helper()
	g := newTestGame(t, opts)
	if err := g.Start(life, bulletLimit); err != nil {
		t.Fatalf("start: %v", err)
	}
	return g
}

// holdSpawns pushes the next spawn out of reach.
func holdSpawns(g *Game) {
	g.enemyGenStep = math.MaxInt
}

func placeEnemy(t *testing.T, g *Game, x, y float64) *Enemy {
	t.Helper()
	id, ok := g.enemies.Alloc()
	if !ok {
		t.Fatalf("enemy pool full")
	}
	e := newEnemy(id, geom.Vec2{X: x, Y: y}, g.enemyKind)
	g.enemies.Set(id, e)
	return e
}

func placeBullet(t *testing.T, g *Game, x, y float64, dir geom.Vec2, bounces int) *Bullet {
	t.Helper()
	id, ok := g.bullets.Alloc()
	if !ok {
		t.Fatalf("bullet pool full")
	}
	b := newBullet(id, geom.Vec2{X: x, Y: y}, dir, g.bulletKind)
	b.bounces = bounces
	g.bullets.Set(id, b)
	return b
}

var (
	up   = geom.Vec2{X: 0, Y: -1}
	down = geom.Vec2{X: 0, Y: 1}
)

func vec(x, y float64) geom.Vec2 { return geom.Vec2{X: x, Y: y} }
