package game

import (
	"errors"
	"math/rand"
	"time"

	"github.com/bounceshot/shooter/internal/core/event"
	"github.com/bounceshot/shooter/internal/core/pool"
	"github.com/bounceshot/shooter/internal/data"
	"github.com/bounceshot/shooter/internal/geom"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultMaxBulletID = 10
	DefaultMaxEnemyID  = 30
)

var (
	ErrInvalidRatio       = geom.ErrInvalidRatio
	ErrNoVirtualSpace     = errors.New("virtual coordinates not set")
	ErrRoundRunning       = errors.New("round in progress")
	ErrInvalidLife        = errors.New("life limit must be at least 1")
	ErrInvalidBulletLimit = errors.New("bullet limit must not be negative")
)

// State is the round lifecycle: NotStarted → Running → GameOver.
// GameOver only leaves through Start.
type State int

const (
	StateNotStarted State = iota
	StateRunning
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not-started"
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game-over"
	}
	return "unknown"
}

// Options configures a Game. Zero values fall back to defaults.
type Options struct {
	MaxBulletID int
	MaxEnemyID  int
	Tuning      data.Tuning
	Spawn       SpawnPolicy // nil: UniformSpawn{DefaultSpawnMin, DefaultSpawnMax}
	Rand        Rand        // nil: time-seeded math/rand
	Bus         *event.Bus  // nil: events are dropped
	Log         *zap.Logger
}

// Game is the authoritative simulation: it owns every bullet and enemy.
// Accessed only from the game loop goroutine, no locks.
type Game struct {
	cannon  *Cannon
	bullets *pool.Pool[Bullet]
	enemies *pool.Pool[Enemy]

	bulletKind *body
	enemyKind  *body

	space        geom.Space
	state        State
	roundID      uuid.UUID
	life         int
	bulletLimit  int
	step         int
	enemyGenStep int

	spawn SpawnPolicy
	rng   Rand
	bus   *event.Bus
	log   *zap.Logger
}

func New(opts Options) *Game {
	if opts.MaxBulletID <= 0 {
		opts.MaxBulletID = DefaultMaxBulletID
	}
	if opts.MaxEnemyID <= 0 {
		opts.MaxEnemyID = DefaultMaxEnemyID
	}
	if opts.Tuning == (data.Tuning{}) {
		opts.Tuning = data.DefaultTuning()
	}
	if opts.Spawn == nil {
		opts.Spawn = UniformSpawn{Min: DefaultSpawnMin, Max: DefaultSpawnMax}
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	return &Game{
		cannon:     NewCannon(),
		bullets:    pool.New[Bullet](opts.MaxBulletID),
		enemies:    pool.New[Enemy](opts.MaxEnemyID),
		bulletKind: bodyFrom(opts.Tuning.Bullet),
		enemyKind:  bodyFrom(opts.Tuning.Enemy),
		spawn:      opts.Spawn,
		rng:        opts.Rand,
		bus:        opts.Bus,
		log:        opts.Log,
	}
}

// SetVirtualCoordinates sets the virtual space from a height/width display
// ratio. Must be called before Start; refused while a round is running.
func (g *Game) SetVirtualCoordinates(displayRatio float64) error {
	if g.state == StateRunning {
		return ErrRoundRunning
	}
	s, err := geom.NewSpace(displayRatio)
	if err != nil {
		return err
	}
	g.space = s
	return nil
}

// Start discards any previous round and begins a new one. The first Update
// always spawns an enemy.
func (g *Game) Start(lifeLimit, bulletLimit int) error {
	if g.space.IsZero() {
		return ErrNoVirtualSpace
	}
	if lifeLimit < 1 {
		return ErrInvalidLife
	}
	if bulletLimit < 0 {
		return ErrInvalidBulletLimit
	}

	g.bullets.Reset()
	g.enemies.Reset()
	g.state = StateRunning
	g.roundID = uuid.New()
	g.life = lifeLimit
	g.bulletLimit = bulletLimit
	g.step = 0
	g.enemyGenStep = 0

	event.Emit(g.bus, event.RoundStarted{RoundID: g.roundID, Life: lifeLimit, BulletLimit: bulletLimit})
	g.log.Info("round started",
		zap.Stringer("round", g.roundID),
		zap.Int("life", lifeLimit),
		zap.Int("bullet_limit", bulletLimit),
		zap.Float64("width", g.space.W),
		zap.Float64("height", g.space.H),
	)
	return nil
}

// AddBullet fires from the bottom centre along the cannon's current aim.
// It is a no-op when no round is running, when bulletLimit bullets are
// already live, or when every bullet id is taken.
func (g *Game) AddBullet() (int, bool) {
	if g.state != StateRunning || g.bullets.Len() >= g.bulletLimit {
		return -1, false
	}
	id, ok := g.bullets.Alloc()
	if !ok {
		return -1, false
	}
	pos := geom.Vec2{
		X: g.space.W/2 - g.bulletKind.w/2,
		Y: g.space.H - g.bulletKind.h,
	}
	g.bullets.Set(id, newBullet(id, pos, g.cannon.Direction(), g.bulletKind))

	event.Emit(g.bus, event.BulletFired{RoundID: g.roundID, ID: id, Angle: g.cannon.Angle()})
	return id, true
}

// AddEnemy spawns an enemy on the top edge. When every enemy id is live the
// spawn is rejected rather than overwriting a slot in use.
func (g *Game) AddEnemy() (int, bool) {
	if g.state != StateRunning {
		return -1, false
	}
	id, ok := g.enemies.Alloc()
	if !ok {
		event.Emit(g.bus, event.SpawnRejected{RoundID: g.roundID, Step: g.step})
		g.log.Warn("enemy pool full, spawn rejected",
			zap.Stringer("round", g.roundID),
			zap.Int("step", g.step),
			zap.Int("capacity", g.enemies.Cap()),
		)
		return -1, false
	}
	x := g.spawn.SpawnX(g.step, g.space.W-g.enemyKind.w, g.rng)
	x = min(max(x, 0), max(g.space.W-g.enemyKind.w, 0))
	g.enemies.Set(id, newEnemy(id, geom.Vec2{X: x, Y: 0}, g.enemyKind))

	event.Emit(g.bus, event.EnemySpawned{RoundID: g.roundID, ID: id, X: x, Step: g.step})
	g.log.Debug("enemy spawned", zap.Int("id", id), zap.Float64("x", x), zap.Int("step", g.step))
	return id, true
}

func (g *Game) Life() int           { return g.life }
func (g *Game) Running() bool       { return g.state == StateRunning }
func (g *Game) State() State        { return g.state }
func (g *Game) Cannon() *Cannon     { return g.cannon }
func (g *Game) Step() int           { return g.step }
func (g *Game) NextSpawnStep() int  { return g.enemyGenStep }
func (g *Game) Space() geom.Space   { return g.space }
func (g *Game) RoundID() uuid.UUID  { return g.roundID }
func (g *Game) BulletLimit() int    { return g.bulletLimit }
func (g *Game) BulletCount() int    { return g.bullets.Len() }
func (g *Game) EnemyCount() int     { return g.enemies.Len() }
func (g *Game) BulletCapacity() int { return g.bullets.Cap() }
func (g *Game) EnemyCapacity() int  { return g.enemies.Cap() }

// Bullet returns the live bullet with id, or false.
func (g *Game) Bullet(id int) (*Bullet, bool) { return g.bullets.Get(id) }

// Enemy returns the live enemy with id, or false.
func (g *Game) Enemy(id int) (*Enemy, bool) { return g.enemies.Get(id) }

// EachBullet visits live bullets in ascending id order.
func (g *Game) EachBullet(fn func(*Bullet)) {
	g.bullets.Each(func(_ int, b *Bullet) { fn(b) })
}

// EachEnemy visits live enemies in ascending id order.
func (g *Game) EachEnemy(fn func(*Enemy)) {
	g.enemies.Each(func(_ int, e *Enemy) { fn(e) })
}
