package event

import "github.com/google/uuid"

// Round lifecycle and entity events emitted by the game core.

type RoundStarted struct {
	RoundID     uuid.UUID
	Life        int
	BulletLimit int
}

type BulletFired struct {
	RoundID uuid.UUID
	ID      int
	Angle   float64
}

// BulletExpired is emitted when a bullet leaves through the top edge.
type BulletExpired struct {
	RoundID uuid.UUID
	ID      int
	Bounces int
}

type EnemySpawned struct {
	RoundID uuid.UUID
	ID      int
	X       float64
	Step    int
}

// SpawnRejected is emitted when a spawn was due but every enemy slot is live.
type SpawnRejected struct {
	RoundID uuid.UUID
	Step    int
}

type EnemyEscaped struct {
	RoundID uuid.UUID
	ID      int
}

type LifeLost struct {
	RoundID   uuid.UUID
	Remaining int
}

type EnemyDestroyed struct {
	RoundID  uuid.UUID
	EnemyID  int
	BulletID int
}

type GameOver struct {
	RoundID uuid.UUID
	Step    int
}
