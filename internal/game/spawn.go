package game

const (
	DefaultSpawnMin = 50
	DefaultSpawnMax = 350
)

// SpawnPolicy decides enemy spawn cadence and placement.
type SpawnPolicy interface {
	// NextInterval returns the ticks until the next spawn after one at step.
	NextInterval(step int, rng Rand) int
	// SpawnX returns the left edge of a new enemy in [0, maxX].
	SpawnX(step int, maxX float64, rng Rand) float64
}

// UniformSpawn draws the interval uniformly from [Min, Max) and the spawn x
// uniformly across the top edge.
type UniformSpawn struct {
	Min, Max int
}

func (u UniformSpawn) NextInterval(_ int, rng Rand) int {
	if u.Max <= u.Min {
		return u.Min
	}
	return u.Min + rng.Intn(u.Max-u.Min)
}

func (u UniformSpawn) SpawnX(_ int, maxX float64, rng Rand) float64 {
	if maxX <= 0 {
		return 0
	}
	return rng.Float64() * maxX
}
