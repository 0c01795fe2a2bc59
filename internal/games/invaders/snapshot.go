package invaders

import "math"

// Snapshot captures the complete game state for determinism testing.
// Uses primitive types only for stable hashing.
type Snapshot struct {
	Tick      uint64
	State     string
	PlayerX   float64
	PlayerY   float64
	Direction int
	Latched   bool

	// Enemy positions (each enemy is 2 floats: X, Y), creation order
	EnemyCount int
	EnemyData  []float64

	// Bullet positions (each bullet is 2 floats: X, Y), spawn order
	BulletCount int
	BulletData  []float64

	// Run statistics
	Shots int
	Kills int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	enemyData := make([]float64, 0, len(g.enemies)*2)
	for _, e := range g.enemies {
		enemyData = append(enemyData, e.X, e.Y)
	}

	bulletData := make([]float64, 0, len(g.bullets)*2)
	for _, b := range g.bullets {
		bulletData = append(bulletData, b.X, b.Y)
	}

	return Snapshot{
		Tick:        g.run.ticks,
		State:       g.state.String(),
		PlayerX:     g.player.X,
		PlayerY:     g.player.Y,
		Direction:   g.formation.Direction,
		Latched:     g.input.Latched(),
		EnemyCount:  len(g.enemies),
		EnemyData:   enemyData,
		BulletCount: len(g.bullets),
		BulletData:  bulletData,
		Shots:       g.run.shots,
		Kills:       g.run.kills,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, c := range snap.State {
		h = h*31 + uint64(c)
	}
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerY)
	h = h*31 + uint64(snap.Direction+1)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemyCount)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BulletCount)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Shots)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Kills)         //#nosec G115 -- hash computation
	if snap.Latched {
		h = h*31 + 1
	}

	for _, v := range snap.EnemyData {
		h = h*31 + math.Float64bits(v)
	}

	for _, v := range snap.BulletData {
		h = h*31 + math.Float64bits(v)
	}

	return h
}
