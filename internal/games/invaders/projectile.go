package invaders

import "github.com/vovakirdan/tui-invaders/internal/config"

// SpawnBullet creates a bullet horizontally centered on the ship, starting
// at the ship's top edge.
func SpawnBullet(p Player, cfg config.BulletConfig) Bullet {
	return Bullet{
		X:      p.X + p.Width/2 - cfg.Width/2,
		Y:      p.Y,
		Width:  cfg.Width,
		Height: cfg.Height,
		Speed:  cfg.Speed,
	}
}

// AdvanceBullets moves every bullet up by its speed and drops bullets that
// have left the top of the playfield (Y < 0).
//
// Survivors are compacted into the front of the same backing array. The
// write index never passes the read index, so no bullet is skipped or moved
// twice.
func AdvanceBullets(bullets []Bullet) []Bullet {
	kept := bullets[:0]
	for _, b := range bullets {
		b.Y -= b.Speed
		if b.Y < 0 {
			continue
		}
		kept = append(kept, b)
	}
	clear(bullets[len(kept):])
	return kept
}
