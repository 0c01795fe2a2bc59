package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Player is the ship at the bottom of the playfield.
type Player struct {
	X, Y          float64 // Top-left corner; Y is constant during play
	Width, Height float64
	Speed         float64 // Horizontal units per tick
}

// Box returns the player's bounding box.
func (p Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.Width, p.Height)
}

// Enemy is one member of the formation. Enemies carry no behavior of their
// own; the formation moves them as a single body.
type Enemy struct {
	X, Y          float64
	Width, Height float64
}

// Box returns the enemy's bounding box.
func (e Enemy) Box() core.Box {
	return core.NewBox(e.X, e.Y, e.Width, e.Height)
}

// Bullet is a player projectile travelling straight up.
type Bullet struct {
	X, Y          float64
	Width, Height float64
	Speed         float64 // Upward units per tick
}

// Box returns the bullet's bounding box.
func (b Bullet) Box() core.Box {
	return core.NewBox(b.X, b.Y, b.Width, b.Height)
}

// newPlayer places the ship at the horizontal center of the playfield.
func newPlayer(cfg config.InvadersConfig) Player {
	p := Player{
		Y:      cfg.Playfield.Height - cfg.Player.BottomOffset,
		Width:  cfg.Player.Width,
		Height: cfg.Player.Height,
		Speed:  cfg.Player.Speed,
	}
	p.X = startX(cfg)
	return p
}

// startX is the restart position: the playfield center, clamped so a wide
// ship still fits.
func startX(cfg config.InvadersConfig) float64 {
	return core.ClampF(cfg.Playfield.Width/2, 0, cfg.Playfield.Width-cfg.Player.Width)
}

// newGrid builds the formation in row-major order: row 0 left to right,
// then row 1, and so on. Collision tie-breaks rely on this order.
func newGrid(cfg config.EnemiesConfig) []Enemy {
	enemies := make([]Enemy, 0, cfg.Rows*cfg.Cols)
	for row := range cfg.Rows {
		for col := range cfg.Cols {
			enemies = append(enemies, Enemy{
				X:      float64(col)*cfg.ColStride + cfg.ColOffset,
				Y:      float64(row)*cfg.RowStride + cfg.RowOffset,
				Width:  cfg.Width,
				Height: cfg.Height,
			})
		}
	}
	return enemies
}
