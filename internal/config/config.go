// Package config provides YAML-based game configuration loading and
// validation for the invaders platform.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// InvadersConfig contains all configuration for the invaders game.
type InvadersConfig struct {
	Playfield PlayfieldConfig `yaml:"playfield"`
	Player    PlayerConfig    `yaml:"player"`
	Bullet    BulletConfig    `yaml:"bullet"`
	Enemies   EnemiesConfig   `yaml:"enemies"`
	Formation FormationConfig `yaml:"formation"`
	Input     InputConfig     `yaml:"input"`
}

// PlayfieldConfig defines the logical simulation area.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`         // Units per tick
	BottomOffset float64 `yaml:"bottom_offset"` // Distance from ship top to playfield bottom
}

// BulletConfig defines player projectiles.
type BulletConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // Units per tick, upward
}

// EnemiesConfig defines the enemy grid layout.
type EnemiesConfig struct {
	Rows      int     `yaml:"rows"`
	Cols      int     `yaml:"cols"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	ColStride float64 `yaml:"col_stride"`
	ColOffset float64 `yaml:"col_offset"`
	RowStride float64 `yaml:"row_stride"`
	RowOffset float64 `yaml:"row_offset"`
}

// FormationConfig defines how the grid moves.
type FormationConfig struct {
	Speed   float64 `yaml:"speed"`   // Horizontal units per tick
	Descent float64 `yaml:"descent"` // Units dropped on each wall contact
}

// InputConfig tunes held-key emulation for terminals without key-up events.
type InputConfig struct {
	HoldMS int `yaml:"hold_ms"` // How long a key counts as held after its last press event
}

// Validate checks the configuration for values the engine cannot run with.
func (c InvadersConfig) Validate() error {
	positive := []struct {
		name string
		val  float64
	}{
		{"playfield.width", c.Playfield.Width},
		{"playfield.height", c.Playfield.Height},
		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
		{"player.speed", c.Player.Speed},
		{"bullet.width", c.Bullet.Width},
		{"bullet.height", c.Bullet.Height},
		{"bullet.speed", c.Bullet.Speed},
		{"enemies.width", c.Enemies.Width},
		{"enemies.height", c.Enemies.Height},
		{"formation.speed", c.Formation.Speed},
	}
	for _, p := range positive {
		if p.val <= 0 {
			return fmt.Errorf("config: %s must be positive, got %v: %w", p.name, p.val, ErrInvalidConfig)
		}
	}

	if c.Enemies.Rows <= 0 || c.Enemies.Cols <= 0 {
		return fmt.Errorf("config: enemy grid must be at least 1x1, got %dx%d: %w",
			c.Enemies.Rows, c.Enemies.Cols, ErrInvalidConfig)
	}
	if c.Formation.Descent < 0 {
		return fmt.Errorf("config: formation.descent must not be negative: %w", ErrInvalidConfig)
	}
	if c.Player.Width > c.Playfield.Width {
		return fmt.Errorf("config: player wider than playfield: %w", ErrInvalidConfig)
	}
	if c.Player.BottomOffset < c.Player.Height || c.Player.BottomOffset > c.Playfield.Height {
		return fmt.Errorf("config: player.bottom_offset %v must be within [%v, %v]: %w",
			c.Player.BottomOffset, c.Player.Height, c.Playfield.Height, ErrInvalidConfig)
	}

	// The whole initial grid has to sit strictly inside the side walls,
	// otherwise the formation would flip on its very first tick.
	gridLeft := c.Enemies.ColOffset
	gridRight := c.Enemies.ColOffset + float64(c.Enemies.Cols-1)*c.Enemies.ColStride + c.Enemies.Width
	if gridLeft <= 0 || gridRight >= c.Playfield.Width {
		return fmt.Errorf("config: enemy grid spans [%v, %v], outside playfield width %v: %w",
			gridLeft, gridRight, c.Playfield.Width, ErrInvalidConfig)
	}
	if c.Enemies.ColStride < c.Enemies.Width || c.Enemies.RowStride < c.Enemies.Height {
		return fmt.Errorf("config: enemy strides must not be smaller than enemy size: %w", ErrInvalidConfig)
	}

	if c.Input.HoldMS < 0 {
		return fmt.Errorf("config: input.hold_ms must not be negative: %w", ErrInvalidConfig)
	}
	return nil
}
