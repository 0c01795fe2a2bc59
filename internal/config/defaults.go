package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the default invaders configuration:
// an 800x600 playfield with a 5x10 grid.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Playfield: PlayfieldConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Width:        50,
			Height:       30,
			Speed:        5,
			BottomOffset: 30,
		},
		Bullet: BulletConfig{
			Width:  3,
			Height: 10,
			Speed:  7,
		},
		Enemies: EnemiesConfig{
			Rows:      5,
			Cols:      10,
			Width:     40,
			Height:    30,
			ColStride: 60,
			ColOffset: 50,
			RowStride: 50,
			RowOffset: 30,
		},
		Formation: FormationConfig{
			Speed:   1,
			Descent: 20,
		},
		Input: InputConfig{
			HoldMS: 150,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultInvadersYAML
}
