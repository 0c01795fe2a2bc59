package core

// RuntimeConfig contains configuration passed to the engine by the platform.
// Frontends use it to size the screen buffer and the frame interval.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // Reserved for frontends that need randomness; the engine is deterministic
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameStatus summarizes the engine state for the platform.
type GameStatus struct {
	State       string // "playing", "paused" or "won"
	Paused      bool   // True whenever the simulation is not ticking
	Won         bool   // True once the formation has been cleared
	EnemiesLeft int
	Bullets     int
	Tick        uint64
}
