package invaders

import "github.com/vovakirdan/tui-invaders/internal/config"

// Formation directions.
const (
	DirLeft  = -1
	DirRight = 1
)

// FormationState is the shared motion of the enemy grid. It belongs to the
// game, not to individual enemies.
type FormationState struct {
	Direction int     // DirRight or DirLeft
	Speed     float64 // Horizontal units per tick
	Descent   float64 // Units every enemy drops on a wall contact
}

// NewFormationState returns a formation moving right.
func NewFormationState(cfg config.FormationConfig) FormationState {
	return FormationState{
		Direction: DirRight,
		Speed:     cfg.Speed,
		Descent:   cfg.Descent,
	}
}

// AdvanceFormation moves the grid one tick as a rigid body.
//
// Every enemy shifts by Speed*Direction. Then, if any enemy touches a side
// wall (X <= 0 or X+Width >= fieldW), the direction flips and the whole grid
// drops by Descent, once per contact regardless of how many enemies touch.
// Returns true if the formation reversed. An empty grid is left alone.
func AdvanceFormation(enemies []Enemy, st *FormationState, fieldW float64) (reversed bool) {
	if len(enemies) == 0 {
		return false
	}

	dx := st.Speed * float64(st.Direction)
	touching := false
	for i := range enemies {
		e := &enemies[i]
		e.X += dx
		if e.X <= 0 || e.X+e.Width >= fieldW {
			touching = true
		}
	}

	if !touching {
		return false
	}

	st.Direction = -st.Direction
	for i := range enemies {
		enemies[i].Y += st.Descent
	}
	return true
}
