package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// InputMapper turns held-key state into ship motion and fire requests.
// Fire is edge-triggered: holding the fire key yields one shot, and the key
// must be released before the next one.
type InputMapper struct {
	fireLatched bool // Fire was held on the previous mapped tick
}

// Map moves the player according to the held keys and reports whether a
// bullet should be fired this tick. fieldW is the playfield width.
func (m *InputMapper) Map(keys core.KeySource, p *Player, fieldW float64) (fire bool) {
	maxX := fieldW - p.Width

	if keys.IsHeld(core.ActionLeft) && p.X > 0 {
		p.X = core.ClampF(p.X-p.Speed, 0, maxX)
	}
	if keys.IsHeld(core.ActionRight) && p.X < maxX {
		p.X = core.ClampF(p.X+p.Speed, 0, maxX)
	}

	held := keys.IsHeld(core.ActionFire)
	fire = held && !m.fireLatched
	m.fireLatched = held
	return fire
}

// Latched reports whether the fire key is currently consumed.
func (m *InputMapper) Latched() bool {
	return m.fireLatched
}
