package invaders

import "fmt"

// checkInvariants panics on impossible states. It only runs in builds
// tagged invadersdebug; release builds compile it down to nothing.
func (g *Game) checkInvariants() {
	if !debugChecks {
		return
	}

	if !g.state.Ticking() {
		panic(fmt.Sprintf("invaders: tick ran in state %s", g.state))
	}
	maxX := g.cfg.Playfield.Width - g.player.Width
	if g.player.X < 0 || g.player.X > maxX {
		panic(fmt.Sprintf("invaders: player x %v outside [0, %v]", g.player.X, maxX))
	}
	for i, b := range g.bullets {
		if b.Y < 0 {
			panic(fmt.Sprintf("invaders: bullet %d above the playfield (y=%v)", i, b.Y))
		}
	}
	if g.run.kills+len(g.enemies) != g.run.spawns {
		panic(fmt.Sprintf("invaders: %d kills + %d alive != %d spawned",
			g.run.kills, len(g.enemies), g.run.spawns))
	}
}
