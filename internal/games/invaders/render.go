package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Entity colors.
const (
	PlayerColor = core.ColorGreen
	EnemyColor  = core.ColorRed
	BulletColor = core.ColorWhite
)

// render draws the current frame: one Clear, then the player, every live
// enemy and every bullet as filled rectangles. Surfaces that buffer their
// output are flushed afterwards.
func (g *Game) render() {
	s := g.deps.Surface
	if s == nil {
		return
	}

	s.Clear()

	p := g.player
	s.FillRect(p.X, p.Y, p.Width, p.Height, PlayerColor)

	for _, e := range g.enemies {
		s.FillRect(e.X, e.Y, e.Width, e.Height, EnemyColor)
	}

	for _, b := range g.bullets {
		s.FillRect(b.X, b.Y, b.Width, b.Height, BulletColor)
	}

	if pr, ok := s.(core.Presenter); ok {
		pr.Present()
	}
}

// Redraw renders the current frame outside of a tick, for example after
// the frontend was resized while the game is paused.
func (g *Game) Redraw() {
	g.render()
}
