package tui

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

// FrameMsg carries one rendered frame from the runner to the model.
type FrameMsg struct {
	View   string
	Status core.GameStatus
}

// PromptMsg asks the player a yes/no question.
type PromptMsg struct {
	Message string
}

// frameSurface rasterizes the playfield into a Screen and publishes each
// finished frame on a channel. All drawing happens on the runner goroutine.
type frameSurface struct {
	*core.ScreenSurface
	status func() core.GameStatus
	frames chan FrameMsg
}

func newFrameSurface(width, height int, field config.PlayfieldConfig) *frameSurface {
	screen := core.NewScreen(width, height)
	ss := core.NewScreenSurface(screen, field.Width, field.Height)
	ss.SetGlyph(invaders.BulletColor, '│')
	ss.SetGlyph(invaders.PlayerColor, '▆')

	return &frameSurface{
		ScreenSurface: ss,
		status:        func() core.GameStatus { return core.GameStatus{} },
		frames:        make(chan FrameMsg, 1),
	}
}

// Present implements core.Presenter.
func (s *frameSurface) Present() {
	s.publish(FrameMsg{
		View:   RenderScreen(s.Screen()),
		Status: s.status(),
	})
}

// publish sends a frame, replacing a frame the model has not picked up yet.
func (s *frameSurface) publish(msg FrameMsg) {
	select {
	case s.frames <- msg:
		return
	default:
	}

	// Buffer full, drop the stale frame and retry
	select {
	case <-s.frames:
	default:
	}
	select {
	case s.frames <- msg:
	default:
	}
}

// resize changes the playfield area in cells. Runner goroutine only.
func (s *frameSurface) resize(width, height int) {
	s.Screen().Resize(width, height)
}
