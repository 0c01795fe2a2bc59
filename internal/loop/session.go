package loop

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

// SessionConfig configures one hosted game.
type SessionConfig struct {
	Game     config.InvadersConfig
	TickRate int
	Logger   *log.Logger
	Recorder invaders.RunRecorder // Optional
}

// Session runs one game on a Runner and exposes goroutine-safe controls.
type Session struct {
	runner   *Runner
	keys     *HeldKeys
	prompter *Prompter
	game     *invaders.Game
	logger   *log.Logger
}

// NewSession wires a game to a runner, a held-key table and a prompter.
// surface receives every frame on the runner goroutine. ask is called on
// the runner goroutine when the game asks a question; the frontend shows it
// and later calls Answer.
func NewSession(cfg SessionConfig, surface core.Surface, ask func(message string)) *Session {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	runner := NewRunner(cfg.TickRate, WithRunnerLogger(logger))
	keys := NewHeldKeys(time.Duration(cfg.Game.Input.HoldMS) * time.Millisecond)
	prompter := NewPrompter(runner.Done(), ask)

	opts := []invaders.Option{invaders.WithLogger(logger)}
	if cfg.Recorder != nil {
		opts = append(opts, invaders.WithRecorder(cfg.Recorder))
	}

	game := invaders.New(cfg.Game, invaders.Deps{
		Scheduler: runner,
		Keys:      keys,
		Surface:   surface,
		Prompter:  prompter,
	}, opts...)

	return &Session{
		runner:   runner,
		keys:     keys,
		prompter: prompter,
		game:     game,
		logger:   logger,
	}
}

// Run plays the game until ctx is cancelled or Stop is called. The calling
// goroutine becomes the runner goroutine.
func (s *Session) Run(ctx context.Context) error {
	s.game.Start()
	s.game.Redraw()
	err := s.runner.Run(ctx)
	s.game.Finish()
	return err
}

// Press records a key press or auto-repeat.
func (s *Session) Press(a core.Action) {
	s.keys.Press(a)
}

// TogglePause pauses or resumes the game.
func (s *Session) TogglePause() {
	s.runner.Do(func() {
		s.game.TogglePause()
		s.game.Redraw()
	})
}

// Restart starts a fresh round.
func (s *Session) Restart() {
	s.runner.Do(func() {
		s.keys.ReleaseAll()
		s.game.Restart()
		s.game.Redraw()
	})
}

// Answer replies to the pending question.
func (s *Session) Answer(yes bool) {
	s.prompter.Answer(yes)
}

// Do runs fn on the runner goroutine, for example to resize the surface.
// fn may call Status and Redraw.
func (s *Session) Do(fn func()) bool {
	return s.runner.Do(fn)
}

// Redraw renders the current frame. Runner goroutine only.
func (s *Session) Redraw() {
	s.game.Redraw()
}

// Status summarizes the game. Runner goroutine only; surfaces may call it
// from Present.
func (s *Session) Status() core.GameStatus {
	return s.game.Status()
}

// Stop ends the session and answers any pending question with "no".
func (s *Session) Stop() {
	s.runner.Stop()
}

// Done closes when the session has stopped.
func (s *Session) Done() <-chan struct{} {
	return s.runner.Done()
}
