package tcellui

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/loop"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

func init() {
	registry.Register("tcell", func() registry.Frontend { return Frontend{} })
}

// Frontend plays the game by drawing cells directly with tcell.
type Frontend struct{}

// ID returns the registry identifier.
func (Frontend) ID() string { return "tcell" }

// Title returns the human-readable name.
func (Frontend) Title() string { return "tcell direct drawing" }

// Play runs one game until the player quits or ctx is cancelled.
func (Frontend) Play(ctx context.Context, opts registry.PlayOptions) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcell: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tcell: cannot initialize screen: %w", err)
	}
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault.
		Background(tcell.ColorDefault).
		Foreground(tcell.ColorWhite))
	screen.HideCursor()
	screen.Clear()

	return newPlayer(screen, opts).run(ctx)
}

// player connects one tcell screen to one session.
type player struct {
	screen    tcell.Screen
	surface   *cellSurface
	session   *loop.Session
	prompting atomic.Bool
}

func newPlayer(screen tcell.Screen, opts registry.PlayOptions) *player {
	p := &player{
		screen:  screen,
		surface: newCellSurface(screen, opts.Game.Playfield),
	}
	p.session = loop.NewSession(loop.SessionConfig{
		Game:     opts.Game,
		TickRate: opts.Runtime.TickRate,
		Logger:   opts.Logger,
		Recorder: opts.Recorder,
	}, p.surface, p.ask)
	p.surface.status = p.session.Status
	return p
}

// ask runs on the runner goroutine while the game waits for an answer.
func (p *player) ask(message string) {
	p.prompting.Store(true)
	p.surface.showPrompt(message)
}

// run hosts the session and forwards terminal events until it stops.
func (p *player) run(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		errc <- p.session.Run(ctx)
	}()

	events := make(chan tcell.Event, 10)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := p.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	for {
		select {
		case err := <-errc:
			return err
		case ev := <-events:
			p.handleEvent(ev)
		}
	}
}

func (p *player) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		p.handleKey(ev)
	case *tcell.EventResize:
		p.screen.Sync()
		surface, session := p.surface, p.session
		session.Do(func() {
			surface.resize()
			session.Redraw()
		})
	}
}

func (p *player) handleKey(ev *tcell.EventKey) {
	if p.prompting.Load() {
		switch mapPromptKey(ev) {
		case core.ActionConfirm:
			p.prompting.Store(false)
			p.session.Answer(true)
		case core.ActionDeny:
			p.prompting.Store(false)
			p.session.Answer(false)
		case core.ActionQuit:
			p.session.Stop()
		}
		return
	}

	switch action := mapKey(ev); action {
	case core.ActionQuit:
		p.session.Stop()
	case core.ActionPause:
		p.session.TogglePause()
	case core.ActionRestart:
		p.session.Restart()
	case core.ActionLeft, core.ActionRight, core.ActionFire:
		p.session.Press(action)
	}
}
