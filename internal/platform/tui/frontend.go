package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/registry"
)

func init() {
	registry.Register("tui", func() registry.Frontend { return Frontend{} })
}

// Frontend plays the game in the local terminal through Bubble Tea.
type Frontend struct{}

// ID returns the registry identifier.
func (Frontend) ID() string { return "tui" }

// Title returns the human-readable name.
func (Frontend) Title() string { return "Bubble Tea terminal" }

// Play runs one game until the player quits or ctx is cancelled.
func (Frontend) Play(ctx context.Context, opts registry.PlayOptions) error {
	model := NewGameModel(ctx, GameOptions{
		Game:     opts.Game,
		Runtime:  opts.Runtime,
		Logger:   opts.Logger,
		Recorder: opts.Recorder,
	})
	defer model.Stop()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return err
	}
	if gm, ok := final.(GameModel); ok {
		return gm.Err()
	}
	return nil
}
