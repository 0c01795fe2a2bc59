package tcellui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	sim.SetSize(w, h)
	t.Cleanup(sim.Fini)
	return sim
}

func rowText(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := range w {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want core.Action
	}{
		{"left arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), core.ActionLeft},
		{"a", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), core.ActionLeft},
		{"right arrow", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), core.ActionRight},
		{"d", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), core.ActionRight},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), core.ActionFire},
		{"up arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), core.ActionFire},
		{"p", tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), core.ActionPause},
		{"esc", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), core.ActionPause},
		{"r", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), core.ActionRestart},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), core.ActionQuit},
		{"ctrl+c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), core.ActionQuit},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapKey(tt.ev); got != tt.want {
				t.Errorf("mapKey() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMapPromptKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want core.Action
	}{
		{"y", tcell.NewEventKey(tcell.KeyRune, 'y', tcell.ModNone), core.ActionConfirm},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), core.ActionConfirm},
		{"n", tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone), core.ActionDeny},
		{"esc", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), core.ActionDeny},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), core.ActionQuit},
		{"fire ignored", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapPromptKey(tt.ev); got != tt.want {
				t.Errorf("mapPromptKey() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStyleFor(t *testing.T) {
	if got := styleFor(core.ColorRed); got != tcell.StyleDefault.Foreground(tcell.ColorRed) {
		t.Error("red should map to a red foreground")
	}
	if got := styleFor(core.Color(200)); got != tcell.StyleDefault {
		t.Error("unknown colors should fall back to the default style")
	}
}

func TestCellSurfacePresent(t *testing.T) {
	sim := newSimScreen(t, 40, 12)
	s := newCellSurface(sim, config.PlayfieldConfig{Width: 800, Height: 600})
	s.status = func() core.GameStatus { return core.GameStatus{EnemiesLeft: 9} }

	s.Clear()
	s.FillRect(0, 0, 40, 50, invaders.EnemyColor)
	s.Present()

	r, _, style, _ := sim.GetContent(0, 0)
	if r != core.DefaultGlyph {
		t.Errorf("cell (0,0) = %q, want %q", r, core.DefaultGlyph)
	}
	if style != styleFor(invaders.EnemyColor) {
		t.Error("cell (0,0) should carry the enemy style")
	}

	status := rowText(sim, 11)
	if !strings.Contains(status, "enemies 9") {
		t.Errorf("status row = %q, want enemy count", status)
	}
}

func TestCellSurfacePrompt(t *testing.T) {
	sim := newSimScreen(t, 60, 12)
	s := newCellSurface(sim, config.PlayfieldConfig{Width: 800, Height: 600})
	s.showPrompt(invaders.VictoryMessage)

	found := false
	for y := range 12 {
		if strings.Contains(rowText(sim, y), invaders.VictoryMessage) {
			found = true
			break
		}
	}
	if !found {
		t.Error("prompt message should be drawn on screen")
	}
}

func TestCellSurfaceResize(t *testing.T) {
	sim := newSimScreen(t, 40, 12)
	s := newCellSurface(sim, config.PlayfieldConfig{Width: 800, Height: 600})

	sim.SetSize(30, 8)
	s.resize()

	if w, h := s.Screen().Width(), s.Screen().Height(); w != 30 || h != 7 {
		t.Errorf("field = %dx%d, want 30x7", w, h)
	}
}

func TestPlayerPromptKeys(t *testing.T) {
	sim := newSimScreen(t, 40, 12)
	p := newPlayer(sim, registry.PlayOptions{Game: config.DefaultInvadersConfig()})
	t.Cleanup(p.session.Stop)

	p.prompting.Store(true)
	p.handleKey(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	if !p.prompting.Load() {
		t.Error("gameplay keys should not close the prompt")
	}

	p.handleKey(tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone))
	if p.prompting.Load() {
		t.Error("n should close the prompt")
	}
}

func TestPlayerQuit(t *testing.T) {
	sim := newSimScreen(t, 40, 12)
	p := newPlayer(sim, registry.PlayOptions{Game: config.DefaultInvadersConfig()})

	p.handleKey(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))

	select {
	case <-p.session.Done():
	default:
		t.Error("q should stop the session")
	}
}

func TestRegistered(t *testing.T) {
	if !registry.Exists("tcell") {
		t.Error("tcell frontend should register itself")
	}
}
