package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestRenderScreenRows(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.Set(0, 0, 'a', core.ColorRed)
	s.Set(1, 0, 'b', core.ColorRed)
	s.Set(3, 1, 'c', core.ColorGreen)

	out := RenderScreen(s)

	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("newlines = %d, want 1", got)
	}
	if !strings.Contains(out, "ab") {
		t.Errorf("same-colored cells should render as one run, got %q", out)
	}
	if !strings.Contains(out, "c") {
		t.Errorf("missing cell on second row, got %q", out)
	}
}

func TestRenderStatus(t *testing.T) {
	tests := []struct {
		name   string
		status core.GameStatus
		want   string
	}{
		{"playing", core.GameStatus{State: "playing", EnemiesLeft: 50}, "PLAYING"},
		{"paused", core.GameStatus{State: "paused", Paused: true}, "PAUSED"},
		{"won", core.GameStatus{State: "won", Paused: true, Won: true}, "CLEARED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderStatus(tt.status, 0)
			if !strings.Contains(got, tt.want) {
				t.Errorf("renderStatus() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

func TestRenderStatusCounts(t *testing.T) {
	got := renderStatus(core.GameStatus{EnemiesLeft: 12, Bullets: 3, Tick: 99}, 80)
	for _, want := range []string{"enemies 12", "bullets 3", "tick 99"} {
		if !strings.Contains(got, want) {
			t.Errorf("renderStatus() = %q, want it to contain %q", got, want)
		}
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText() = %q, want %q", got, "  ab")
	}
	if got := centerText("abcdef", 4); got != "abcdef" {
		t.Errorf("centerText() should not truncate, got %q", got)
	}
}
