package tcellui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

// statusRows is the number of terminal rows below the playfield.
const statusRows = 1

var colorStyles = map[core.Color]tcell.Style{
	core.ColorDefault: tcell.StyleDefault,
	core.ColorRed:     tcell.StyleDefault.Foreground(tcell.ColorRed),
	core.ColorGreen:   tcell.StyleDefault.Foreground(tcell.ColorGreen),
	core.ColorYellow:  tcell.StyleDefault.Foreground(tcell.ColorYellow),
	core.ColorBlue:    tcell.StyleDefault.Foreground(tcell.ColorBlue),
	core.ColorMagenta: tcell.StyleDefault.Foreground(tcell.ColorPurple),
	core.ColorCyan:    tcell.StyleDefault.Foreground(tcell.Color(51)), // Cyan in 256-color palette
	core.ColorWhite:   tcell.StyleDefault.Foreground(tcell.ColorWhite),
	core.ColorGray:    tcell.StyleDefault.Foreground(tcell.Color(240)),
}

var (
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
	promptStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
)

func styleFor(c core.Color) tcell.Style {
	if st, ok := colorStyles[c]; ok {
		return st
	}
	return tcell.StyleDefault
}

// cellSurface rasterizes into a core.Screen and copies it to the terminal
// on Present. Runner goroutine only.
type cellSurface struct {
	*core.ScreenSurface
	term   tcell.Screen
	status func() core.GameStatus
}

func newCellSurface(term tcell.Screen, field config.PlayfieldConfig) *cellSurface {
	w, h := term.Size()
	ss := core.NewScreenSurface(core.NewScreen(w, max(h-statusRows, 1)), field.Width, field.Height)
	ss.SetGlyph(invaders.BulletColor, '│')
	ss.SetGlyph(invaders.PlayerColor, '▆')

	return &cellSurface{
		ScreenSurface: ss,
		term:          term,
		status:        func() core.GameStatus { return core.GameStatus{} },
	}
}

// Present implements core.Presenter.
func (s *cellSurface) Present() {
	buf := s.Screen()
	for y := range buf.Height() {
		for x := range buf.Width() {
			c := buf.GetCell(x, y)
			s.term.SetContent(x, y, c.Rune, nil, styleFor(c.Color))
		}
	}
	s.drawStatus(buf.Height())
	s.term.Show()
}

func (s *cellSurface) drawStatus(row int) {
	st := s.status()
	label := "PLAYING"
	switch {
	case st.Won:
		label = "CLEARED  r: restart"
	case st.Paused:
		label = "PAUSED  p: resume"
	}
	text := fmt.Sprintf(" INVADERS  %s  enemies %d  bullets %d  tick %d  q: quit", label, st.EnemiesLeft, st.Bullets, st.Tick)

	w, _ := s.term.Size()
	s.drawText(0, row, w, text, statusStyle)
}

// showPrompt draws a question over the current frame.
func (s *cellSurface) showPrompt(message string) {
	lines := []string{message, "", "[y] yes    [n] no"}
	w, h := s.term.Size()

	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l)))
	}
	boxW += 4
	top := max((h-len(lines))/2-1, 0)
	left := max((w-boxW)/2, 0)

	for i := -1; i <= len(lines); i++ {
		text := ""
		if i >= 0 && i < len(lines) {
			text = lines[i]
		}
		s.drawText(left, top+1+i, boxW, "  "+text, promptStyle)
	}
	s.term.Show()
}

// drawText writes text at (x, y), padding with spaces to width cells.
func (s *cellSurface) drawText(x, y, width int, text string, style tcell.Style) {
	runes := []rune(text)
	for i := range width {
		r := ' '
		if i < len(runes) {
			r = runes[i]
		}
		s.term.SetContent(x+i, y, r, nil, style)
	}
}

// resize matches the playfield to the terminal. Runner goroutine only.
func (s *cellSurface) resize() {
	w, h := s.term.Size()
	s.term.Clear()
	s.Screen().Resize(w, max(h-statusRows, 1))
}
