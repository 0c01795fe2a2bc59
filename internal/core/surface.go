package core

import "math"

// DefaultGlyph is used for colors without an explicit glyph.
const DefaultGlyph = '█'

// ScreenSurface is a Surface that rasterizes playfield rectangles onto a
// character Screen. Playfield coordinates are scaled to the screen size;
// every non-empty rectangle covers at least one cell.
type ScreenSurface struct {
	screen *Screen
	fieldW float64
	fieldH float64
	glyphs map[Color]rune
}

// NewScreenSurface maps a fieldW x fieldH playfield onto screen.
func NewScreenSurface(screen *Screen, fieldW, fieldH float64) *ScreenSurface {
	return &ScreenSurface{
		screen: screen,
		fieldW: fieldW,
		fieldH: fieldH,
		glyphs: make(map[Color]rune),
	}
}

// SetGlyph sets the rune drawn for rectangles of color c.
func (s *ScreenSurface) SetGlyph(c Color, r rune) {
	s.glyphs[c] = r
}

// Screen returns the backing screen.
func (s *ScreenSurface) Screen() *Screen {
	return s.screen
}

// Clear implements Surface.
func (s *ScreenSurface) Clear() {
	s.screen.Clear()
}

// FillRect implements Surface.
func (s *ScreenSurface) FillRect(x, y, w, h float64, c Color) {
	if w <= 0 || h <= 0 || s.fieldW <= 0 || s.fieldH <= 0 {
		return
	}

	sx := float64(s.screen.Width()) / s.fieldW
	sy := float64(s.screen.Height()) / s.fieldH

	x0, x1 := scaleSpan(x, w, sx)
	y0, y1 := scaleSpan(y, h, sy)

	glyph, ok := s.glyphs[c]
	if !ok {
		glyph = DefaultGlyph
	}
	s.screen.FillRect(NewRect(x0, y0, x1-x0, y1-y0), glyph, c)
}

// scaleSpan maps [pos, pos+size) to cell indexes, keeping at least one cell.
func scaleSpan(pos, size, scale float64) (start, end int) {
	start = int(math.Round(pos * scale))
	end = int(math.Round((pos + size) * scale))
	if end <= start {
		end = start + 1
	}
	return start, end
}
