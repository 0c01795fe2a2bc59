package core

import "testing"

func TestScreenSurfaceScaling(t *testing.T) {
	screen := NewScreen(80, 22)
	s := NewScreenSurface(screen, 800, 600)

	// Enemy 40x30 at (50,30) covers columns 5-8 on row 1
	s.FillRect(50, 30, 40, 30, ColorRed)
	for x := 5; x <= 8; x++ {
		if c := screen.GetCell(x, 1); c.Color != ColorRed || c.Rune != DefaultGlyph {
			t.Errorf("cell (%d,1) = %+v, want red block", x, c)
		}
	}
	if c := screen.GetCell(9, 1); c.Color != ColorDefault {
		t.Errorf("cell (9,1) should be empty, got %+v", c)
	}
	if c := screen.GetCell(5, 2); c.Color != ColorDefault {
		t.Errorf("cell (5,2) should be empty, got %+v", c)
	}
}

func TestScreenSurfaceTinyRectVisible(t *testing.T) {
	screen := NewScreen(80, 22)
	s := NewScreenSurface(screen, 800, 600)
	s.SetGlyph(ColorWhite, '|')

	// A 3x10 bullet is smaller than a cell but still drawn
	s.FillRect(423.5, 300, 3, 10, ColorWhite)

	found := 0
	for y := range screen.Height() {
		for x := range screen.Width() {
			if c := screen.GetCell(x, y); c.Rune == '|' {
				found++
			}
		}
	}
	if found != 1 {
		t.Errorf("bullet covered %d cells, want 1", found)
	}
}

func TestScreenSurfaceClipsAndClears(t *testing.T) {
	screen := NewScreen(10, 5)
	s := NewScreenSurface(screen, 100, 50)

	s.FillRect(88, 38, 50, 50, ColorGreen)
	if c := screen.GetCell(9, 4); c.Color != ColorGreen {
		t.Errorf("corner cell = %+v, want green", c)
	}

	s.FillRect(0, 0, 0, 10, ColorRed)
	if c := screen.GetCell(0, 0); c.Color != ColorDefault {
		t.Error("zero-width rect should draw nothing")
	}

	s.Clear()
	if c := screen.GetCell(9, 4); c.Color != ColorDefault {
		t.Error("Clear should blank the screen")
	}
}
