package core

// Surface is a 2D drawing target that accepts filled rectangles.
// Coordinates are playfield units; the surface owns any scaling.
type Surface interface {
	// Clear erases the whole surface.
	Clear()
	// FillRect draws a solid axis-aligned rectangle.
	FillRect(x, y, w, h float64, c Color)
}

// Presenter is implemented by surfaces that buffer draw commands and need
// an explicit flush once a frame is complete.
type Presenter interface {
	Present()
}

// Scheduler delivers frame ticks. RequestTick registers a callback that is
// invoked once, asynchronously, on the next frame. Callers re-request each
// tick to keep the loop alive.
type Scheduler interface {
	RequestTick(fn func())
}

// Prompter asks the player a yes/no question and blocks until it is answered.
type Prompter interface {
	Confirm(message string) bool
}

// PrompterFunc adapts a function to the Prompter interface.
type PrompterFunc func(message string) bool

// Confirm calls f(message).
func (f PrompterFunc) Confirm(message string) bool {
	return f(message)
}
