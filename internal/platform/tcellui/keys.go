// Package tcellui is a direct-drawing terminal frontend built on tcell.
// Frames are blitted from the runner goroutine; the event loop only
// forwards keys.
package tcellui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// mapKey translates a key event to a gameplay action.
func mapKey(ev *tcell.EventKey) core.Action {
	switch ev.Key() {
	case tcell.KeyLeft:
		return core.ActionLeft
	case tcell.KeyRight:
		return core.ActionRight
	case tcell.KeyUp:
		return core.ActionFire
	case tcell.KeyEscape:
		return core.ActionPause
	case tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A', 'h':
			return core.ActionLeft
		case 'd', 'D', 'l':
			return core.ActionRight
		case ' ', 'w', 'W':
			return core.ActionFire
		case 'p', 'P':
			return core.ActionPause
		case 'r', 'R':
			return core.ActionRestart
		case 'q', 'Q':
			return core.ActionQuit
		}
	}
	return core.ActionNone
}

// mapPromptKey translates a key pressed while the victory question is open.
func mapPromptKey(ev *tcell.EventKey) core.Action {
	switch ev.Key() {
	case tcell.KeyEnter:
		return core.ActionConfirm
	case tcell.KeyEscape:
		return core.ActionDeny
	case tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'y', 'Y':
			return core.ActionConfirm
		case 'n', 'N':
			return core.ActionDeny
		case 'q', 'Q':
			return core.ActionQuit
		}
	}
	return core.ActionNone
}
