package loop

import (
	"sync"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// DefaultHold is how long a key counts as held after its last press event.
const DefaultHold = 150 * time.Millisecond

// HeldKeys is a core.KeySource for terminals, which report presses and
// auto-repeats but never releases. A key is held while its last press is
// younger than the hold window. Safe for concurrent use.
type HeldKeys struct {
	mu      sync.Mutex
	hold    time.Duration
	now     func() time.Time
	pressed map[core.Action]time.Time
}

// NewHeldKeys creates an empty key table with the given hold window.
// A non-positive window uses DefaultHold.
func NewHeldKeys(hold time.Duration) *HeldKeys {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &HeldKeys{
		hold:    hold,
		now:     time.Now,
		pressed: make(map[core.Action]time.Time),
	}
}

// Press records a press or repeat of a.
func (h *HeldKeys) Press(a core.Action) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.pressed[a] = h.now()
}

// Release forgets a, for backends that do report key-up.
func (h *HeldKeys) Release(a core.Action) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.pressed, a)
}

// ReleaseAll forgets every key.
func (h *HeldKeys) ReleaseAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	clear(h.pressed)
}

// IsHeld implements core.KeySource.
func (h *HeldKeys) IsHeld(a core.Action) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	t, ok := h.pressed[a]
	if !ok {
		return false
	}
	if h.now().Sub(t) >= h.hold {
		delete(h.pressed, a)
		return false
	}
	return true
}
