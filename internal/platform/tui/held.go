package tui

import (
	"time"

	"github.com/vovakirdan/redblock/internal/core"
)

// Terminals report key presses and auto-repeats but never releases, so a
// direction counts as held for a short while after its last event. The
// first press bridges the gap before the terminal starts repeating.
const (
	firstPressHold = 500 * time.Millisecond
	repeatHold     = 120 * time.Millisecond
)

// heldKeys tracks which movement directions are currently held.
type heldKeys struct {
	until map[core.Action]time.Time
}

func newHeldKeys() heldKeys {
	return heldKeys{until: make(map[core.Action]time.Time)}
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	}
	return core.ActionNone
}

// Press records a direction event at now. Pressing the opposite direction
// releases the current one.
func (h *heldKeys) Press(a core.Action, now time.Time) {
	if h.until == nil {
		h.until = make(map[core.Action]time.Time)
	}
	delete(h.until, opposite(a))

	hold := firstPressHold
	if t, ok := h.until[a]; ok && now.Before(t) {
		hold = repeatHold
	}
	h.until[a] = now.Add(hold)
}

// Apply sets every direction still held at now on the frame and forgets
// expired ones.
func (h *heldKeys) Apply(f *core.InputFrame, now time.Time) {
	for a, t := range h.until {
		if now.Before(t) {
			f.Set(a)
		} else {
			delete(h.until, a)
		}
	}
}

// Release forgets all held directions.
func (h *heldKeys) Release() {
	clear(h.until)
}
