package tui

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/redblock/internal/core"
)

// Game is what the terminal loop drives. Implementations own their
// simulation and draw into the shared screen buffer.
type Game interface {
	// ID returns a stable identifier used for score storage.
	ID() string

	// Title returns the human-readable name.
	Title() string

	// Reset starts the game from scratch with the given configuration.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state to the screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// GameFactory creates a fresh game instance.
type GameFactory func() Game

var logger = log.New(io.Discard)

// SetLogger routes platform logs to l. A nil logger silences them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}
