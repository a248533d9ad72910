package core

// GameState is the episode phase.
type GameState int

const (
	StateInstructions GameState = iota // Waiting for confirm before play
	StatePlaying
	StateWin  // Agent reached the target; terminal until reset
	StateLose // Hazard hit or countdown expired; terminal until reset
)

// String returns a human-readable name for the state.
func (s GameState) String() string {
	switch s {
	case StateInstructions:
		return "instructions"
	case StatePlaying:
		return "playing"
	case StateWin:
		return "win"
	case StateLose:
		return "lose"
	default:
		return "unknown"
	}
}

// Terminal reports whether the episode has ended.
func (s GameState) Terminal() bool {
	return s == StateWin || s == StateLose
}

// Facing is the agent's horizontal heading, derived from its velocity.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// FacingFor returns FacingLeft for a negative horizontal velocity.
func FacingFor(vx float64) Facing {
	if vx < 0 {
		return FacingLeft
	}
	return FacingRight
}

// Hazard is a bouncing circle, stored as its bounding box.
type Hazard struct {
	Rect Rect
	Vel  Vec
}

// Radius returns the collision radius: half the box width, rounded down.
func (h Hazard) Radius() float64 {
	return float64(int(h.Rect.W) / 2)
}

// Input is what the player supplies for one tick.
type Input struct {
	Move    Vec  // Player block displacement for this tick
	Confirm bool // Starts play from the instructions or restarts after an ending
}
