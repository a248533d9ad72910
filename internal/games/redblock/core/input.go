package core

import "math"

// DefaultDeadzone is the stick deflection ignored as drift.
const DefaultDeadzone = 0.1

// Digital is a set of held direction keys.
type Digital struct {
	Left, Right, Up, Down bool
}

// MoveVector combines an analog stick reading (each axis in [-1, 1]) with
// held direction keys into a per-tick displacement. Stick axes at or
// below the deadzone contribute nothing; each key adds a full step.
func MoveVector(stickX, stickY, deadzone float64, keys Digital, speed float64) Vec {
	var v Vec
	if math.Abs(stickX) > deadzone {
		v.X += stickX * speed
	}
	if math.Abs(stickY) > deadzone {
		v.Y += stickY * speed
	}
	if keys.Left {
		v.X -= speed
	}
	if keys.Right {
		v.X += speed
	}
	if keys.Up {
		v.Y -= speed
	}
	if keys.Down {
		v.Y += speed
	}
	return v
}
