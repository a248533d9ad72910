// Package core provides fundamental types and utilities for the platform.
// It contains no external dependencies (especially no Bubble Tea) to keep
// game logic pure and testable.
package core

import "math"

// Rect is an axis-aligned box of screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Viewport maps a continuous world onto a block of screen cells.
type Viewport struct {
	Area           Rect    // Screen cells the world is drawn into
	ScaleX, ScaleY float64 // Cells per world unit
}

// FitViewport scales a worldW × worldH world to fill area.
func FitViewport(area Rect, worldW, worldH float64) Viewport {
	v := Viewport{Area: area}
	if worldW > 0 {
		v.ScaleX = float64(area.W) / worldW
	}
	if worldH > 0 {
		v.ScaleY = float64(area.H) / worldH
	}
	return v
}

// Point returns the cell holding the world point (x, y).
func (v Viewport) Point(x, y float64) (int, int) {
	cx := v.Area.X + int(math.Floor(x*v.ScaleX))
	cy := v.Area.Y + int(math.Floor(y*v.ScaleY))
	return Clamp(cx, v.Area.X, v.Area.Right()-1), Clamp(cy, v.Area.Y, v.Area.Bottom()-1)
}

// Project returns the cells covered by a world box. Every non-empty box
// covers at least one cell so small objects stay visible.
func (v Viewport) Project(x, y, w, h float64) Rect {
	left := int(math.Floor(x * v.ScaleX))
	top := int(math.Floor(y * v.ScaleY))
	right := int(math.Ceil((x + w) * v.ScaleX))
	bottom := int(math.Ceil((y + h) * v.ScaleY))
	if right <= left {
		right = left + 1
	}
	if bottom <= top {
		bottom = top + 1
	}
	return NewRect(v.Area.X+left, v.Area.Y+top, right-left, bottom-top)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
