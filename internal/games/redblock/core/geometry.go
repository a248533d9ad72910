// Package core implements the Red Block Rescue simulation: collision
// primitives, grid reachability, level generation and the per-tick world
// update. It has no platform or terminal dependencies.
package core

import "math"

// Vec is a point or displacement in arena units.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Rect is an axis-aligned box, half-open on its right and bottom edges.
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// R is shorthand for constructing a Rect.
func R(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the centre point of the rectangle.
func (r Rect) Center() Vec {
	return Vec{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Translate returns the rectangle moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Inflate grows the rectangle by dw and dh in total, keeping its centre.
func (r Rect) Inflate(dw, dh float64) Rect {
	return Rect{X: r.X - dw/2, Y: r.Y - dh/2, W: r.W + dw, H: r.H + dh}
}

// ContainsPoint reports whether p lies inside the rectangle.
// The left and top edges are inside, the right and bottom edges are not.
func (r Rect) ContainsPoint(p Vec) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// RectsOverlap reports whether a and b share interior area.
// Rectangles that only touch along an edge do not overlap.
func RectsOverlap(a, b Rect) bool {
	if a.X >= b.Right() || b.X >= a.Right() {
		return false
	}
	if a.Y >= b.Bottom() || b.Y >= a.Bottom() {
		return false
	}
	return true
}

// OverlapsAny reports whether r overlaps any rectangle in rects.
func OverlapsAny(r Rect, rects []Rect) bool {
	for _, o := range rects {
		if RectsOverlap(r, o) {
			return true
		}
	}
	return false
}

// CircleRectOverlap reports whether the circle at center with the given
// radius overlaps rect. A circle exactly radius away from the nearest
// point of the rect does not overlap.
func CircleRectOverlap(center Vec, radius float64, rect Rect) bool {
	closestX := clampF(center.X, rect.X, rect.Right())
	closestY := clampF(center.Y, rect.Y, rect.Bottom())
	dx := center.X - closestX
	dy := center.Y - closestY
	return dx*dx+dy*dy < radius*radius
}

// MaxPenetrationPasses bounds ResolvePenetration.
const MaxPenetrationPasses = 10

// ResolvePenetration pushes moving out of the obstacles it overlaps.
// Each pass fixes the first overlapping obstacle found, displacing moving
// along the axis of smaller overlap, away from that obstacle's centre.
// The scan restarts after every displacement and stops once a full scan
// finds nothing or MaxPenetrationPasses is reached.
func ResolvePenetration(moving Rect, obstacles []Rect) Rect {
	return resolvePenetration(moving, Blockers{Extra: obstacles})
}

func resolvePenetration(moving Rect, blockers Blockers) Rect {
	for range MaxPenetrationPasses {
		hit, ok := blockers.First(moving)
		if !ok {
			return moving
		}

		overlapX := math.Min(moving.Right(), hit.Right()) - math.Max(moving.X, hit.X)
		overlapY := math.Min(moving.Bottom(), hit.Bottom()) - math.Max(moving.Y, hit.Y)
		mc, hc := moving.Center(), hit.Center()

		if overlapX < overlapY {
			if mc.X < hc.X {
				moving.X -= overlapX
			} else {
				moving.X += overlapX
			}
		} else {
			if mc.Y < hc.Y {
				moving.Y -= overlapY
			} else {
				moving.Y += overlapY
			}
		}
	}
	return moving
}

func firstOverlap(r Rect, rects []Rect) (Rect, bool) {
	for _, o := range rects {
		if RectsOverlap(r, o) {
			return o, true
		}
	}
	return Rect{}, false
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
