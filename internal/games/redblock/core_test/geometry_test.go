package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/redblock/internal/games/redblock/core"
)

func TestRectsOverlapSymmetric(t *testing.T) {
	tests := []struct {
		name string
		a, b core.Rect
		want bool
	}{
		{"overlapping", core.R(0, 0, 10, 10), core.R(5, 5, 10, 10), true},
		{"contained", core.R(0, 0, 100, 100), core.R(40, 40, 5, 5), true},
		{"identical", core.R(3, 4, 5, 6), core.R(3, 4, 5, 6), true},
		{"touching right edge", core.R(0, 0, 10, 10), core.R(10, 0, 10, 10), false},
		{"touching bottom edge", core.R(0, 0, 10, 10), core.R(0, 10, 10, 10), false},
		{"touching corner", core.R(0, 0, 10, 10), core.R(10, 10, 5, 5), false},
		{"disjoint", core.R(0, 0, 10, 10), core.R(50, 50, 10, 10), false},
		{"fractional overlap", core.R(0, 0, 10.5, 10), core.R(10.4, 0, 3, 3), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, core.RectsOverlap(tt.a, tt.b))
			assert.Equal(t, core.RectsOverlap(tt.a, tt.b), core.RectsOverlap(tt.b, tt.a), "overlap must be symmetric")
		})
	}
}

func TestCircleRectOverlapBoundaryExclusive(t *testing.T) {
	rect := core.R(100, 100, 50, 50)

	tests := []struct {
		name   string
		center core.Vec
		radius float64
		want   bool
	}{
		{"exactly radius left of edge", core.Vec{X: 80, Y: 125}, 20, false},
		{"exactly radius below edge", core.Vec{X: 125, Y: 170}, 20, false},
		{"just inside radius", core.Vec{X: 80, Y: 125}, 20.5, true},
		{"center inside rect", core.Vec{X: 125, Y: 125}, 1, true},
		{"diagonal corner miss", core.Vec{X: 85, Y: 85}, 20, false},
		{"diagonal corner hit", core.Vec{X: 90, Y: 90}, 15, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, core.CircleRectOverlap(tt.center, tt.radius, rect))
		})
	}
}

func TestResolvePenetrationNoObstacles(t *testing.T) {
	r := core.R(12.5, 30, 55, 61)
	assert.Equal(t, r, core.ResolvePenetration(r, nil))
}

func TestResolvePenetrationSingleObstacle(t *testing.T) {
	tests := []struct {
		name     string
		moving   core.Rect
		obstacle core.Rect
		want     core.Rect
	}{
		{
			name:     "identical rects push down",
			moving:   core.R(100, 100, 50, 50),
			obstacle: core.R(100, 100, 50, 50),
			want:     core.R(100, 150, 50, 50),
		},
		{
			name:     "shallow x overlap pushes left",
			moving:   core.R(0, 0, 50, 50),
			obstacle: core.R(40, 10, 100, 100),
			want:     core.R(-10, 0, 50, 50),
		},
		{
			name:     "shallow y overlap pushes up",
			moving:   core.R(20, 0, 50, 50),
			obstacle: core.R(0, 45, 100, 100),
			want:     core.R(20, -5, 50, 50),
		},
		{
			name:     "moving right of centre pushes right",
			moving:   core.R(95, 0, 50, 50),
			obstacle: core.R(0, 0, 100, 100),
			want:     core.R(100, 0, 50, 50),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := core.ResolvePenetration(tt.moving, []core.Rect{tt.obstacle})
			assert.Equal(t, tt.want, got)
			assert.False(t, core.RectsOverlap(got, tt.obstacle))
		})
	}
}

func TestResolvePenetrationTerminatesWhenWedged(t *testing.T) {
	// Moving box sits in a gap narrower than itself; there is no clean
	// answer, only a bounded number of passes.
	obstacles := []core.Rect{
		core.R(0, 0, 48, 100),
		core.R(52, 0, 48, 100),
	}
	got := core.ResolvePenetration(core.R(25, 25, 50, 50), obstacles)
	assert.NotEqual(t, core.R(25, 25, 50, 50), got)
}

func TestRectHelpers(t *testing.T) {
	r := core.R(10, 20, 30, 40)
	assert.Equal(t, 40.0, r.Right())
	assert.Equal(t, 60.0, r.Bottom())
	assert.Equal(t, core.Vec{X: 25, Y: 40}, r.Center())
	assert.Equal(t, core.R(5, 15, 40, 50), r.Inflate(10, 10))

	assert.True(t, r.ContainsPoint(core.Vec{X: 10, Y: 20}), "top-left corner is inside")
	assert.False(t, r.ContainsPoint(core.Vec{X: 40, Y: 30}), "right edge is outside")
	assert.False(t, r.ContainsPoint(core.Vec{X: 20, Y: 60}), "bottom edge is outside")
}
