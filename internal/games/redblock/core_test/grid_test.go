package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/redblock/internal/games/redblock/core"
)

func TestReachGridDimensions(t *testing.T) {
	g := core.NewReachGrid(1200, 1000, 40, nil)
	assert.Equal(t, 30, g.Cols)
	assert.Equal(t, 25, g.Rows)
	assert.Equal(t, core.Cell{Col: 3, Row: 3}, g.CellAt(core.Vec{X: 127.5, Y: 130.5}))
}

func TestPathLengthOpenGrid(t *testing.T) {
	steps, ok := core.PathLength(400, 400, 40, nil, core.Vec{X: 20, Y: 20}, core.Vec{X: 380, Y: 20})
	require.True(t, ok)
	assert.Equal(t, 9, steps)

	steps, ok = core.PathLength(400, 400, 40, nil, core.Vec{X: 20, Y: 20}, core.Vec{X: 380, Y: 380})
	require.True(t, ok)
	assert.Equal(t, 18, steps)

	steps, ok = core.PathLength(400, 400, 40, nil, core.Vec{X: 5, Y: 5}, core.Vec{X: 39, Y: 39})
	require.True(t, ok, "same cell")
	assert.Equal(t, 0, steps)
}

func TestPathLengthDetour(t *testing.T) {
	// A wall down column 5, open only at the bottom row.
	wall := []core.Rect{core.R(200, 0, 40, 360)}
	steps, ok := core.PathLength(400, 400, 40, wall, core.Vec{X: 180, Y: 20}, core.Vec{X: 260, Y: 20})
	require.True(t, ok)
	assert.Equal(t, 20, steps)
}

func TestPathLengthEnclosedRing(t *testing.T) {
	// Ring of blocked cells around cell (5,5).
	ring := []core.Rect{
		core.R(160, 160, 120, 40), // row 4
		core.R(160, 240, 120, 40), // row 6
		core.R(160, 200, 40, 40),  // (4,5)
		core.R(240, 200, 40, 40),  // (6,5)
	}
	inside := core.Vec{X: 220, Y: 220}
	outside := core.Vec{X: 20, Y: 20}

	_, ok := core.PathLength(400, 400, 40, ring, outside, inside)
	assert.False(t, ok)
	_, ok = core.PathLength(400, 400, 40, ring, inside, outside)
	assert.False(t, ok)
}

func TestPathLengthThinObstacleLeaks(t *testing.T) {
	// A 10-unit wall between cell centres blocks nothing on the grid.
	wall := []core.Rect{core.R(225, 0, 10, 400)}
	steps, ok := core.PathLength(400, 400, 40, wall, core.Vec{X: 180, Y: 20}, core.Vec{X: 260, Y: 20})
	require.True(t, ok)
	assert.Equal(t, 2, steps)
}

func TestPathLengthSymmetric(t *testing.T) {
	p := core.DefaultParams()
	rng := core.NewRNG(2024)

	for i := range 5 {
		layout, err := core.GenerateLayout(p, rng)
		require.NoError(t, err)
		grid := core.NewReachGrid(p.ArenaW, p.ArenaH, p.CellSize, layout.Blockers(p))

		for range 20 {
			a := core.Vec{X: rng.Float() * p.ArenaW, Y: rng.Float() * p.ArenaH}
			b := core.Vec{X: rng.Float() * p.ArenaW, Y: rng.Float() * p.ArenaH}
			ab, okAB := grid.PathLength(a, b)
			ba, okBA := grid.PathLength(b, a)
			assert.Equal(t, okAB, okBA, "layout %d: reachability %v -> %v", i, a, b)
			assert.Equal(t, ab, ba, "layout %d: distance %v -> %v", i, a, b)
		}
	}
}

func TestPathLengthBlockedEndpointIsSymmetric(t *testing.T) {
	// The start cell's centre is covered; it is still a valid endpoint.
	blockers := []core.Rect{core.R(0, 0, 40, 40)}
	a := core.Vec{X: 20, Y: 20}
	b := core.Vec{X: 140, Y: 20}

	ab, ok := core.PathLength(400, 400, 40, blockers, a, b)
	require.True(t, ok)
	ba, ok := core.PathLength(400, 400, 40, blockers, b, a)
	require.True(t, ok)
	assert.Equal(t, 3, ab)
	assert.Equal(t, ab, ba)
}

func TestPathLengthOffGrid(t *testing.T) {
	_, ok := core.PathLength(400, 400, 40, nil, core.Vec{X: 20, Y: 20}, core.Vec{X: 500, Y: 20})
	assert.False(t, ok)
}
