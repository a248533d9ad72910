package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/redblock/internal/games/redblock/core"
)

func linearFirst(r core.Rect, rects []core.Rect) (core.Rect, bool) {
	for _, o := range rects {
		if core.RectsOverlap(r, o) {
			return o, true
		}
	}
	return core.Rect{}, false
}

func TestBlockerIndexMatchesLinearScan(t *testing.T) {
	p := core.DefaultParams()
	layout, err := core.GenerateLayout(p, core.NewRNG(21))
	require.NoError(t, err)

	idx := core.NewBlockerIndex(layout.Obstacles)
	require.Equal(t, len(layout.Obstacles), idx.Len())

	rng := core.NewRNG(99)
	for i := 0; i < 2000; i++ {
		probe := core.R(rng.Float()*p.ArenaW, rng.Float()*p.ArenaH, 5+rng.Float()*120, 5+rng.Float()*120)
		want, wantOK := linearFirst(probe, layout.Obstacles)
		got, gotOK := idx.First(probe)
		require.Equal(t, wantOK, gotOK, "query %v", probe)
		require.Equal(t, want, got, "query %v", probe)
		require.Equal(t, wantOK, idx.Any(probe))
	}
}

func TestBlockerIndexReturnsEarliestInListOrder(t *testing.T) {
	rects := []core.Rect{
		core.R(100, 100, 50, 50),
		core.R(0, 0, 40, 40),
		core.R(20, 20, 40, 40),
	}
	idx := core.NewBlockerIndex(rects)

	hit, ok := idx.First(core.R(30, 30, 5, 5))
	require.True(t, ok)
	assert.Equal(t, rects[1], hit)
}

func TestBlockerIndexEdgesDoNotTouch(t *testing.T) {
	idx := core.NewBlockerIndex([]core.Rect{core.R(100, 100, 50, 30)})

	assert.False(t, idx.Any(core.R(150, 100, 10, 10)), "touching right edge")
	assert.False(t, idx.Any(core.R(100, 130, 10, 10)), "touching bottom edge")
	assert.False(t, idx.Any(core.R(90, 90, 10, 10)), "touching corner")
	assert.True(t, idx.Any(core.R(149.5, 100, 10, 10)))
}

func TestBlockerIndexEmptyAndDegenerate(t *testing.T) {
	var nilIdx *core.BlockerIndex
	assert.False(t, nilIdx.Any(core.R(0, 0, 10, 10)))
	assert.Equal(t, 0, nilIdx.Len())

	assert.False(t, core.NewBlockerIndex(nil).Any(core.R(0, 0, 10, 10)))

	// A zero-width entry cannot go into the tree; answers must still match a scan.
	rects := []core.Rect{core.R(50, 0, 0, 100), core.R(0, 0, 10, 10)}
	idx := core.NewBlockerIndex(rects)
	hit, ok := idx.First(core.R(5, 5, 10, 10))
	require.True(t, ok)
	assert.Equal(t, rects[1], hit)
}

func TestBlockersCheckObstaclesBeforeExtras(t *testing.T) {
	obstacle := core.R(0, 0, 40, 40)
	barrier := core.R(10, 10, 40, 40)
	b := core.Blockers{
		Obstacles: core.NewBlockerIndex([]core.Rect{obstacle}),
		Extra:     []core.Rect{barrier},
	}

	hit, ok := b.First(core.R(20, 20, 5, 5))
	require.True(t, ok)
	assert.Equal(t, obstacle, hit)

	hit, ok = b.First(core.R(45, 45, 2, 2))
	require.True(t, ok)
	assert.Equal(t, barrier, hit)

	assert.False(t, b.Any(core.R(200, 200, 5, 5)))
	assert.False(t, core.Blockers{}.Any(core.R(0, 0, 5, 5)))
}
