package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/redblock/internal/games/redblock/core"
)

func TestCellBarriersGeometry(t *testing.T) {
	p := core.DefaultParams()
	b := p.CellBarriers(core.R(100, 100, 50, 50))

	assert.Equal(t, core.R(80, 90, 10, 70), b[0], "left")
	assert.Equal(t, core.R(160, 90, 10, 70), b[1], "right")
	assert.Equal(t, core.R(90, 80, 70, 10), b[2], "top")
	assert.Equal(t, core.R(90, 160, 70, 10), b[3], "bottom")
}

func TestGenerateLayoutInvariants(t *testing.T) {
	p := core.DefaultParams()
	clearance := p.AgentStartRect().Inflate(p.StartClearance, p.StartClearance)

	for seed := uint64(1); seed <= 20; seed++ {
		layout, err := core.GenerateLayout(p, core.NewRNG(seed))
		require.NoError(t, err, "seed %d", seed)

		obs := layout.Obstacles
		assert.GreaterOrEqual(t, len(obs), p.MinObstacles)
		assert.LessOrEqual(t, len(obs), p.MaxObstacles)

		for i, a := range obs {
			assert.GreaterOrEqual(t, a.X, 0.0)
			assert.GreaterOrEqual(t, a.Y, 0.0)
			assert.LessOrEqual(t, a.Right(), p.ArenaW)
			assert.LessOrEqual(t, a.Bottom(), p.ArenaH)
			assert.True(t, a.W == p.ObstacleThickness || a.H == p.ObstacleThickness, "seed %d obstacle %d: %v", seed, i, a)
			assert.False(t, core.RectsOverlap(a, clearance), "seed %d obstacle %d hits start clearance", seed, i)
			for j := i + 1; j < len(obs); j++ {
				assert.False(t, core.RectsOverlap(a, obs[j]), "seed %d obstacles %d and %d overlap", seed, i, j)
			}
		}

		target := layout.Target
		assert.Equal(t, p.TargetSize, target.W)
		assert.False(t, core.OverlapsAny(target, obs), "seed %d target hits obstacle", seed)
		barriers := p.CellBarriers(target)
		assert.False(t, core.OverlapsAny(target, barriers[:]), "seed %d target hits own barriers", seed)
		assert.GreaterOrEqual(t, target.X, p.TargetMargin)
		assert.LessOrEqual(t, target.Right(), p.ArenaW-p.TargetMargin)
	}
}

func TestGenerateLevelSelectsShortestCandidate(t *testing.T) {
	p := core.DefaultParams()

	for seed := uint64(1); seed <= 5; seed++ {
		lvl, report, err := core.GenerateLevel(p, core.NewRNG(seed))
		require.NoError(t, err, "seed %d", seed)

		require.NotEmpty(t, report.PathLengths)
		assert.LessOrEqual(t, len(report.PathLengths), report.Attempts)
		assert.Equal(t, p.CandidateAttempts, report.Attempts)
		assert.Equal(t, report.PathLengths[report.Selected], lvl.PathLength)
		for _, other := range report.PathLengths {
			assert.LessOrEqual(t, lvl.PathLength, other)
		}

		steps, ok := core.PathLength(p.ArenaW, p.ArenaH, p.CellSize, lvl.Blockers(p), p.AgentStartRect().Center(), lvl.Target.Center())
		require.True(t, ok)
		assert.Equal(t, lvl.PathLength, steps)
	}
}

func TestGenerateLevelDeterministic(t *testing.T) {
	p := core.DefaultParams()
	a, _, err := core.GenerateLevel(p, core.NewRNG(77))
	require.NoError(t, err)
	b, _, err := core.GenerateLevel(p, core.NewRNG(77))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerationExhausted(t *testing.T) {
	p := core.DefaultParams()
	p.MinObstacles = 400
	p.MaxObstacles = 400
	p.ObstacleAttempts = 50
	p.LayoutAttempts = 3
	p.CandidateAttempts = 2

	_, err := core.GenerateLayout(p, core.NewRNG(1))
	assert.ErrorIs(t, err, core.ErrGenerationExhausted)

	_, report, err := core.GenerateLevel(p, core.NewRNG(1))
	assert.ErrorIs(t, err, core.ErrNoCandidateReachable)
	assert.Equal(t, 2, report.Attempts)
	assert.Empty(t, report.PathLengths)
}

func TestPlaceSwitchAndPlayer(t *testing.T) {
	p := core.DefaultParams()
	rng := core.NewRNG(31)
	lvl, _, err := core.GenerateLevel(p, rng)
	require.NoError(t, err)
	blockers := lvl.Blockers(p)

	for range 10 {
		sw, err := core.PlaceSwitch(p, lvl, rng)
		require.NoError(t, err)
		assert.False(t, core.RectsOverlap(sw, lvl.Target))
		assert.False(t, core.OverlapsAny(sw, blockers))
		_, ok := core.PathLength(p.ArenaW, p.ArenaH, p.CellSize, blockers, p.AgentStartRect().Center(), sw.Center())
		assert.True(t, ok, "switch %v unreachable", sw)

		player, err := core.PlacePlayer(p, lvl, rng)
		require.NoError(t, err)
		assert.False(t, core.OverlapsAny(player, blockers))
		assert.Equal(t, p.PlayerSize, player.W)
	}
}

func TestPlacementCapIsFatal(t *testing.T) {
	p := core.DefaultParams()
	lvl := core.Level{Layout: core.Layout{Target: core.R(500, 500, 50, 50)}}

	p.SwitchSize = 2000 // Larger than the arena: always covers the target
	_, err := core.PlaceSwitch(p, lvl, core.NewRNG(1))
	assert.ErrorIs(t, err, core.ErrGenerationExhausted)

	p.PlayerSize = 2000
	_, err = core.PlacePlayer(p, lvl, core.NewRNG(1))
	assert.ErrorIs(t, err, core.ErrGenerationExhausted)
}

func TestFixedLevelReturnsCopy(t *testing.T) {
	src := core.FixedLevel{Level: core.Level{
		Layout:     core.Layout{Obstacles: []core.Rect{core.R(1, 2, 3, 4)}, Target: core.R(500, 500, 50, 50)},
		PathLength: 12,
	}}

	lvl, err := src.NextLevel(core.DefaultParams(), nil)
	require.NoError(t, err)
	lvl.Obstacles[0] = core.R(9, 9, 9, 9)

	again, err := src.NextLevel(core.DefaultParams(), nil)
	require.NoError(t, err)
	assert.Equal(t, core.R(1, 2, 3, 4), again.Obstacles[0])
	assert.Equal(t, 12, again.PathLength)
}
