// Package redblock implements Red Block Rescue for the terminal platform.
// The player pushes an autonomous red block onto a switch, which opens the
// caged target zone and starts a countdown; the block must then reach the
// target before time runs out or a hazard touches it.
package redblock

import (
	"fmt"

	"github.com/vovakirdan/redblock/internal/config"
	platformcore "github.com/vovakirdan/redblock/internal/core"
	"github.com/vovakirdan/redblock/internal/games/redblock/core"
	"github.com/vovakirdan/redblock/internal/games/redblock/levels"
)

// configPath stores the custom config path set via CLI
var configPath string

// levelPath stores a level file to replay instead of generating levels
var levelPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLevelPath makes every round replay the level stored at path.
// An empty path restores random generation.
func SetLevelPath(path string) {
	levelPath = path
}

// Game adapts the simulation to the platform: it loads configuration,
// turns ticks into a millisecond clock, maps actions to movement and
// scores finished rounds.
type Game struct {
	runtime  platformcore.RuntimeConfig
	cfg      config.RedBlockConfig
	params   core.Params
	gen      *core.Generator // nil when replaying a level file
	world    *core.World
	levelTag string

	tick   int64 // Unpaused ticks since Reset
	paused bool
	err    error // Fatal setup or regeneration failure

	score      int
	summary    *platformcore.RunSummary
	loseReason string
}

// New creates a new Red Block Rescue game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "redblock"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Red Block Rescue"
}

// Reset loads configuration and builds the first level. The game waits on
// the instructions screen until confirmed.
func (g *Game) Reset(runtime platformcore.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = platformcore.DefaultConfig().TickRate
	}
	g.runtime = runtime
	g.tick = 0
	g.paused = false
	g.err = nil
	g.world = nil
	g.clearRound()

	cfg, err := config.LoadRedBlock(configPath)
	if err != nil {
		logger.Warn("config load failed, using defaults", "err", err)
		cfg = config.DefaultRedBlockConfig()
	}
	g.cfg = cfg
	g.params = ParamsFromConfig(cfg)

	var source core.LevelSource
	g.gen = nil
	if levelPath != "" {
		f, err := levels.LoadFile(levelPath)
		if err != nil {
			g.fail(err)
			return
		}
		fixed, err := f.Source(g.params)
		if err != nil {
			g.fail(fmt.Errorf("level %s: %w", levelPath, err))
			return
		}
		source = fixed
		g.levelTag = f.Name
	} else {
		g.gen = &core.Generator{}
		source = g.gen
		g.levelTag = ""
	}

	world, err := core.NewWorld(g.params, source, uint64(runtime.Seed)) //#nosec G115 -- seed bits
	if err != nil {
		g.fail(err)
		return
	}
	g.world = world
	g.logLevel()
}

func (g *Game) fail(err error) {
	g.err = err
	logger.Error("level setup failed", "err", err)
}

func (g *Game) clearRound() {
	g.score = 0
	g.summary = nil
	g.loseReason = ""
}

func (g *Game) logLevel() {
	lvl := g.world.Level()
	if g.gen == nil {
		logger.Debug("level loaded", "name", g.levelTag, "path_length", lvl.PathLength, "obstacles", len(lvl.Obstacles))
		return
	}
	r := g.gen.Report
	logger.Debug("level generated",
		"path_length", lvl.PathLength,
		"candidates", len(r.PathLengths),
		"attempts", r.Attempts,
		"obstacles", len(lvl.Obstacles),
	)
}

// nowMs derives the simulation clock from the tick counter, so paused
// ticks never advance the countdown or the spawn schedule.
func (g *Game) nowMs() int64 {
	return g.tick * 1000 / int64(g.runtime.TickRate)
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	if g.world == nil || g.err != nil {
		return platformcore.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(platformcore.ActionPause) && g.world.State() == core.StatePlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return platformcore.StepResult{State: g.State()}
	}

	g.tick++

	keys := core.Digital{
		Left:  in.Has(platformcore.ActionLeft),
		Right: in.Has(platformcore.ActionRight),
		Up:    in.Has(platformcore.ActionUp),
		Down:  in.Has(platformcore.ActionDown),
	}
	move := core.MoveVector(in.StickX, in.StickY, g.cfg.Input.Deadzone, keys, g.params.PlayerSpeed)

	prev := g.world.State()
	if err := g.world.Step(core.Input{Move: move, Confirm: in.Has(platformcore.ActionConfirm)}, g.nowMs()); err != nil {
		g.fail(err)
		return platformcore.StepResult{State: g.State()}
	}
	cur := g.world.State()

	result := platformcore.StepResult{}
	switch {
	case prev.Terminal() && !cur.Terminal():
		g.clearRound()
		g.logLevel()
	case prev == core.StatePlaying && cur.Terminal():
		result.Finished = g.finish()
	}
	result.State = g.State()
	return result
}

// finish scores the round that just ended.
func (g *Game) finish() *platformcore.RunSummary {
	snap := g.world.Snapshot()

	s := &platformcore.RunSummary{
		Outcome:    platformcore.OutcomeLose,
		Seed:       g.runtime.Seed,
		PathLength: snap.PathLength,
		Hazards:    len(snap.Hazards),
	}
	if snap.CountdownActive {
		s.ElapsedMs = snap.NowMs - snap.ActivatedAtMs
	}

	if snap.State == core.StateWin {
		s.Outcome = platformcore.OutcomeWin
		s.Score = g.cfg.Scoring.WinBonus + int(snap.RemainingSeconds())*g.cfg.Scoring.PerSecond
	} else if snap.CountdownActive && s.ElapsedMs > g.params.CountdownMs {
		g.loseReason = "Time ran out"
	} else {
		g.loseReason = "A hazard hit the red block"
	}

	g.score = s.Score
	g.summary = s
	logger.Info("round finished",
		"outcome", s.Outcome,
		"score", s.Score,
		"path_length", s.PathLength,
		"hazards", s.Hazards,
		"elapsed_ms", s.ElapsedMs,
	)
	return s
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	st := platformcore.GameState{
		Score:  g.score,
		Paused: g.paused,
	}
	if g.err != nil {
		st.GameOver = true
		return st
	}
	if g.world != nil {
		st.GameOver = g.world.State().Terminal()
		st.Won = g.world.State() == core.StateWin
	}
	return st
}

// Summary returns the last finished round, or nil while a round is running.
func (g *Game) Summary() *platformcore.RunSummary {
	if g.summary == nil {
		return nil
	}
	s := *g.summary
	return &s
}

// Snapshot returns the current world state; ok is false when no level
// could be built.
func (g *Game) Snapshot() (core.Snapshot, bool) {
	if g.world == nil {
		return core.Snapshot{}, false
	}
	return g.world.Snapshot(), true
}

// Err returns the error that stopped the game, if any.
func (g *Game) Err() error {
	return g.err
}
