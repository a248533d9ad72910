package core

import "math"

// World owns all episode state. It is driven one tick at a time by Step
// with a monotonic millisecond clock supplied by the caller.
type World struct {
	params Params
	source LevelSource
	rng    *SimpleRNG

	state      GameState
	level      Level
	obstacles  *BlockerIndex
	switchRect Rect
	player     Rect
	agent      Rect
	agentVel   Vec
	hazards    []Hazard

	switchTriggered  bool
	barriersDisabled bool
	activatedAtMs    int64
	nextSpawnAtMs    int64
	nowMs            int64
}

// NewWorld generates the first level from source and waits in the
// instructions state. A nil source means random generation.
func NewWorld(p Params, source LevelSource, seed uint64) (*World, error) {
	if source == nil {
		source = &Generator{}
	}
	w := &World{
		params: p,
		source: source,
		rng:    NewRNG(seed),
	}
	if err := w.Reset(StateInstructions); err != nil {
		return nil, err
	}
	return w, nil
}

// Reset discards the episode and builds a new one from a fresh level.
// On error the world is left unchanged.
func (w *World) Reset(start GameState) error {
	lvl, err := w.source.NextLevel(w.params, w.rng)
	if err != nil {
		return err
	}
	sw, err := PlaceSwitch(w.params, lvl, w.rng)
	if err != nil {
		return err
	}
	player, err := PlacePlayer(w.params, lvl, w.rng)
	if err != nil {
		return err
	}

	w.state = start
	w.level = lvl
	w.obstacles = NewBlockerIndex(lvl.Obstacles)
	w.switchRect = sw
	w.player = player
	w.agent = w.params.AgentStartRect()
	w.agentVel = w.params.AgentVelocity
	w.hazards = nil
	w.switchTriggered = false
	w.barriersDisabled = false
	w.activatedAtMs = 0
	w.nextSpawnAtMs = 0
	return nil
}

// Params returns the tuning the world runs with.
func (w *World) Params() Params {
	return w.params
}

// State returns the current phase.
func (w *World) State() GameState {
	return w.state
}

// Level returns the current layout.
func (w *World) Level() Level {
	return w.level
}

// Step advances the world by one tick. Confirm moves the instructions
// screen into play and restarts a finished episode with a new level;
// the only error is a failed regeneration.
func (w *World) Step(in Input, nowMs int64) error {
	w.nowMs = nowMs

	switch w.state {
	case StateInstructions:
		if in.Confirm {
			w.state = StatePlaying
		}
		return nil
	case StateWin, StateLose:
		if in.Confirm {
			return w.Reset(StatePlaying)
		}
		return nil
	}

	w.tick(in.Move, nowMs)
	return nil
}

// tick runs one playing update. Once the state turns terminal the rest of
// the tick is skipped, so an earlier transition always wins.
func (w *World) tick(move Vec, now int64) {
	p := w.params

	w.movePlayer(move)

	if !w.switchTriggered && RectsOverlap(w.agent, w.switchRect) {
		w.switchTriggered = true
		w.barriersDisabled = true
		w.activatedAtMs = now
		w.nextSpawnAtMs = now + p.SpawnIntervalMs
		for range p.InitialHazards {
			w.spawnHazard()
		}
	}

	if RectsOverlap(w.agent, w.level.Target) {
		w.state = StateWin
		return
	}

	if w.barriersDisabled && now-w.activatedAtMs > p.CountdownMs {
		w.state = StateLose
		return
	}

	if w.barriersDisabled && now >= w.nextSpawnAtMs {
		w.spawnHazard()
		w.nextSpawnAtMs = now + p.SpawnIntervalMs
	}

	blockers := w.activeBlockers()

	hit := false
	for i := range w.hazards {
		h := &w.hazards[i]
		h.Rect, h.Vel = bounce(h.Rect, h.Vel, blockers)
		h.Rect, h.Vel = clampToArena(h.Rect, h.Vel, p.ArenaW, p.ArenaH)
		if CircleRectOverlap(h.Rect.Center(), h.Radius(), w.agent) {
			hit = true
		}
	}
	if hit {
		w.state = StateLose
		return
	}

	w.agent, w.agentVel = bounce(w.agent, w.agentVel, blockers)

	if RectsOverlap(w.agent, w.player) {
		w.deflectAgent(blockers)
	}

	w.agent = resolvePenetration(w.agent, blockers)
	w.agent, w.agentVel = clampToArena(w.agent, w.agentVel, p.ArenaW, p.ArenaH)
}

// movePlayer applies the input per axis against the obstacles only; the
// target's barriers never stop the player block.
func (w *World) movePlayer(move Vec) {
	p := w.params

	if next := w.player.Translate(move.X, 0); !w.obstacles.Any(next) {
		w.player = next
	}
	if next := w.player.Translate(0, move.Y); !w.obstacles.Any(next) {
		w.player = next
	}
	w.player.X = clampF(w.player.X, 0, p.ArenaW-w.player.W)
	w.player.Y = clampF(w.player.Y, 0, p.ArenaH-w.player.H)
}

// activeBlockers returns the obstacles plus the barriers while they stand.
// Barriers are derived from the target on each call.
func (w *World) activeBlockers() Blockers {
	b := Blockers{Obstacles: w.obstacles}
	if !w.barriersDisabled {
		barriers := w.params.CellBarriers(w.level.Target)
		b.Extra = barriers[:]
	}
	return b
}

// bounce moves r by v one axis at a time. A move that would overlap a
// blocker is dropped and that axis of the velocity is reversed.
func bounce(r Rect, v Vec, blockers Blockers) (Rect, Vec) {
	if next := r.Translate(v.X, 0); blockers.Any(next) {
		v.X = -v.X
	} else {
		r = next
	}
	if next := r.Translate(0, v.Y); blockers.Any(next) {
		v.Y = -v.Y
	} else {
		r = next
	}
	return r, v
}

// clampToArena pulls r back inside the arena. Every clamped axis gets a
// velocity pointing inward, whatever its sign was before.
func clampToArena(r Rect, v Vec, arenaW, arenaH float64) (Rect, Vec) {
	if r.X < 0 {
		r.X = 0
		v.X = math.Abs(v.X)
	}
	if r.Right() > arenaW {
		r.X = arenaW - r.W
		v.X = -math.Abs(v.X)
	}
	if r.Y < 0 {
		r.Y = 0
		v.Y = math.Abs(v.Y)
	}
	if r.Bottom() > arenaH {
		r.Y = arenaH - r.H
		v.Y = -math.Abs(v.Y)
	}
	return r, v
}

// deflectAgent re-aims the agent away from the player block at its current
// speed and, when the spot is free, sets it flush against the player
// block on the axis where the two are furthest apart.
func (w *World) deflectAgent(blockers Blockers) {
	diff := w.agent.Center().Sub(w.player.Center())
	dist := math.Max(diff.Len(), 1)
	nx, ny := diff.X/dist, diff.Y/dist

	speed := w.agentVel.Len()
	w.agentVel = Vec{X: speed * nx, Y: speed * ny}

	candidate := w.agent
	if math.Abs(nx) >= math.Abs(ny) {
		if nx >= 0 {
			candidate.X = w.player.Right()
		} else {
			candidate.X = w.player.X - candidate.W
		}
	} else {
		if ny >= 0 {
			candidate.Y = w.player.Bottom()
		} else {
			candidate.Y = w.player.Y - candidate.H
		}
	}

	if !blockers.Any(candidate) {
		w.agent = candidate
	}
}

// spawnHazard adds one hazard at a free spot away from the agent. When no
// spot is found within the try budget the spawn is skipped.
func (w *World) spawnHazard() bool {
	p := w.params
	agentCenter := w.agent.Center()

	for range p.SpawnAttempts {
		r := randomBox(p, w.rng, p.HazardDiameter)
		if w.obstacles.Any(r) {
			continue
		}
		if r.Center().Sub(agentCenter).Len() < p.MinSpawnDistance {
			continue
		}
		vel := Vec{X: w.rng.Sign() * p.HazardSpeed, Y: w.rng.Sign() * p.HazardSpeed}
		w.hazards = append(w.hazards, Hazard{Rect: r, Vel: vel})
		return true
	}
	return false
}

// RemainingMs returns the countdown left at the last Step, floored at 0.
// ok is false before the switch is triggered.
func (w *World) RemainingMs() (ms int64, ok bool) {
	if !w.barriersDisabled {
		return 0, false
	}
	left := w.params.CountdownMs - (w.nowMs - w.activatedAtMs)
	if left < 0 {
		left = 0
	}
	return left, true
}
