package core

import "math"

// Snapshot is a read-only copy of the world after a tick. Renderers draw
// from it; tests use it to set up and compare worlds.
type Snapshot struct {
	State      GameState
	Obstacles  []Rect
	Target     Rect
	Barriers   []Rect // Empty once the switch has fired
	Switch     Rect
	Player     Rect
	Agent      Rect
	AgentVel   Vec
	Facing     Facing
	Hazards    []Hazard
	PathLength int

	SwitchTriggered  bool
	BarriersDisabled bool
	ActivatedAtMs    int64
	NextSpawnAtMs    int64
	NowMs            int64

	// Countdown
	RemainingMs     int64
	CountdownActive bool
}

// Snapshot copies the current state.
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{
		State:            w.state,
		Obstacles:        append([]Rect(nil), w.level.Obstacles...),
		Target:           w.level.Target,
		Switch:           w.switchRect,
		Player:           w.player,
		Agent:            w.agent,
		AgentVel:         w.agentVel,
		Facing:           FacingFor(w.agentVel.X),
		Hazards:          append([]Hazard(nil), w.hazards...),
		PathLength:       w.level.PathLength,
		SwitchTriggered:  w.switchTriggered,
		BarriersDisabled: w.barriersDisabled,
		ActivatedAtMs:    w.activatedAtMs,
		NextSpawnAtMs:    w.nextSpawnAtMs,
		NowMs:            w.nowMs,
	}
	if !w.barriersDisabled {
		barriers := w.params.CellBarriers(w.level.Target)
		snap.Barriers = barriers[:]
	}
	snap.RemainingMs, snap.CountdownActive = w.RemainingMs()
	return snap
}

// RemainingSeconds returns the whole seconds left on the countdown.
func (s Snapshot) RemainingSeconds() int64 {
	return s.RemainingMs / 1000
}

// Restore builds a world from a snapshot. Barriers, Facing and the
// countdown fields are derived and ignored. Later resets draw levels
// from source (random generation when nil).
func Restore(p Params, source LevelSource, seed uint64, s Snapshot) *World {
	if source == nil {
		source = &Generator{}
	}
	obstacles := append([]Rect(nil), s.Obstacles...)
	return &World{
		params: p,
		source: source,
		rng:    NewRNG(seed),
		state:  s.State,
		level: Level{
			Layout:     Layout{Obstacles: obstacles, Target: s.Target},
			PathLength: s.PathLength,
		},
		obstacles:        NewBlockerIndex(obstacles),
		switchRect:       s.Switch,
		player:           s.Player,
		agent:            s.Agent,
		agentVel:         s.AgentVel,
		hazards:          append([]Hazard(nil), s.Hazards...),
		switchTriggered:  s.SwitchTriggered,
		barriersDisabled: s.BarriersDisabled,
		activatedAtMs:    s.ActivatedAtMs,
		nextSpawnAtMs:    s.NextSpawnAtMs,
		nowMs:            s.NowMs,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (s Snapshot) Hash() uint64 {
	h := uint64(s.State) //#nosec G115 -- hash computation
	mix := func(f float64) {
		h = h*31 + math.Float64bits(f)
	}
	rect := func(r Rect) {
		mix(r.X)
		mix(r.Y)
		mix(r.W)
		mix(r.H)
	}

	for _, o := range s.Obstacles {
		rect(o)
	}
	rect(s.Target)
	rect(s.Switch)
	rect(s.Player)
	rect(s.Agent)
	mix(s.AgentVel.X)
	mix(s.AgentVel.Y)
	for _, hz := range s.Hazards {
		rect(hz.Rect)
		mix(hz.Vel.X)
		mix(hz.Vel.Y)
	}
	if s.BarriersDisabled {
		h = h*31 + 1
	}
	h = h*31 + uint64(s.ActivatedAtMs) //#nosec G115 -- hash computation
	h = h*31 + uint64(s.NextSpawnAtMs) //#nosec G115 -- hash computation
	return h
}
