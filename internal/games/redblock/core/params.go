package core

// Params holds every tunable of the simulation. It is built once and passed
// by value; nothing mutates it during play.
type Params struct {
	ArenaW, ArenaH float64

	// Level generation
	CellSize          int     // Reachability grid cell size
	CandidateAttempts int     // Independent candidates per level
	LayoutAttempts    int     // Layout retries inside one candidate
	ObstacleAttempts  int     // Obstacle placement tries per layout
	TargetAttempts    int     // Target placement tries per layout
	PlacementAttempts int     // Tries for the player block and the switch
	MinObstacles      int     // Inclusive obstacle count range
	MaxObstacles      int     //
	ObstacleThickness float64 // Short side of every obstacle
	ObstacleMinLength float64 // Long side range
	ObstacleMaxLength float64 //
	StartClearance    float64 // Total growth of the agent box kept free of obstacles
	TargetSize        float64
	TargetMargin      float64 // Distance the target keeps from the arena edges
	BarrierPadding    float64
	BarrierThickness  float64

	// Agent
	AgentStart       Vec
	AgentW, AgentH   float64
	AgentVelocity    Vec
	PlayerSize       float64
	PlayerSpeed      float64 // Units per tick at full input
	SwitchSize       float64
	CountdownMs      int64
	HazardDiameter   float64
	HazardSpeed      float64
	InitialHazards   int
	SpawnIntervalMs  int64
	MinSpawnDistance float64 // From the agent centre to a new hazard centre
	SpawnAttempts    int
}

// DefaultParams returns the stock tuning.
func DefaultParams() Params {
	return Params{
		ArenaW:            1200,
		ArenaH:            1000,
		CellSize:          40,
		CandidateAttempts: 10,
		LayoutAttempts:    30,
		ObstacleAttempts:  5000,
		TargetAttempts:    300,
		PlacementAttempts: 300,
		MinObstacles:      20,
		MaxObstacles:      35,
		ObstacleThickness: 30,
		ObstacleMinLength: 80,
		ObstacleMaxLength: 250,
		StartClearance:    10,
		TargetSize:        50,
		TargetMargin:      20,
		BarrierPadding:    10,
		BarrierThickness:  10,
		AgentStart:        Vec{X: 100, Y: 100},
		AgentW:            55,
		AgentH:            61,
		AgentVelocity:     Vec{X: 1.7, Y: 1.7},
		PlayerSize:        30,
		PlayerSpeed:       4,
		SwitchSize:        30,
		CountdownMs:       60000,
		HazardDiameter:    40,
		HazardSpeed:       1.7,
		InitialHazards:    2,
		SpawnIntervalMs:   5000,
		MinSpawnDistance:  150,
		SpawnAttempts:     300,
	}
}

// AgentStartRect returns the agent's box at its start position.
func (p Params) AgentStartRect() Rect {
	return R(p.AgentStart.X, p.AgentStart.Y, p.AgentW, p.AgentH)
}

// CellBarriers returns the four rectangles caging target: left, right, top
// and bottom. They are derived on demand and never stored.
func (p Params) CellBarriers(target Rect) [4]Rect {
	pad, thick := p.BarrierPadding, p.BarrierThickness
	return [4]Rect{
		R(target.X-pad-thick, target.Y-pad, thick, target.H+2*pad),
		R(target.Right()+pad, target.Y-pad, thick, target.H+2*pad),
		R(target.X-pad, target.Y-pad-thick, target.W+2*pad, thick),
		R(target.X-pad, target.Bottom()+pad, target.W+2*pad, thick),
	}
}
