package config

import (
	_ "embed"
)

//go:embed defaults/redblock.yaml
var defaultRedBlockYAML []byte

// DefaultRedBlockConfig returns the default Red Block Rescue configuration.
func DefaultRedBlockConfig() RedBlockConfig {
	return RedBlockConfig{
		Arena: ArenaConfig{
			Width:    1200,
			Height:   1000,
			CellSize: 40,
		},
		Level: LevelConfig{
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
		},
		Agent: AgentConfig{
			StartX:    100,
			StartY:    100,
			Width:     55,
			Height:    61,
			VelocityX: 1.7,
			VelocityY: 1.7,
		},
		Player: PlayerConfig{
			Size:  30,
			Speed: 4,
		},
		Switch: SwitchConfig{
			Size:        30,
			CountdownMs: 60000,
		},
		Hazards: HazardConfig{
			Diameter:         40,
			Speed:            1.7,
			Initial:          2,
			SpawnIntervalMs:  5000,
			MinSpawnDistance: 150,
			SpawnAttempts:    300,
		},
		Input: InputConfig{
			Deadzone: 0.1,
		},
		Scoring: ScoringConfig{
			WinBonus:  100,
			PerSecond: 10,
		},
	}
}
