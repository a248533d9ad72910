package redblock

import (
	"github.com/vovakirdan/redblock/internal/config"
	"github.com/vovakirdan/redblock/internal/games/redblock/core"
)

// ParamsFromConfig converts a validated configuration into simulation
// parameters.
func ParamsFromConfig(cfg config.RedBlockConfig) core.Params {
	return core.Params{
		ArenaW:            cfg.Arena.Width,
		ArenaH:            cfg.Arena.Height,
		CellSize:          cfg.Arena.CellSize,
		CandidateAttempts: cfg.Level.CandidateAttempts,
		LayoutAttempts:    cfg.Level.LayoutAttempts,
		ObstacleAttempts:  cfg.Level.ObstacleAttempts,
		TargetAttempts:    cfg.Level.TargetAttempts,
		PlacementAttempts: cfg.Level.PlacementAttempts,
		MinObstacles:      cfg.Level.MinObstacles,
		MaxObstacles:      cfg.Level.MaxObstacles,
		ObstacleThickness: cfg.Level.ObstacleThickness,
		ObstacleMinLength: cfg.Level.ObstacleMinLength,
		ObstacleMaxLength: cfg.Level.ObstacleMaxLength,
		StartClearance:    cfg.Level.StartClearance,
		TargetSize:        cfg.Level.TargetSize,
		TargetMargin:      cfg.Level.TargetMargin,
		BarrierPadding:    cfg.Level.BarrierPadding,
		BarrierThickness:  cfg.Level.BarrierThickness,
		AgentStart:        core.Vec{X: cfg.Agent.StartX, Y: cfg.Agent.StartY},
		AgentW:            cfg.Agent.Width,
		AgentH:            cfg.Agent.Height,
		AgentVelocity:     core.Vec{X: cfg.Agent.VelocityX, Y: cfg.Agent.VelocityY},
		PlayerSize:        cfg.Player.Size,
		PlayerSpeed:       cfg.Player.Speed,
		SwitchSize:        cfg.Switch.Size,
		CountdownMs:       cfg.Switch.CountdownMs,
		HazardDiameter:    cfg.Hazards.Diameter,
		HazardSpeed:       cfg.Hazards.Speed,
		InitialHazards:    cfg.Hazards.Initial,
		SpawnIntervalMs:   cfg.Hazards.SpawnIntervalMs,
		MinSpawnDistance:  cfg.Hazards.MinSpawnDistance,
		SpawnAttempts:     cfg.Hazards.SpawnAttempts,
	}
}
