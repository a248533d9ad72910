// Package config provides YAML-based configuration loading for Red Block
// Rescue.
package config

import "fmt"

// RedBlockConfig contains every tunable of the game.
type RedBlockConfig struct {
	Arena   ArenaConfig   `yaml:"arena"`
	Level   LevelConfig   `yaml:"level"`
	Agent   AgentConfig   `yaml:"agent"`
	Player  PlayerConfig  `yaml:"player"`
	Switch  SwitchConfig  `yaml:"switch"`
	Hazards HazardConfig  `yaml:"hazards"`
	Input   InputConfig   `yaml:"input"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// ArenaConfig defines the world size and the reachability grid.
type ArenaConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	CellSize int     `yaml:"cell_size"`
}

// LevelConfig defines the procedural level generator.
type LevelConfig struct {
	CandidateAttempts int     `yaml:"candidate_attempts"`
	LayoutAttempts    int     `yaml:"layout_attempts"`
	ObstacleAttempts  int     `yaml:"obstacle_attempts"`
	TargetAttempts    int     `yaml:"target_attempts"`
	PlacementAttempts int     `yaml:"placement_attempts"`
	MinObstacles      int     `yaml:"min_obstacles"`
	MaxObstacles      int     `yaml:"max_obstacles"`
	ObstacleThickness float64 `yaml:"obstacle_thickness"`
	ObstacleMinLength float64 `yaml:"obstacle_min_length"`
	ObstacleMaxLength float64 `yaml:"obstacle_max_length"`
	StartClearance    float64 `yaml:"start_clearance"`
	TargetSize        float64 `yaml:"target_size"`
	TargetMargin      float64 `yaml:"target_margin"`
	BarrierPadding    float64 `yaml:"barrier_padding"`
	BarrierThickness  float64 `yaml:"barrier_thickness"`
}

// AgentConfig defines the autonomous red block.
type AgentConfig struct {
	StartX    float64 `yaml:"start_x"`
	StartY    float64 `yaml:"start_y"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	VelocityX float64 `yaml:"velocity_x"`
	VelocityY float64 `yaml:"velocity_y"`
}

// PlayerConfig defines the user-controlled block.
type PlayerConfig struct {
	Size  float64 `yaml:"size"`
	Speed float64 `yaml:"speed"` // Units per tick
}

// SwitchConfig defines the switch and the countdown it starts.
type SwitchConfig struct {
	Size        float64 `yaml:"size"`
	CountdownMs int64   `yaml:"countdown_ms"`
}

// HazardConfig defines the bouncing hazards released by the switch.
type HazardConfig struct {
	Diameter         float64 `yaml:"diameter"`
	Speed            float64 `yaml:"speed"`
	Initial          int     `yaml:"initial"`
	SpawnIntervalMs  int64   `yaml:"spawn_interval_ms"`
	MinSpawnDistance float64 `yaml:"min_spawn_distance"`
	SpawnAttempts    int     `yaml:"spawn_attempts"`
}

// InputConfig defines analog input handling.
type InputConfig struct {
	Deadzone float64 `yaml:"deadzone"`
}

// ScoringConfig defines how a win is scored.
type ScoringConfig struct {
	WinBonus  int `yaml:"win_bonus"`
	PerSecond int `yaml:"per_second"` // Points per whole second left on the countdown
}

// Validate reports the first value that would make the game unplayable.
func (c RedBlockConfig) Validate() error {
	positive := []struct {
		name string
		val  float64
	}{
		{"arena.width", c.Arena.Width},
		{"arena.height", c.Arena.Height},
		{"arena.cell_size", float64(c.Arena.CellSize)},
		{"level.candidate_attempts", float64(c.Level.CandidateAttempts)},
		{"level.layout_attempts", float64(c.Level.LayoutAttempts)},
		{"level.obstacle_attempts", float64(c.Level.ObstacleAttempts)},
		{"level.target_attempts", float64(c.Level.TargetAttempts)},
		{"level.placement_attempts", float64(c.Level.PlacementAttempts)},
		{"level.obstacle_thickness", c.Level.ObstacleThickness},
		{"level.obstacle_min_length", c.Level.ObstacleMinLength},
		{"level.target_size", c.Level.TargetSize},
		{"agent.width", c.Agent.Width},
		{"agent.height", c.Agent.Height},
		{"player.size", c.Player.Size},
		{"player.speed", c.Player.Speed},
		{"switch.size", c.Switch.Size},
		{"switch.countdown_ms", float64(c.Switch.CountdownMs)},
		{"hazards.diameter", c.Hazards.Diameter},
		{"hazards.spawn_interval_ms", float64(c.Hazards.SpawnIntervalMs)},
		{"hazards.spawn_attempts", float64(c.Hazards.SpawnAttempts)},
	}
	for _, p := range positive {
		if p.val <= 0 {
			return fmt.Errorf("config: %s must be positive, got %v", p.name, p.val)
		}
	}

	notNegative := []struct {
		name string
		val  float64
	}{
		{"level.min_obstacles", float64(c.Level.MinObstacles)},
		{"level.start_clearance", c.Level.StartClearance},
		{"level.target_margin", c.Level.TargetMargin},
		{"level.barrier_padding", c.Level.BarrierPadding},
		{"level.barrier_thickness", c.Level.BarrierThickness},
		{"hazards.speed", c.Hazards.Speed},
		{"hazards.initial", float64(c.Hazards.Initial)},
		{"hazards.min_spawn_distance", c.Hazards.MinSpawnDistance},
		{"scoring.win_bonus", float64(c.Scoring.WinBonus)},
		{"scoring.per_second", float64(c.Scoring.PerSecond)},
	}
	for _, p := range notNegative {
		if p.val < 0 {
			return fmt.Errorf("config: %s must not be negative, got %v", p.name, p.val)
		}
	}

	if c.Level.MinObstacles > c.Level.MaxObstacles {
		return fmt.Errorf("config: level.min_obstacles (%d) exceeds level.max_obstacles (%d)",
			c.Level.MinObstacles, c.Level.MaxObstacles)
	}
	if c.Level.ObstacleMinLength > c.Level.ObstacleMaxLength {
		return fmt.Errorf("config: level.obstacle_min_length (%v) exceeds level.obstacle_max_length (%v)",
			c.Level.ObstacleMinLength, c.Level.ObstacleMaxLength)
	}
	if c.Level.ObstacleMaxLength > c.Arena.Width || c.Level.ObstacleMaxLength > c.Arena.Height {
		return fmt.Errorf("config: level.obstacle_max_length (%v) does not fit the arena", c.Level.ObstacleMaxLength)
	}
	if c.Level.TargetSize+2*c.Level.TargetMargin > c.Arena.Width ||
		c.Level.TargetSize+2*c.Level.TargetMargin > c.Arena.Height {
		return fmt.Errorf("config: target with margin does not fit the arena")
	}
	if c.Agent.StartX < 0 || c.Agent.StartY < 0 ||
		c.Agent.StartX+c.Agent.Width > c.Arena.Width ||
		c.Agent.StartY+c.Agent.Height > c.Arena.Height {
		return fmt.Errorf("config: agent start box (%v, %v) lies outside the arena", c.Agent.StartX, c.Agent.StartY)
	}
	if c.Agent.VelocityX == 0 && c.Agent.VelocityY == 0 {
		return fmt.Errorf("config: agent velocity must not be zero")
	}

	boxes := []struct {
		name string
		size float64
	}{
		{"player.size", c.Player.Size},
		{"switch.size", c.Switch.Size},
		{"hazards.diameter", c.Hazards.Diameter},
	}
	for _, b := range boxes {
		if b.size >= c.Arena.Width || b.size >= c.Arena.Height {
			return fmt.Errorf("config: %s (%v) does not fit the arena", b.name, b.size)
		}
	}

	if c.Input.Deadzone < 0 || c.Input.Deadzone >= 1 {
		return fmt.Errorf("config: input.deadzone must be in [0, 1), got %v", c.Input.Deadzone)
	}
	return nil
}
