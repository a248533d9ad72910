package core

import (
	"errors"
	"fmt"
)

// Generation errors. Both mean the retry budgets do not suit the arena
// and obstacle configuration; callers should abort rather than retry.
var (
	ErrGenerationExhausted  = errors.New("generation exhausted")
	ErrNoCandidateReachable = errors.New("no reachable candidate")
)

// Layout is the static geometry of a level: obstacles and the target zone.
type Layout struct {
	Obstacles []Rect
	Target    Rect
}

// Blockers returns the obstacles followed by the target's cell barriers.
func (l Layout) Blockers(p Params) []Rect {
	barriers := p.CellBarriers(l.Target)
	out := make([]Rect, 0, len(l.Obstacles)+len(barriers))
	out = append(out, l.Obstacles...)
	return append(out, barriers[:]...)
}

// Level is a reachability-validated layout.
type Level struct {
	Layout
	PathLength int // Grid steps from the agent start to the target
}

// CandidateReport describes one GenerateLevel run.
type CandidateReport struct {
	Attempts    int   // Candidates tried
	PathLengths []int // Path length of every validated candidate, in order
	Selected    int   // Index into PathLengths of the chosen candidate
}

// LevelSource produces the layout for a new episode.
type LevelSource interface {
	NextLevel(p Params, rng *SimpleRNG) (Level, error)
}

// Generator is the random LevelSource. Report holds the most recent run.
type Generator struct {
	Report CandidateReport
}

// NextLevel generates a fresh level.
func (g *Generator) NextLevel(p Params, rng *SimpleRNG) (Level, error) {
	lvl, report, err := GenerateLevel(p, rng)
	g.Report = report
	return lvl, err
}

// FixedLevel replays the same layout on every episode.
type FixedLevel struct {
	Level Level
}

// NextLevel returns the stored level.
func (f FixedLevel) NextLevel(Params, *SimpleRNG) (Level, error) {
	lvl := f.Level
	lvl.Obstacles = append([]Rect(nil), f.Level.Obstacles...)
	return lvl, nil
}

// GenerateLayout places obstacles and a target zone. Obstacles keep clear
// of the agent's start box and of each other; the target avoids the
// obstacles and its own barriers.
func GenerateLayout(p Params, rng *SimpleRNG) (Layout, error) {
	clearance := p.AgentStartRect().Inflate(p.StartClearance, p.StartClearance)

	for range p.LayoutAttempts {
		obstacles, ok := placeObstacles(p, rng, clearance)
		if !ok {
			continue
		}
		target, ok := placeTarget(p, rng, obstacles)
		if !ok {
			continue
		}
		return Layout{Obstacles: obstacles, Target: target}, nil
	}
	return Layout{}, fmt.Errorf("%w: no layout after %d attempts", ErrGenerationExhausted, p.LayoutAttempts)
}

func placeObstacles(p Params, rng *SimpleRNG, clearance Rect) ([]Rect, bool) {
	count := rng.Between(p.MinObstacles, p.MaxObstacles)
	obstacles := make([]Rect, 0, count)

	for tries := 0; len(obstacles) < count; tries++ {
		if tries >= p.ObstacleAttempts {
			return nil, false
		}

		length := float64(rng.Between(int(p.ObstacleMinLength), int(p.ObstacleMaxLength)))
		w, h := length, p.ObstacleThickness
		if rng.Bool() {
			w, h = p.ObstacleThickness, length
		}
		x := float64(rng.Between(0, int(p.ArenaW-w)))
		y := float64(rng.Between(0, int(p.ArenaH-h)))
		candidate := R(x, y, w, h)

		if RectsOverlap(candidate, clearance) || OverlapsAny(candidate, obstacles) {
			continue
		}
		obstacles = append(obstacles, candidate)
	}
	return obstacles, true
}

func placeTarget(p Params, rng *SimpleRNG, obstacles []Rect) (Rect, bool) {
	minX, maxX := int(p.TargetMargin), int(p.ArenaW-p.TargetSize-p.TargetMargin)
	minY, maxY := int(p.TargetMargin), int(p.ArenaH-p.TargetSize-p.TargetMargin)

	for range p.TargetAttempts {
		target := R(float64(rng.Between(minX, maxX)), float64(rng.Between(minY, maxY)), p.TargetSize, p.TargetSize)
		barriers := p.CellBarriers(target)
		if OverlapsAny(target, obstacles) || OverlapsAny(target, barriers[:]) {
			continue
		}
		return target, true
	}
	return Rect{}, false
}

// GenerateLevel builds up to p.CandidateAttempts layouts, keeps those with
// a grid path from the agent start to the target (obstacles and barriers
// block), and returns the one with the shortest path. Ties keep the
// earliest candidate.
func GenerateLevel(p Params, rng *SimpleRNG) (Level, CandidateReport, error) {
	report := CandidateReport{Selected: -1}
	start := p.AgentStartRect().Center()

	var best Level
	for range p.CandidateAttempts {
		report.Attempts++

		layout, err := GenerateLayout(p, rng)
		if err != nil {
			continue
		}
		steps, ok := PathLength(p.ArenaW, p.ArenaH, p.CellSize, layout.Blockers(p), start, layout.Target.Center())
		if !ok {
			continue
		}

		report.PathLengths = append(report.PathLengths, steps)
		if report.Selected < 0 || steps < best.PathLength {
			report.Selected = len(report.PathLengths) - 1
			best = Level{Layout: layout, PathLength: steps}
		}
	}

	if report.Selected < 0 {
		return Level{}, report, fmt.Errorf("%w: %d candidates tried", ErrNoCandidateReachable, report.Attempts)
	}
	return best, report, nil
}

// PlacePlayer finds a start box for the player block that avoids the
// obstacles and the target's barriers.
func PlacePlayer(p Params, lvl Level, rng *SimpleRNG) (Rect, error) {
	blockers := lvl.Blockers(p)
	for range p.PlacementAttempts {
		r := randomBox(p, rng, p.PlayerSize)
		if !OverlapsAny(r, blockers) {
			return r, nil
		}
	}
	return Rect{}, fmt.Errorf("%w: player block placement after %d tries", ErrGenerationExhausted, p.PlacementAttempts)
}

// PlaceSwitch finds a switch box that avoids the target, the obstacles and
// the barriers, and that the agent start can reach on the grid.
func PlaceSwitch(p Params, lvl Level, rng *SimpleRNG) (Rect, error) {
	blockers := lvl.Blockers(p)
	grid := NewReachGrid(p.ArenaW, p.ArenaH, p.CellSize, blockers)
	start := p.AgentStartRect().Center()

	for range p.PlacementAttempts {
		r := randomBox(p, rng, p.SwitchSize)
		if RectsOverlap(r, lvl.Target) || OverlapsAny(r, blockers) {
			continue
		}
		if _, ok := grid.PathLength(start, r.Center()); ok {
			return r, nil
		}
	}
	return Rect{}, fmt.Errorf("%w: switch placement after %d tries", ErrGenerationExhausted, p.PlacementAttempts)
}

func randomBox(p Params, rng *SimpleRNG, size float64) Rect {
	x := float64(rng.Between(0, int(p.ArenaW-size)))
	y := float64(rng.Between(0, int(p.ArenaH-size)))
	return R(x, y, size, size)
}
