// Package levels stores Red Block Rescue layouts as YAML files so a
// generated level can be replayed. This package depends on core but core
// does not depend on levels.
package levels

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/redblock/internal/games/redblock/core"
)

// ErrInvalidLevel is wrapped by every validation failure.
var ErrInvalidLevel = errors.New("invalid level")

// idNamespace scopes the name-based ids given to files saved without one.
var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/vovakirdan/redblock/levels"))

// Box is a rectangle in arena units.
type Box struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

func boxOf(r core.Rect) Box {
	return Box{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

// Rect converts the box to a core rectangle.
func (b Box) Rect() core.Rect {
	return core.R(b.X, b.Y, b.W, b.H)
}

// File is the on-disk form of a level.
type File struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Seed        int64   `yaml:"seed,omitempty"` // Generator seed, 0 for hand-made layouts
	ArenaWidth  float64 `yaml:"arena_width"`
	ArenaHeight float64 `yaml:"arena_height"`
	PathLength  int     `yaml:"path_length"`
	Target      Box     `yaml:"target"`
	Obstacles   []Box   `yaml:"obstacles"`

	FilePath string `yaml:"-"`
}

// FromLevel captures a generated level under a fresh id.
func FromLevel(name string, seed int64, p core.Params, lvl core.Level) File {
	f := File{
		ID:          uuid.NewString(),
		Name:        name,
		Seed:        seed,
		ArenaWidth:  p.ArenaW,
		ArenaHeight: p.ArenaH,
		PathLength:  lvl.PathLength,
		Target:      boxOf(lvl.Target),
		Obstacles:   make([]Box, len(lvl.Obstacles)),
	}
	for i, o := range lvl.Obstacles {
		f.Obstacles[i] = boxOf(o)
	}
	return f
}

// Level validates the layout against p and returns it with the path length
// recomputed, so hand-edited files cannot carry a stale value.
func (f File) Level(p core.Params) (core.Level, error) {
	if f.ArenaWidth != p.ArenaW || f.ArenaHeight != p.ArenaH {
		return core.Level{}, fmt.Errorf("%w: arena %vx%v does not match configured %vx%v",
			ErrInvalidLevel, f.ArenaWidth, f.ArenaHeight, p.ArenaW, p.ArenaH)
	}

	arena := core.R(0, 0, p.ArenaW, p.ArenaH)
	inside := func(r core.Rect) bool {
		return r.W > 0 && r.H > 0 && r.X >= arena.X && r.Y >= arena.Y &&
			r.Right() <= arena.Right() && r.Bottom() <= arena.Bottom()
	}

	target := f.Target.Rect()
	if !inside(target) {
		return core.Level{}, fmt.Errorf("%w: target %+v outside the arena", ErrInvalidLevel, f.Target)
	}

	clearance := p.AgentStartRect().Inflate(p.StartClearance, p.StartClearance)
	obstacles := make([]core.Rect, len(f.Obstacles))
	for i, b := range f.Obstacles {
		r := b.Rect()
		if !inside(r) {
			return core.Level{}, fmt.Errorf("%w: obstacle %d outside the arena", ErrInvalidLevel, i)
		}
		if core.RectsOverlap(r, clearance) {
			return core.Level{}, fmt.Errorf("%w: obstacle %d covers the agent start", ErrInvalidLevel, i)
		}
		if core.RectsOverlap(r, target) {
			return core.Level{}, fmt.Errorf("%w: obstacle %d covers the target", ErrInvalidLevel, i)
		}
		for j := range i {
			if core.RectsOverlap(obstacles[j], r) {
				return core.Level{}, fmt.Errorf("%w: obstacles %d and %d overlap", ErrInvalidLevel, j, i)
			}
		}
		obstacles[i] = r
	}

	layout := core.Layout{Obstacles: obstacles, Target: target}
	steps, ok := core.PathLength(p.ArenaW, p.ArenaH, p.CellSize, layout.Blockers(p),
		p.AgentStartRect().Center(), target.Center())
	if !ok {
		return core.Level{}, fmt.Errorf("%w: target unreachable from the agent start", ErrInvalidLevel)
	}
	return core.Level{Layout: layout, PathLength: steps}, nil
}

// Source validates f and returns a level source that replays it.
func (f File) Source(p core.Params) (core.FixedLevel, error) {
	lvl, err := f.Level(p)
	if err != nil {
		return core.FixedLevel{}, err
	}
	return core.FixedLevel{Level: lvl}, nil
}

// Marshal encodes f as YAML.
func Marshal(f File) ([]byte, error) {
	data, err := yaml.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("levels: encoding %s: %w", f.ID, err)
	}
	return data, nil
}

// Parse decodes a YAML level. A file without an id gets one derived from
// its contents, so the same file always loads under the same id.
func Parse(data []byte) (File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("levels: %w", err)
	}
	if f.ID == "" {
		f.ID = uuid.NewSHA1(idNamespace, data).String()
	}
	return f, nil
}

// Save writes f to path, creating parent directories.
func Save(path string, f File) error {
	data, err := Marshal(f)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("levels: create directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // level files are not secret
		return fmt.Errorf("levels: write %s: %w", path, err)
	}
	return nil
}

// LoadFile reads a single level file.
func LoadFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("levels: reading file %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return File{}, fmt.Errorf("levels: parsing file %s: %w", path, err)
	}
	f.FilePath = path
	return f, nil
}
