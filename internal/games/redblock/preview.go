package redblock

import (
	platformcore "github.com/vovakirdan/redblock/internal/core"
	"github.com/vovakirdan/redblock/internal/games/redblock/core"
)

// StartChar marks the agent's start box in level previews.
const StartChar = 'R'

// RenderPreview draws a level's static layout into a boxed screen cols
// cells wide, keeping the arena's aspect ratio.
func RenderPreview(p core.Params, lvl core.Level, cols int) *platformcore.Screen {
	inner := max(cols-2, 8)
	rows := max(int(float64(inner)/(p.ArenaW/p.ArenaH*cellAspect)+1e-9), 4)

	s := platformcore.NewScreen(inner+2, rows+2)
	s.DrawBox(s.Bounds(), platformcore.ColorGray)
	v := platformcore.FitViewport(platformcore.NewRect(1, 1, inner, rows), p.ArenaW, p.ArenaH)

	fill := func(r core.Rect, ch rune, c platformcore.Color) {
		s.FillRect(v.Project(r.X, r.Y, r.W, r.H), platformcore.Cell{Rune: ch, Color: c})
	}
	fill(lvl.Target, TargetChar, platformcore.ColorBrightGreen)
	for _, b := range p.CellBarriers(lvl.Target) {
		fill(b, BarrierChar, platformcore.ColorYellow)
	}
	for _, o := range lvl.Obstacles {
		fill(o, ObstacleChar, platformcore.ColorWhite)
	}
	fill(p.AgentStartRect(), StartChar, platformcore.ColorRed)
	return s
}
