package redblock

import (
	"fmt"
	"unicode/utf8"

	platformcore "github.com/vovakirdan/redblock/internal/core"
	"github.com/vovakirdan/redblock/internal/games/redblock/core"
)

// Visual characters for rendering
const (
	ObstacleChar = '█'
	TargetChar   = '░'
	BarrierChar  = '▒'
	SwitchChar   = '■'
	SwitchOff    = '□'
	PlayerChar   = '█'
	AgentChar    = '█'
	HazardChar   = '●'
	FacingRight  = '▶'
	FacingLeft   = '◀'
)

// Layout
const (
	hudRows    = 1
	helpRows   = 1
	cellAspect = 2.0 // Terminal cells are roughly twice as tall as wide
	minArenaW  = 24
	minArenaH  = 8
)

const helpLine = " Arrows/WASD move · Enter confirm · P pause · B back · Q quit"

// arenaArea returns the cells the arena is drawn into, inside a one-cell
// border, keeping the arena's aspect ratio.
func arenaArea(screenW, screenH int, worldW, worldH float64) (platformcore.Rect, bool) {
	availW := screenW - 2
	availH := screenH - hudRows - helpRows - 2
	if availW < minArenaW || availH < minArenaH {
		return platformcore.Rect{}, false
	}

	const eps = 1e-9
	colsPerRow := worldW / worldH * cellAspect
	w, h := availW, int(float64(availW)/colsPerRow+eps)
	if h > availH {
		h = availH
		w = min(availW, int(float64(availH)*colsPerRow+eps))
	}
	x := (screenW - w) / 2
	y := hudRows + 1 + (availH-h)/2
	return platformcore.NewRect(x, y, w, h), true
}

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.err != nil {
		g.renderHUD(dst, nil)
		g.renderOverlay(dst, platformcore.ColorBrightRed, "Level unavailable", clip(g.err.Error(), dst.Width()-8), "Q to quit")
		return
	}
	snap, ok := g.Snapshot()
	if !ok {
		return
	}

	g.renderHUD(dst, &snap)
	dst.DrawTextColor(0, dst.Height()-1, helpLine, platformcore.ColorGray)

	area, ok := arenaArea(dst.Width(), dst.Height(), g.params.ArenaW, g.params.ArenaH)
	if !ok {
		g.renderOverlay(dst, platformcore.ColorYellow, "Window too small", "Resize to continue")
		return
	}
	dst.DrawBox(platformcore.NewRect(area.X-1, area.Y-1, area.W+2, area.H+2), platformcore.ColorGray)
	g.renderArena(dst, platformcore.FitViewport(area, g.params.ArenaW, g.params.ArenaH), snap)

	// Draw overlays
	switch {
	case snap.State == core.StateInstructions:
		g.renderInstructions(dst)
	case snap.State == core.StateWin:
		next := "Enter: next level"
		if g.gen == nil {
			next = "Enter: play again"
		}
		g.renderOverlay(dst, platformcore.ColorBrightGreen, "RESCUED!", fmt.Sprintf("Score: %d", g.score), next)
	case snap.State == core.StateLose:
		g.renderOverlay(dst, platformcore.ColorBrightRed, "FAILED", g.loseReason, "Enter: try again")
	case g.paused:
		g.renderOverlay(dst, platformcore.ColorYellow, "Paused", "Press P to continue")
	}
}

func (g *Game) renderArena(dst *platformcore.Screen, v platformcore.Viewport, snap core.Snapshot) {
	fill := func(r core.Rect, ch rune, c platformcore.Color) {
		dst.FillRect(v.Project(r.X, r.Y, r.W, r.H), platformcore.Cell{Rune: ch, Color: c})
	}

	fill(snap.Target, TargetChar, platformcore.ColorBrightGreen)
	for _, b := range snap.Barriers {
		fill(b, BarrierChar, platformcore.ColorYellow)
	}
	for _, o := range snap.Obstacles {
		fill(o, ObstacleChar, platformcore.ColorWhite)
	}
	if snap.SwitchTriggered {
		fill(snap.Switch, SwitchOff, platformcore.ColorGray)
	} else {
		fill(snap.Switch, SwitchChar, platformcore.ColorBrightMagenta)
	}
	fill(snap.Player, PlayerChar, platformcore.ColorBrightBlue)
	for _, h := range snap.Hazards {
		fill(h.Rect, HazardChar, platformcore.ColorOrange)
	}

	fill(snap.Agent, AgentChar, platformcore.ColorRed)
	glyph := FacingRight
	if snap.Facing == core.FacingLeft {
		glyph = FacingLeft
	}
	c := snap.Agent.Center()
	x, y := v.Point(c.X, c.Y)
	dst.SetCell(x, y, platformcore.Cell{Rune: glyph, Color: platformcore.ColorBrightWhite})
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *platformcore.Screen, snap *core.Snapshot) {
	hud := " " + g.Title()
	if snap != nil {
		timeLeft := "--"
		if snap.CountdownActive {
			timeLeft = fmt.Sprintf("%ds", snap.RemainingSeconds())
		}
		hud += fmt.Sprintf(" | %s | Time: %s | Hazards: %d | Path: %d",
			snap.State, timeLeft, len(snap.Hazards), snap.PathLength)
		if g.levelTag != "" {
			hud += " | Level: " + g.levelTag
		}
		if snap.State.Terminal() {
			hud += fmt.Sprintf(" | Score: %d", g.score)
		}
	}
	if g.paused {
		hud += " | PAUSED"
	}
	dst.DrawTextColor(0, 0, hud, platformcore.ColorBrightWhite)
}

func (g *Game) renderInstructions(dst *platformcore.Screen) {
	g.renderOverlay(dst, platformcore.ColorBrightRed,
		"RED BLOCK RESCUE",
		"",
		"Bump the red block with your blue block to steer it.",
		"Get it onto the magenta switch to open the green target.",
		fmt.Sprintf("The switch starts a %ds countdown and releases hazards.", g.params.CountdownMs/1000),
		"Bring the red block into the target before time runs out.",
		"",
		"Press Enter to start",
	)
}

// renderOverlay draws a centered box; the first line is the title.
func (g *Game) renderOverlay(dst *platformcore.Screen, titleColor platformcore.Color, lines ...string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(l))
	}
	boxW := min(maxLen+4, dst.Width())
	boxH := len(lines) + 2
	box := platformcore.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, platformcore.Cell{Rune: ' ', Color: platformcore.ColorDefault})
	dst.DrawBox(box, platformcore.ColorGray)
	for i, l := range lines {
		c := platformcore.ColorDefault
		if i == 0 {
			c = titleColor
		}
		dst.DrawTextCentered(box.Y+1+i, l, c)
	}
}

func clip(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
