package core

import "math"

// Cell is a grid coordinate.
type Cell struct {
	Col, Row int
}

// neighbors4 lists the 4-connected moves in expansion order.
var neighbors4 = [4]Cell{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// ReachGrid overlays the arena with square cells. A cell is blocked when
// its centre point lies inside one of the blocking rectangles. Thin
// blockers can slip between cell centres; paths may leak around them.
type ReachGrid struct {
	Cols, Rows int
	CellSize   int
	blocked    []bool
}

// NewReachGrid builds the blocked-cell map for an arena of w × h units.
func NewReachGrid(w, h float64, cellSize int, blockers []Rect) *ReachGrid {
	if cellSize <= 0 {
		cellSize = 1
	}
	g := &ReachGrid{
		Cols:     int(w) / cellSize,
		Rows:     int(h) / cellSize,
		CellSize: cellSize,
	}
	g.blocked = make([]bool, g.Cols*g.Rows)

	half := float64(cellSize / 2)
	for row := range g.Rows {
		for col := range g.Cols {
			center := Vec{
				X: float64(col*cellSize) + half,
				Y: float64(row*cellSize) + half,
			}
			for _, b := range blockers {
				if b.ContainsPoint(center) {
					g.blocked[row*g.Cols+col] = true
					break
				}
			}
		}
	}
	return g
}

// CellAt converts an arena point to its cell.
func (g *ReachGrid) CellAt(p Vec) Cell {
	cs := float64(g.CellSize)
	return Cell{Col: int(math.Floor(p.X / cs)), Row: int(math.Floor(p.Y / cs))}
}

// InBounds reports whether c lies on the grid.
func (g *ReachGrid) InBounds(c Cell) bool {
	return c.Col >= 0 && c.Col < g.Cols && c.Row >= 0 && c.Row < g.Rows
}

// Blocked reports whether c is blocked. Off-grid cells count as blocked.
func (g *ReachGrid) Blocked(c Cell) bool {
	if !g.InBounds(c) {
		return true
	}
	return g.blocked[c.Row*g.Cols+c.Col]
}

// PathLength returns the number of 4-connected steps between the cells
// containing start and goal. The endpoint cells are always traversable;
// every intermediate cell must be unblocked. ok is false when no path
// exists or an endpoint lies off the grid.
func (g *ReachGrid) PathLength(start, goal Vec) (steps int, ok bool) {
	from, to := g.CellAt(start), g.CellAt(goal)
	if from == to {
		return 0, true
	}
	if !g.InBounds(from) || !g.InBounds(to) {
		return 0, false
	}

	dist := make([]int, g.Cols*g.Rows)
	for i := range dist {
		dist[i] = -1
	}
	index := func(c Cell) int { return c.Row*g.Cols + c.Col }

	queue := []Cell{from}
	dist[index(from)] = 0
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range neighbors4 {
			next := Cell{Col: cur.Col + d.Col, Row: cur.Row + d.Row}
			if !g.InBounds(next) || dist[index(next)] >= 0 {
				continue
			}
			if next == to {
				return dist[index(cur)] + 1, true
			}
			if g.blocked[index(next)] {
				continue
			}
			dist[index(next)] = dist[index(cur)] + 1
			queue = append(queue, next)
		}
	}
	return 0, false
}

// PathLength is a convenience wrapper building a grid for a single query.
func PathLength(arenaW, arenaH float64, cellSize int, blockers []Rect, start, goal Vec) (int, bool) {
	return NewReachGrid(arenaW, arenaH, cellSize, blockers).PathLength(start, goal)
}
