package core

import (
	"github.com/dhconnelly/rtreego"
)

// Tree fan-out. A level holds a few dozen obstacles.
const (
	treeMinChildren = 3
	treeMaxChildren = 8
)

// searchSlack widens R-tree queries so that edge-touching candidates are
// returned; RectsOverlap makes the final call.
const searchSlack = 1e-6

// BlockerIndex answers overlap queries against a fixed list of rectangles
// through an R-tree. Answers are the same as a linear scan of the list,
// including which rectangle comes first.
type BlockerIndex struct {
	rects []Rect
	tree  *rtreego.Rtree
}

type indexedRect struct {
	pos int
	bb  rtreego.Rect
}

func (e *indexedRect) Bounds() rtreego.Rect {
	return e.bb
}

func toTreeRect(r Rect, slack float64) (rtreego.Rect, error) {
	return rtreego.NewRect(
		rtreego.Point{r.X - slack, r.Y - slack},
		[]float64{r.W + 2*slack, r.H + 2*slack},
	)
}

// NewBlockerIndex indexes rects. The slice is copied. Degenerate
// rectangles the tree cannot hold make the index fall back to scanning.
func NewBlockerIndex(rects []Rect) *BlockerIndex {
	idx := &BlockerIndex{rects: append([]Rect(nil), rects...)}
	if len(idx.rects) == 0 {
		return idx
	}

	items := make([]rtreego.Spatial, 0, len(idx.rects))
	for i, r := range idx.rects {
		bb, err := toTreeRect(r, 0)
		if err != nil {
			return idx
		}
		items = append(items, &indexedRect{pos: i, bb: bb})
	}
	idx.tree = rtreego.NewTree(2, treeMinChildren, treeMaxChildren, items...)
	return idx
}

// Len returns the number of indexed rectangles.
func (b *BlockerIndex) Len() int {
	if b == nil {
		return 0
	}
	return len(b.rects)
}

// First returns the earliest rectangle in list order that overlaps r.
func (b *BlockerIndex) First(r Rect) (Rect, bool) {
	if b == nil || len(b.rects) == 0 {
		return Rect{}, false
	}
	if b.tree == nil {
		return firstOverlap(r, b.rects)
	}
	bb, err := toTreeRect(r, searchSlack)
	if err != nil {
		return firstOverlap(r, b.rects)
	}

	best := -1
	for _, s := range b.tree.SearchIntersect(bb) {
		e := s.(*indexedRect)
		if (best < 0 || e.pos < best) && RectsOverlap(r, b.rects[e.pos]) {
			best = e.pos
		}
	}
	if best < 0 {
		return Rect{}, false
	}
	return b.rects[best], true
}

// Any reports whether r overlaps any indexed rectangle.
func (b *BlockerIndex) Any(r Rect) bool {
	_, ok := b.First(r)
	return ok
}

// Blockers is what a moving body collides with: the indexed obstacles,
// then a short list of extra rectangles such as the target's barriers.
type Blockers struct {
	Obstacles *BlockerIndex
	Extra     []Rect
}

// First returns the first overlapping rectangle, obstacles before extras.
func (b Blockers) First(r Rect) (Rect, bool) {
	if hit, ok := b.Obstacles.First(r); ok {
		return hit, true
	}
	return firstOverlap(r, b.Extra)
}

// Any reports whether r overlaps any blocker.
func (b Blockers) Any(r Rect) bool {
	_, ok := b.First(r)
	return ok
}
