package game

// Screen geometry shared by the renderer and the click dispatcher. The frame
// is drawn from the top-left corner of the alternate screen:
//
//	line 0   title
//	line 1   status (moves | time | score)
//	line 2   start control
//	line 3   blank
//	line 4+  card grid, CardHeight lines per row
const (
	CardWidth      = 7 // outer width, border included
	CardHeight     = 3 // outer height, border included
	CardInnerWidth = CardWidth - 2
	CardGap        = 1

	StartRow   = 2
	StartLabel = "[ Start ]"
	GridTop    = 4
)

// Cell is a grid coordinate.
type Cell struct {
	Row, Col int
}

// Layout maps terminal coordinates onto the board grid.
type Layout struct {
	Dimension int
	OriginX   int
	OriginY   int
}

func NewLayout(dimension int) Layout {
	return Layout{
		Dimension: dimension,
		OriginY:   GridTop,
	}
}

// CellAt returns the grid cell under (x, y). Gaps between cards and
// anything outside the grid report false.
func (l Layout) CellAt(x, y int) (Cell, bool) {
	dx := x - l.OriginX
	dy := y - l.OriginY
	if dx < 0 || dy < 0 {
		return Cell{}, false
	}

	stride := CardWidth + CardGap
	if dx%stride >= CardWidth {
		return Cell{}, false
	}

	c := Cell{Row: dy / CardHeight, Col: dx / stride}
	if c.Row >= l.Dimension || c.Col >= l.Dimension {
		return Cell{}, false
	}
	return c, true
}

// OnStart reports whether (x, y) falls on the start control.
func (l Layout) OnStart(x, y int) bool {
	return y == StartRow && x >= l.OriginX && x < l.OriginX+len(StartLabel)
}
