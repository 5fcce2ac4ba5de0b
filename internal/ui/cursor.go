package ui

// Direction is a cursor movement request.
type Direction int

const (
	// DirNone re-clamps the cursor without moving it, e.g. after a resize.
	DirNone Direction = iota
	DirUp
	DirDown
)

// Cursor tracks the highlighted row and the first visible row of a list
// rendered in a fixed number of rows. The viewport is recomputed from scratch
// on every move: it stays at the top until the cursor passes the bottom of
// the first window, after which the cursor is pinned to the last visible row.
type Cursor struct {
	current int
	top     int
}

func (c Cursor) Current() int { return c.current }
func (c Cursor) Top() int     { return c.top }

// Move applies dir and recomputes the viewport for a list of length items
// shown in visibleRows rows.
func (c *Cursor) Move(dir Direction, length, visibleRows int) {
	switch dir {
	case DirUp:
		c.current--
	case DirDown:
		c.current++
	}

	if length <= 0 {
		c.current, c.top = 0, 0
		return
	}
	if visibleRows < 1 {
		visibleRows = 1
	}

	if c.current < 0 {
		c.current = 0
	}
	if c.current > length-1 {
		c.current = length - 1
	}

	visible := min(visibleRows, length)
	if c.current > visible-1 {
		c.top = c.current - visible + 1
	} else {
		c.top = 0
	}
}

// Window returns the half-open range of list indexes currently on screen.
func (c Cursor) Window(length, visibleRows int) (start, end int) {
	if length <= 0 || visibleRows < 1 {
		return 0, 0
	}
	start = c.top
	end = min(start+visibleRows, length)
	return start, end
}
