package game

// Defaults for the reference puzzle: a 10x10 board searched to a depth of 30
// moves. Nothing below is hardwired to these - boards carry their own
// dimensions and sequences their own limit.
const (
	DEFAULT_WIDTH  = 10
	DEFAULT_HEIGHT = 10
	MOVE_LIMIT     = 30
)

// Cell is one board position. Zero means empty; positive values are block
// types, assigned by the parser in first-seen order.
type Cell uint8

// Point addresses a cell. X runs left to right, Y bottom to top, so gravity
// pulls towards Y=0.
type Point struct {
	X int
	Y int
}
