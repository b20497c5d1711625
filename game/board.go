package game

import (
	"fmt"
	"strings"
)

// Board is a width x height grid of cells backed by a single column-major
// slice (index = x*height + y). Column-major keeps each column contiguous,
// which is what gravity works on and what the canonical scan order walks.
//
// Board is immutable by convention: no method mutates its receiver, every
// transform returns a copy with its own backing slice. That makes boards
// safe to share across goroutines without any locking.
type Board struct {
	width  int
	height int
	cells  []Cell
}

// NewBoard returns an empty width x height board.
func NewBoard(width, height int) Board {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("invalid board dimensions %dx%d", width, height))
	}
	return Board{width: width, height: height, cells: make([]Cell, width*height)}
}

func (b Board) Width() int  { return b.width }
func (b Board) Height() int { return b.height }

// Cells returns the board capacity, occupied or not.
func (b Board) Cells() int { return b.width * b.height }

func (b Board) index(x, y int) int { return x*b.height + y }

// At returns the cell at (x, y), where y counts up from the bottom row.
func (b Board) At(x, y int) Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		panic(fmt.Sprintf("cell (%d,%d) outside %dx%d board", x, y, b.width, b.height))
	}
	return b.cells[b.index(x, y)]
}

// Clone returns a deep copy with an independent backing slice.
func (b Board) Clone() Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return Board{width: b.width, height: b.height, cells: cells}
}

// Empty reports whether no blocks remain.
func (b Board) Empty() bool {
	for _, c := range b.cells {
		if c != 0 {
			return false
		}
	}
	return true
}

// Remaining counts the blocks still on the board.
func (b Board) Remaining() int {
	count := 0
	for _, c := range b.cells {
		if c != 0 {
			count++
		}
	}
	return count
}

// TotalsByType tallies the remaining blocks per block type.
func (b Board) TotalsByType() map[Cell]int {
	totals := make(map[Cell]int)
	for _, c := range b.cells {
		if c != 0 {
			totals[c]++
		}
	}
	return totals
}

// RemoveGroup returns a copy with the group's cells emptied. It does not
// settle the result: the holes stay where the group was until ApplyPhysics
// runs.
func (b Board) RemoveGroup(g Group) Board {
	if g.height != b.height || len(g.mask) != (b.Cells()+maskWordBits-1)/maskWordBits {
		panic("group does not belong to a board of these dimensions")
	}
	next := b.Clone()
	for i := range next.cells {
		if g.mask.has(i) {
			next.cells[i] = 0
		}
	}
	return next
}

// ApplyPhysics settles the board after a removal: every block falls to the
// bottom of its column, then entirely empty columns close up so the occupied
// columns sit flush left. Relative order is preserved both ways. Settling a
// settled board changes nothing.
func (b Board) ApplyPhysics() Board {
	next := NewBoard(b.width, b.height)
	out := 0
	for x := 0; x < b.width; x++ {
		column := b.cells[x*b.height : (x+1)*b.height]
		y := 0
		for _, c := range column {
			if c != 0 {
				next.cells[out*b.height+y] = c
				y++
			}
		}
		if y > 0 {
			out++
		}
	}
	return next
}

// String renders the rows top to bottom, '.' for empty cells and letters for
// block types, matching the text format the parser reads.
func (b Board) String() string {
	var sb strings.Builder
	for y := b.height - 1; y >= 0; y-- {
		for x := 0; x < b.width; x++ {
			sb.WriteByte(cellSymbol(b.cells[b.index(x, y)]))
		}
		if y > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func cellSymbol(c Cell) byte {
	if c == 0 {
		return '.'
	}
	return 'a' + byte((c-1)%26)
}
