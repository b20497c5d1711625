package game

import (
	"fmt"
	"math/bits"

	"github.com/gammazero/deque"
)

const maskWordBits = 64

// Mask is a bitset over board cell indices, in the same column-major order
// as the board's backing slice.
type Mask []uint64

func newMask(cells int) Mask {
	return make(Mask, (cells+maskWordBits-1)/maskWordBits)
}

func (m Mask) set(i int)      { m[i/maskWordBits] |= 1 << (i % maskWordBits) }
func (m Mask) has(i int) bool { return m[i/maskWordBits]&(1<<(i%maskWordBits)) != 0 }

// Count returns the number of set cells.
func (m Mask) Count() int {
	count := 0
	for _, word := range m {
		count += bits.OnesCount64(word)
	}
	return count
}

// Overlaps reports whether the two masks share any cell.
func (m Mask) Overlaps(other Mask) bool {
	for i := range m {
		if i < len(other) && m[i]&other[i] != 0 {
			return true
		}
	}
	return false
}

// Group is a maximal 4-connected region of two or more same-type blocks: one
// legal move. Groups are immutable once FindGroups returns them, so they can
// be shared freely between sequences and goroutines.
type Group struct {
	Type   Cell
	Size   int
	Origin Point // the group's first cell in scan order

	mask   Mask
	height int // board height, needed to decode mask indices
}

// Mask returns a copy of the group's occupancy bitset.
func (g Group) Mask() Mask {
	return append(Mask(nil), g.mask...)
}

// Cells lists the group's cells in ascending scan order.
func (g Group) Cells() []Point {
	points := make([]Point, 0, g.Size)
	for i := 0; i < len(g.mask)*maskWordBits; i++ {
		if g.mask.has(i) {
			points = append(points, Point{X: i / g.height, Y: i % g.height})
		}
	}
	return points
}

// Contains reports whether the board cell (x, y) belongs to the group.
func (g Group) Contains(x, y int) bool {
	if x < 0 || y < 0 || y >= g.height {
		return false
	}
	i := x*g.height + y
	if i >= len(g.mask)*maskWordBits {
		return false
	}
	return g.mask.has(i)
}

func (g Group) String() string {
	return fmt.Sprintf("%c%d@%d,%d", cellSymbol(g.Type), g.Size, g.Origin.X, g.Origin.Y)
}

// FindGroups returns every legal move on the board: all maximal 4-connected
// regions of at least two same-type blocks. The scan runs in canonical order
// (columns left to right, cells bottom to top), and each region is collected
// by a breadth-first flood fill, so byte-identical boards always produce the
// identical slice in the identical order. Cells without a same-type
// 4-neighbour seed nothing and appear in no group.
func FindGroups(b Board) []Group {
	visited := newMask(b.Cells())
	var groups []Group
	for x := 0; x < b.width; x++ {
		for y := 0; y < b.height; y++ {
			i := b.index(x, y)
			c := b.cells[i]
			if c == 0 || visited.has(i) {
				continue
			}
			if !b.hasSameNeighbor(x, y, c) {
				continue // lone block, not a move
			}
			groups = append(groups, b.collectGroup(x, y, visited))
		}
	}
	return groups
}

func (b Board) hasSameNeighbor(x, y int, c Cell) bool {
	return (x > 0 && b.cells[b.index(x-1, y)] == c) ||
		(x < b.width-1 && b.cells[b.index(x+1, y)] == c) ||
		(y < b.height-1 && b.cells[b.index(x, y+1)] == c) ||
		(y > 0 && b.cells[b.index(x, y-1)] == c)
}

// collectGroup flood fills the same-type region seeded at (x, y), visiting
// neighbours left, right, up, down. Reached cells are claimed in the shared
// visited mask so later scan positions skip them.
func (b Board) collectGroup(x, y int, visited Mask) Group {
	c := b.cells[b.index(x, y)]
	group := Group{
		Type:   c,
		Origin: Point{X: x, Y: y},
		mask:   newMask(b.Cells()),
		height: b.height,
	}

	var queue deque.Deque[int]
	seed := b.index(x, y)
	visited.set(seed)
	queue.PushBack(seed)
	for queue.Len() > 0 {
		i := queue.PopFront()
		group.mask.set(i)
		group.Size++
		cx, cy := i/b.height, i%b.height
		for _, n := range [4]Point{{cx - 1, cy}, {cx + 1, cy}, {cx, cy + 1}, {cx, cy - 1}} {
			if n.X < 0 || n.X >= b.width || n.Y < 0 || n.Y >= b.height {
				continue
			}
			j := b.index(n.X, n.Y)
			if b.cells[j] != c || visited.has(j) {
				continue
			}
			visited.set(j)
			queue.PushBack(j)
		}
	}
	return group
}
