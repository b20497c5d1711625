package game

import "golang.org/x/exp/rand"

// Random fills a width x height board with uniformly drawn types 1..types.
// The caller owns the source, so a fixed seed reproduces the board exactly.
func Random(width, height, types int, rng *rand.Rand) Board {
	if types < 1 || types > maxCellTypes {
		panic("block type count out of range")
	}
	board := NewBoard(width, height)
	for i := range board.cells {
		board.cells[i] = Cell(rng.Intn(types) + 1)
	}
	return board
}
