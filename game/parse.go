package game

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInputFormat wraps every board text parsing failure.
var ErrInputFormat = errors.New("malformed board text")

// maxCellTypes is how many distinct symbols a board may use, bounded by what
// fits in a Cell.
const maxCellTypes = 255

// Parse reads a width x height board from r. The text is height lines of at
// least width runes each, top row first; columns beyond width are ignored,
// as are blank lines after the board. Each distinct rune becomes the next
// block type in first-seen reading order (top line first, left to right), so
// any symbols work, multi-byte ones included.
func Parse(r io.Reader, width, height int) (Board, error) {
	if width <= 0 || height <= 0 {
		return Board{}, fmt.Errorf("%w: invalid dimensions %dx%d", ErrInputFormat, width, height)
	}
	board := NewBoard(width, height)
	palette := make(map[rune]Cell)

	scanner := bufio.NewScanner(r)
	row := 0
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if row >= height {
			if strings.TrimSpace(line) == "" {
				continue
			}
			return Board{}, fmt.Errorf("%w: more than %d lines", ErrInputFormat, height)
		}
		symbols := []rune(line)
		if len(symbols) < width {
			return Board{}, fmt.Errorf("%w: line %d has %d cells, want at least %d",
				ErrInputFormat, row+1, len(symbols), width)
		}
		// The first line of text is the top row of the board.
		y := height - 1 - row
		for x := 0; x < width; x++ {
			c, seen := palette[symbols[x]]
			if !seen {
				if len(palette) == maxCellTypes {
					return Board{}, fmt.Errorf("%w: more than %d block types", ErrInputFormat, maxCellTypes)
				}
				c = Cell(len(palette) + 1)
				palette[symbols[x]] = c
			}
			board.cells[board.index(x, y)] = c
		}
		row++
	}
	if err := scanner.Err(); err != nil {
		return Board{}, fmt.Errorf("failed to read board text: %w", err)
	}
	if row < height {
		return Board{}, fmt.Errorf("%w: got %d lines, want %d", ErrInputFormat, row, height)
	}
	return board, nil
}

// MustParse is Parse from a string literal, panicking on error. For fixtures
// and the benchmark catalogue.
func MustParse(text string, width, height int) Board {
	board, err := Parse(strings.NewReader(text), width, height)
	if err != nil {
		panic(err)
	}
	return board
}
