package game

import (
	"errors"
	"strings"
)

// ErrLengthExceeded is returned by Push when a sequence is already at its
// move limit.
var ErrLengthExceeded = errors.New("move sequence at its limit")

// MoveSequence is a bounded, append-only run of moves. It is a value type:
// Push returns a new sequence with a freshly allocated backing array, never
// an alias of the receiver's, so divergent search branches can extend the
// same prefix without ever seeing each other's moves.
type MoveSequence struct {
	moves []Group
	limit int
}

// NewMoveSequence returns an empty sequence capped at limit moves. A
// non-positive limit falls back to MOVE_LIMIT.
func NewMoveSequence(limit int) MoveSequence {
	if limit <= 0 {
		limit = MOVE_LIMIT
	}
	return MoveSequence{limit: limit}
}

// Push appends one move and returns the extended sequence, leaving the
// receiver untouched. At the limit it returns the receiver unchanged and
// ErrLengthExceeded.
func (s MoveSequence) Push(g Group) (MoveSequence, error) {
	if len(s.moves) >= s.limit {
		return s, ErrLengthExceeded
	}
	moves := make([]Group, len(s.moves)+1)
	copy(moves, s.moves)
	moves[len(s.moves)] = g
	return MoveSequence{moves: moves, limit: s.limit}, nil
}

func (s MoveSequence) Len() int   { return len(s.moves) }
func (s MoveSequence) Limit() int { return s.limit }

// At returns the i-th move pushed, starting at 0.
func (s MoveSequence) At(i int) Group { return s.moves[i] }

// Groups returns a copy of the moves in push order.
func (s MoveSequence) Groups() []Group {
	return append([]Group(nil), s.moves...)
}

// Clone returns a sequence with its own backing array.
func (s MoveSequence) Clone() MoveSequence {
	return MoveSequence{moves: s.Groups(), limit: s.limit}
}

func (s MoveSequence) String() string {
	if len(s.moves) == 0 {
		return "(no moves)"
	}
	parts := make([]string, len(s.moves))
	for i, g := range s.moves {
		parts[i] = g.String()
	}
	return strings.Join(parts, " ")
}
