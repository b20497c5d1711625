package searcher

import (
	"github.com/rs/zerolog/log"

	"samegame/game"
)

// Explorer walks the entire move tree of a board depth first, feeding every
// complete clearance and every abandoned line to its handler. It runs on the
// calling goroutine only, which makes it fully deterministic: the same board
// and prioritizer produce the same handler calls in the same order, every
// run.
type Explorer struct {
	prioritizer Prioritizer
	handler     Handler
	moveLimit   int
	metrics     collector
}

// New returns a sequential exhaustive searcher.
func New(prioritizer Prioritizer, handler Handler, options ...Option) *Explorer {
	cfg := newConfig(options...)
	return &Explorer{
		prioritizer: prioritizer,
		handler:     handler,
		moveLimit:   cfg.moveLimit,
		metrics:     cfg.metrics,
	}
}

// Search explores every line of play from the board.
func (e *Explorer) Search(board game.Board) Metrics {
	return e.SearchFrom(board, game.NewMoveSequence(e.moveLimit))
}

// SearchFrom explores from a position already moves deep, extending that
// prefix. The prefix counts against the sequence's move limit.
func (e *Explorer) SearchFrom(board game.Board, moves game.MoveSequence) Metrics {
	e.metrics.start()
	e.explore(board, moves)
	return e.metrics.complete()
}

// explore applies the terminal checks in a fixed order - cleared, loner,
// no candidates - and otherwise branches on every prioritized move.
func (e *Explorer) explore(board game.Board, moves game.MoveSequence) {
	e.metrics.addNode()
	if board.Empty() {
		e.metrics.addSolution()
		e.handler.Handle(moves)
		return
	}
	if hasLoner(board) {
		e.metrics.addDeadEnd()
		e.handler.HandleDead(moves)
		return
	}
	groups := game.FindGroups(board)
	if len(groups) == 0 {
		e.metrics.addDeadEnd()
		e.handler.HandleDead(moves)
		return
	}
	for _, group := range e.prioritizer.Prioritize(groups) {
		next, err := moves.Push(group)
		if err != nil {
			e.metrics.addTruncated()
			log.Debug().Int("limit", moves.Limit()).Msg("move limit reached, dropping branch")
			continue
		}
		e.explore(board.RemoveGroup(group).ApplyPhysics(), next)
	}
}

// hasLoner reports whether some block type has exactly one cell left, which
// makes a full clearance impossible no matter what is played.
func hasLoner(board game.Board) bool {
	for _, count := range board.TotalsByType() {
		if count == 1 {
			return true
		}
	}
	return false
}
