package searcher

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"samegame/game"
)

// ParallelExplorer explores the same tree as Explorer but fans branches out
// across a bounded pool of goroutines. The set of handler calls is exactly
// the sequential one; their order is whatever the scheduler makes of it.
// Boards and sequences are values owned by exactly one branch, so handlers
// are the only shared state.
type ParallelExplorer struct {
	prioritizer Prioritizer
	handler     Handler
	goroutines  int
	moveLimit   int
	metrics     collector
}

// NewParallel returns an exhaustive searcher running on up to goroutines
// workers; a non-positive count selects GO_ROUTINES.
func NewParallel(prioritizer Prioritizer, handler Handler, goroutines int, options ...Option) *ParallelExplorer {
	if goroutines <= 0 {
		goroutines = GO_ROUTINES
	}
	cfg := newConfig(options...)
	return &ParallelExplorer{
		prioritizer: prioritizer,
		handler:     handler,
		goroutines:  goroutines,
		moveLimit:   cfg.moveLimit,
		metrics:     cfg.metrics,
	}
}

// Search explores every line of play from the board, returning once the
// whole tree is done.
func (e *ParallelExplorer) Search(board game.Board) Metrics {
	return e.SearchFrom(board, game.NewMoveSequence(e.moveLimit))
}

// SearchFrom explores from a position already moves deep, extending that
// prefix.
func (e *ParallelExplorer) SearchFrom(board game.Board, moves game.MoveSequence) Metrics {
	e.metrics.start()
	pool := new(errgroup.Group)
	pool.SetLimit(e.goroutines)
	e.explore(pool, board, moves)
	// Tasks never return errors; Wait is purely the join point.
	_ = pool.Wait()
	return e.metrics.complete()
}

// explore matches Explorer.explore node for node. Each branch becomes a pool
// task when a worker is free and runs inline in the current goroutine
// otherwise, so recursion never blocks on a saturated pool and the root Wait
// joins the entire tree.
func (e *ParallelExplorer) explore(pool *errgroup.Group, board game.Board, moves game.MoveSequence) {
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
		child := board.RemoveGroup(group).ApplyPhysics()
		task := func() error {
			e.explore(pool, child, next)
			return nil
		}
		if !pool.TryGo(task) {
			task()
		}
	}
}
