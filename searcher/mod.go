package searcher

import "samegame/game"

// REPORT_EVERY is how many dead ends pass between progress reports.
const REPORT_EVERY = 10000

// SCORE_CEILING is the sanity bound on any single line's score: clearing a
// default 10x10 board in one group is worth 100*99.
const SCORE_CEILING = 9900

// GO_ROUTINES bounds the parallel searcher's fan-out when the caller does
// not.
const GO_ROUTINES = 8

// Prioritizer orders the legal moves of one position before the searcher
// branches on them. Implementations must return a permutation of the input -
// nothing added, nothing dropped - must be deterministic for identical
// input, and must be safe for concurrent use.
type Prioritizer interface {
	Prioritize(moves []game.Group) []game.Group
}

// Handler consumes search outcomes: Handle gets every line that clears the
// board, HandleDead every line abandoned as unwinnable. The parallel
// searcher calls both from many goroutines, so implementations synchronize
// internally; the sequence argument is only guaranteed valid during the
// call, so implementations retain it via Clone.
type Handler interface {
	Handle(solution game.MoveSequence)
	HandleDead(moves game.MoveSequence)
}

// Option tunes a searcher, sequential or parallel.
type Option func(c *config)

type config struct {
	moveLimit int
	metrics   collector
}

// WithMoveLimit caps how many moves deep any line may go.
func WithMoveLimit(limit int) Option {
	return func(c *config) {
		if limit > 0 {
			c.moveLimit = limit
		}
	}
}

// WithMetrics attaches a live metrics collector; without it the searcher
// counts nothing.
func WithMetrics() Option {
	return func(c *config) {
		c.metrics = newCollector()
	}
}

func newConfig(options ...Option) config {
	c := config{ // Default values
		moveLimit: game.MOVE_LIMIT,
		metrics:   dummyCollector{},
	}
	for _, option := range options {
		option(&c)
	}
	return c
}
