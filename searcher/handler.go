package searcher

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"samegame/game"
)

// FirstSolution keeps the first complete clearance it sees and ignores
// everything after it. Any number of goroutines may hammer Handle; exactly
// one takes the latch.
type FirstSolution struct {
	mu       sync.Mutex
	solution game.MoveSequence
	found    bool
	done     chan struct{}
}

func NewFirstSolution() *FirstSolution {
	return &FirstSolution{done: make(chan struct{})}
}

func (h *FirstSolution) Handle(solution game.MoveSequence) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.found {
		return
	}
	h.found = true
	h.solution = solution.Clone()
	close(h.done)
	log.Info().Int("moves", solution.Len()).Msgf("first solution: %v", solution)
}

func (h *FirstSolution) HandleDead(game.MoveSequence) {}

// Solution returns the latched clearance, if any line has solved the board
// yet.
func (h *FirstSolution) Solution() (game.MoveSequence, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.solution, h.found
}

// Done is closed once a solution is latched. Advisory: the searcher is never
// interrupted, but whoever runs it may stop listening.
func (h *FirstSolution) Done() <-chan struct{} { return h.done }

// Progress reports how a long search is doing: the time to the first
// solution, and a heartbeat line every reportEvery dead ends. It never stops
// anything.
type Progress struct {
	startTime   time.Time
	reportEvery int64
	deadEnds    atomic.Int64

	mu         sync.Mutex
	solved     bool
	firstSolve time.Duration
}

// NewProgress returns a reporter; a non-positive reportEvery selects
// REPORT_EVERY.
func NewProgress(reportEvery int) *Progress {
	if reportEvery <= 0 {
		reportEvery = REPORT_EVERY
	}
	return &Progress{startTime: time.Now(), reportEvery: int64(reportEvery)}
}

func (p *Progress) Handle(solution game.MoveSequence) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.solved {
		return
	}
	p.solved = true
	p.firstSolve = time.Since(p.startTime)
	log.Info().Dur("after", p.firstSolve).Int("moves", solution.Len()).Msg("first clearance")
}

func (p *Progress) HandleDead(game.MoveSequence) {
	count := p.deadEnds.Add(1)
	if count%p.reportEvery == 0 {
		log.Info().Int64("deadEnds", count).Dur("elapsed", time.Since(p.startTime)).Msg("still searching")
	}
}

// DeadEnds returns how many abandoned lines have been reported so far.
func (p *Progress) DeadEnds() int64 { return p.deadEnds.Load() }

// FirstSolveIn returns how long the first clearance took, if one arrived.
func (p *Progress) FirstSolveIn() (time.Duration, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.firstSolve, p.solved
}

// Tee fans every callback out to all handlers in order. It adds no locking
// of its own; each constituent carries its own.
func Tee(handlers ...Handler) Handler { return tee(handlers) }

type tee []Handler

func (t tee) Handle(solution game.MoveSequence) {
	for _, h := range t {
		h.Handle(solution)
	}
}

func (t tee) HandleDead(moves game.MoveSequence) {
	for _, h := range t {
		h.HandleDead(moves)
	}
}
