package searcher

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"samegame/game"
)

// Score values a line of play: a move clearing n blocks is worth n*(n-1),
// so a few big clearances beat many small ones.
func Score(moves game.MoveSequence) int {
	total := 0
	for i := 0; i < moves.Len(); i++ {
		size := moves.At(i).Size
		total += size * (size - 1)
	}
	return total
}

// ScoreOption tunes a BestScore policy.
type ScoreOption func(b *BestScore)

// WithTarget ends the chase once the best line scores above target; a
// non-positive target disables the trigger.
func WithTarget(target int) ScoreOption {
	return func(b *BestScore) { b.target = target }
}

// WithCeiling rejects line scores above ceiling as corrupt instead of
// letting them poison the best.
func WithCeiling(ceiling int) ScoreOption {
	return func(b *BestScore) {
		if ceiling > 0 {
			b.ceiling = ceiling
		}
	}
}

// WithPatience ends the chase when no better line has shown up for d; zero
// patience never expires.
func WithPatience(d time.Duration) ScoreOption {
	return func(b *BestScore) {
		if d > 0 {
			b.patience = d
		}
	}
}

// BestScore chases the highest-scoring line instead of the first clearance.
// It wraps a downstream handler that hears nothing until the chase ends:
// when a line beats the target, when improvement stalls past the patience
// window, or when Stop is called, the policy forwards its best line
// downstream exactly once and closes Done.
//
// Until the first full clearance arrives, dead-end lines compete for the
// best; the first clearance resets the best to zero so that solutions only
// ever compete with solutions. Stopping is advisory: the searcher is never
// told, whoever runs it watches Done.
type BestScore struct {
	downstream Handler
	target     int
	ceiling    int
	patience   time.Duration

	mu            sync.Mutex
	best          game.MoveSequence
	bestScore     int
	scored        bool // some line has been taken as best
	foundSolution bool
	searching     bool
	improvedAt    time.Time
	done          chan struct{}
}

// NewBestScore returns a policy forwarding to downstream. With no options it
// only ever stops via Stop.
func NewBestScore(downstream Handler, options ...ScoreOption) *BestScore {
	b := &BestScore{ // Default values
		downstream: downstream,
		ceiling:    SCORE_CEILING,
		searching:  true,
		improvedAt: time.Now(),
		done:       make(chan struct{}),
	}
	for _, option := range options {
		option(b)
	}
	return b
}

func (b *BestScore) Handle(solution game.MoveSequence) {
	var forward game.MoveSequence
	deliver := false

	b.mu.Lock()
	if !b.searching {
		b.mu.Unlock()
		return
	}
	if b.expiredLocked() {
		forward, deliver = b.stopLocked()
		b.mu.Unlock()
		if deliver {
			b.downstream.Handle(forward)
		}
		return
	}
	if !b.foundSolution {
		// The first clearance outranks every dead-end best seen so far.
		b.foundSolution = true
		b.bestScore = 0
		b.best = game.MoveSequence{}
		b.scored = false
	}
	points := Score(solution)
	if points > b.ceiling {
		b.mu.Unlock()
		log.Warn().Int("points", points).Int("ceiling", b.ceiling).
			Msgf("aberrant score discarded: %v", solution)
		return
	}
	if !b.scored || points > b.bestScore {
		b.scored = true
		b.bestScore = points
		b.best = solution.Clone()
		b.improvedAt = time.Now()
		log.Info().Int("score", points).Int("moves", solution.Len()).Msg("new best clearance")
	}
	if b.target > 0 && b.bestScore > b.target {
		forward, deliver = b.stopLocked()
	}
	b.mu.Unlock()
	if deliver {
		b.downstream.Handle(forward)
	}
}

func (b *BestScore) HandleDead(moves game.MoveSequence) {
	var forward game.MoveSequence
	deliver := false

	b.mu.Lock()
	if !b.searching {
		b.mu.Unlock()
		return
	}
	if b.expiredLocked() {
		forward, deliver = b.stopLocked()
		b.mu.Unlock()
		if deliver {
			b.downstream.Handle(forward)
		}
		return
	}
	if b.foundSolution {
		// Dead ends stop competing once a real clearance exists.
		b.mu.Unlock()
		return
	}
	points := Score(moves)
	if points > b.ceiling {
		b.mu.Unlock()
		log.Warn().Int("points", points).Int("ceiling", b.ceiling).
			Msgf("aberrant score discarded: %v", moves)
		return
	}
	if !b.scored || points > b.bestScore {
		b.scored = true
		b.bestScore = points
		b.best = moves.Clone()
		b.improvedAt = time.Now()
	}
	b.mu.Unlock()
}

// Stop ends the chase by hand. The runner calls it when the searcher
// finishes exhaustively before any trigger fired, so the best still reaches
// the downstream handler.
func (b *BestScore) Stop() {
	b.mu.Lock()
	forward, deliver := b.stopLocked()
	b.mu.Unlock()
	if deliver {
		b.downstream.Handle(forward)
	}
}

// Best returns the best line seen so far, its score, and whether any full
// clearance has been seen.
func (b *BestScore) Best() (game.MoveSequence, int, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.best, b.bestScore, b.foundSolution
}

// Searching reports whether the policy still wants more lines.
func (b *BestScore) Searching() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.searching
}

// Done is closed when the chase ends. Purely advisory: nothing interrupts
// the searcher, the orchestrator just stops listening.
func (b *BestScore) Done() <-chan struct{} { return b.done }

func (b *BestScore) expiredLocked() bool {
	return b.patience > 0 && time.Since(b.improvedAt) > b.patience
}

// stopLocked flips the latch and hands back what to forward. The caller
// delivers after unlocking so a slow downstream never holds the lock.
func (b *BestScore) stopLocked() (game.MoveSequence, bool) {
	if !b.searching {
		return game.MoveSequence{}, false
	}
	b.searching = false
	close(b.done)
	log.Info().Int("score", b.bestScore).Bool("solved", b.foundSolution).
		Msgf("score chase over: %v", b.best)
	return b.best, b.scored
}
