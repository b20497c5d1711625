// Package runner is the orchestration layer between the CLI and the search
// machinery: it loads a board, builds the strategy stack, runs a searcher
// and reports what came out.
package runner

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"samegame/game"
	"samegame/searcher"
)

// Config selects a board and how to search it.
type Config struct {
	BoardFile string // board text file; wins over Benchmark
	Benchmark string // benchmark catalogue name
	Width     int    // BoardFile parse width, DEFAULT_WIDTH if zero
	Height    int    // BoardFile parse height, DEFAULT_HEIGHT if zero

	Strategy string // prioritizer name, see NewPrioritizer
	Seed     uint64 // shuffle strategy seed

	Mode       string // "first" reports the first clearance, "best" chases scores
	Goroutines int    // parallel searcher workers, 0 = sequential
	MoveLimit  int    // line depth bound, MOVE_LIMIT if zero

	Target   int           // best mode: stop when a line scores above this
	Ceiling  int           // best mode: aberrant score bound, default if zero
	Patience time.Duration // best mode: stop after this long without improvement

	Metrics bool
}

// Outcome is what one run produced. Metrics stays zero when the run was
// abandoned before the searcher finished.
type Outcome struct {
	Board    game.Board
	Solution game.MoveSequence
	Score    int
	Solved   bool
	Metrics  searcher.Metrics
}

// Run executes one configured search until the searcher finishes or the
// mode's policy stops listening.
func Run(cfg Config) (Outcome, error) {
	board, err := loadBoard(cfg)
	if err != nil {
		return Outcome{}, err
	}
	prioritizer, err := NewPrioritizer(cfg.Strategy, cfg.Seed)
	if err != nil {
		return Outcome{}, err
	}
	log.Info().
		Str("strategy", cfg.Strategy).
		Str("mode", cfg.Mode).
		Int("goroutines", cfg.Goroutines).
		Msgf("searching %dx%d board:\n%v", board.Width(), board.Height(), board)

	switch cfg.Mode {
	case "", "first":
		return runFirst(cfg, board, prioritizer), nil
	case "best":
		return runBest(cfg, board, prioritizer), nil
	default:
		return Outcome{}, fmt.Errorf("unknown mode %q (want first or best)", cfg.Mode)
	}
}

// NewPrioritizer resolves a strategy name: scan, largest, smallest, reverse
// or shuffle.
func NewPrioritizer(name string, seed uint64) (searcher.Prioritizer, error) {
	switch strings.ToLower(name) {
	case "", "scan":
		return searcher.ScanOrder(), nil
	case "largest":
		return searcher.LargestFirst(), nil
	case "smallest":
		return searcher.SmallestFirst(), nil
	case "reverse":
		return searcher.Reversed(searcher.ScanOrder()), nil
	case "shuffle":
		return searcher.Shuffled(seed), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (want scan, largest, smallest, reverse or shuffle)", name)
	}
}

func loadBoard(cfg Config) (game.Board, error) {
	if cfg.BoardFile != "" {
		width, height := cfg.Width, cfg.Height
		if width <= 0 {
			width = game.DEFAULT_WIDTH
		}
		if height <= 0 {
			height = game.DEFAULT_HEIGHT
		}
		f, err := os.Open(cfg.BoardFile)
		if err != nil {
			return game.Board{}, fmt.Errorf("failed to open board file: %w", err)
		}
		defer f.Close()
		board, err := game.Parse(f, width, height)
		if err != nil {
			return game.Board{}, fmt.Errorf("failed to parse %s: %w", cfg.BoardFile, err)
		}
		return board, nil
	}
	if cfg.Benchmark != "" {
		return game.LoadBenchmark(cfg.Benchmark)
	}
	return game.Board{}, fmt.Errorf("no board selected: set BoardFile or Benchmark")
}

// runFirst reports the first clearance any line finds. The search keeps its
// own pace; once the latch closes the runner stops waiting and whatever is
// still queued is abandoned with the process.
func runFirst(cfg Config, board game.Board, prioritizer searcher.Prioritizer) Outcome {
	first := searcher.NewFirstSolution()
	progress := searcher.NewProgress(0)
	handler := searcher.Tee(first, progress)

	finished := make(chan struct{})
	var metrics searcher.Metrics
	go func() {
		defer close(finished)
		metrics = search(cfg, board, prioritizer, handler)
	}()

	outcome := Outcome{Board: board}
	select {
	case <-finished:
		outcome.Metrics = metrics
	case <-first.Done():
		log.Info().Msg("clearance found, abandoning the rest of the search")
	}
	if solution, ok := first.Solution(); ok {
		outcome.Solution = solution
		outcome.Score = searcher.Score(solution)
		outcome.Solved = true
	}
	return outcome
}

// runBest chases the best-scoring line under a BestScore policy and returns
// either when the policy stops (target met or patience spent) or when the
// searcher exhausts the tree, whichever comes first.
func runBest(cfg Config, board game.Board, prioritizer searcher.Prioritizer) Outcome {
	receiver := searcher.NewFirstSolution()
	var options []searcher.ScoreOption
	if cfg.Target > 0 {
		options = append(options, searcher.WithTarget(cfg.Target))
	}
	if cfg.Ceiling > 0 {
		options = append(options, searcher.WithCeiling(cfg.Ceiling))
	}
	if cfg.Patience > 0 {
		options = append(options, searcher.WithPatience(cfg.Patience))
	}
	policy := searcher.NewBestScore(receiver, options...)
	handler := searcher.Tee(policy, searcher.NewProgress(0))

	finished := make(chan struct{})
	var metrics searcher.Metrics
	go func() {
		defer close(finished)
		metrics = search(cfg, board, prioritizer, handler)
	}()

	outcome := Outcome{Board: board}
	select {
	case <-finished:
		// Exhausted without tripping a trigger: flush the best downstream.
		policy.Stop()
		outcome.Metrics = metrics
	case <-policy.Done():
		log.Info().Msg("score chase stopped, abandoning the rest of the search")
	}
	outcome.Solution, outcome.Score, outcome.Solved = policy.Best()
	return outcome
}

func search(cfg Config, board game.Board, prioritizer searcher.Prioritizer, handler searcher.Handler) searcher.Metrics {
	options := []searcher.Option{searcher.WithMoveLimit(cfg.MoveLimit)}
	if cfg.Metrics {
		options = append(options, searcher.WithMetrics())
	}
	if cfg.Goroutines > 0 {
		return searcher.NewParallel(prioritizer, handler, cfg.Goroutines, options...).Search(board)
	}
	return searcher.New(prioritizer, handler, options...).Search(board)
}
