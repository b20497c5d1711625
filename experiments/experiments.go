// Package experiments compares move-ordering strategies across the
// benchmark catalogue: every strategy exhausts every board, sequentially and
// in parallel, and the runs land in a CSV for later analysis.
package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"samegame/game"
	"samegame/searcher"
)

// Record is one board x strategy x searcher-variant run.
type Record struct {
	Board      string
	Strategy   string
	Goroutines int // 0 = sequential
	Solved     bool
	FirstSolve time.Duration // zero if the board never cleared
	BestScore  int
	Nodes      int64
	DeadEnds   int64
	Truncated  int64
	Duration   time.Duration
}

var strategies = []struct {
	name        string
	prioritizer searcher.Prioritizer
}{
	{"scan", searcher.ScanOrder()},
	{"largest", searcher.LargestFirst()},
	{"smallest", searcher.SmallestFirst()},
	{"reverse", searcher.Reversed(searcher.ScanOrder())},
	{"shuffle", searcher.Shuffled(1)},
}

// DefaultBoards is the slice of the catalogue small enough to exhaust
// comfortably.
func DefaultBoards() []string {
	return []string{"pair", "tiny", "checker", "stripes", "quad"}
}

// RunComparison runs the full suite and stores the records under outDir.
func RunComparison(boards []string, goroutines int, outDir string) {
	log.Info().Msgf("starting prioritizer comparison over %d boards...", len(boards))

	records, err := ComparePrioritizers(boards, goroutines)
	if err != nil {
		panic(fmt.Sprintf("failed to run prioritizer comparison: %v", err))
	}

	writer, err := NewWriter(outDir)
	if err != nil {
		panic(fmt.Sprintf("failed to create experiment writer: %v", err))
	}
	path, err := writer.WriteRecords(records)
	if err != nil {
		panic(fmt.Sprintf("failed to store records: %v", err))
	}
	log.Info().Msgf("completed prioritizer comparison, %d records stored in %s", len(records), path)
}

// ComparePrioritizers exhausts every named benchmark board under every
// strategy, sequentially and - when goroutines > 0 - in parallel, and
// returns one record per run. Runs happen one at a time so the timings are
// not fighting each other for cores.
func ComparePrioritizers(boards []string, goroutines int) ([]Record, error) {
	var records []Record
	for _, name := range boards {
		board, err := game.LoadBenchmark(name)
		if err != nil {
			return nil, err
		}
		for _, strategy := range strategies {
			records = append(records, run(name, board, strategy.name, strategy.prioritizer, 0))
			if goroutines > 0 {
				records = append(records, run(name, board, strategy.name, strategy.prioritizer, goroutines))
			}
		}
	}
	return records, nil
}

// run exhausts one board under one strategy. A BestScore policy with no
// triggers rides along purely to observe the best line; Stop after the
// search flushes it.
func run(boardName string, board game.Board, strategyName string, prioritizer searcher.Prioritizer, goroutines int) Record {
	best := searcher.NewBestScore(noopHandler{})
	progress := searcher.NewProgress(0)
	handler := searcher.Tee(best, progress)

	var metrics searcher.Metrics
	if goroutines > 0 {
		metrics = searcher.NewParallel(prioritizer, handler, goroutines, searcher.WithMetrics()).Search(board)
	} else {
		metrics = searcher.New(prioritizer, handler, searcher.WithMetrics()).Search(board)
	}
	best.Stop()

	_, score, solved := best.Best()
	record := Record{
		Board:      boardName,
		Strategy:   strategyName,
		Goroutines: goroutines,
		Solved:     solved,
		BestScore:  score,
		Nodes:      metrics.Nodes,
		DeadEnds:   metrics.DeadEnds,
		Truncated:  metrics.Truncated,
		Duration:   metrics.Duration,
	}
	if firstSolve, ok := progress.FirstSolveIn(); ok {
		record.FirstSolve = firstSolve
	}

	log.Info().
		Str("board", boardName).
		Str("strategy", strategyName).
		Int("goroutines", goroutines).
		Bool("solved", record.Solved).
		Int("best", record.BestScore).
		Int64("nodes", record.Nodes).
		Dur("took", record.Duration).
		Msg("completed run")
	return record
}

type noopHandler struct{}

func (noopHandler) Handle(game.MoveSequence)     {}
func (noopHandler) HandleDead(game.MoveSequence) {}
