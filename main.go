package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"samegame/experiments"
	"samegame/game"
	"samegame/runner"
)

func main() {
	godotenv.Load()
	logLevel, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		log.Fatal().Msgf("invalid LOG_LEVEL: %v", err)
	}
	zerolog.SetGlobalLevel(logLevel)

	var (
		bench      = flag.String("bench", getEnv("SAMEGAME_BENCH", "tiny"), "benchmark board name (see -list)")
		boardFile  = flag.String("board", "", "board text file, overrides -bench")
		width      = flag.Int("width", game.DEFAULT_WIDTH, "board file width")
		height     = flag.Int("height", game.DEFAULT_HEIGHT, "board file height")
		strategy   = flag.String("strategy", getEnv("SAMEGAME_STRATEGY", "largest"), "move ordering: scan, largest, smallest, reverse, shuffle")
		seed       = flag.Uint64("seed", 1, "shuffle strategy seed")
		mode       = flag.String("mode", "first", "first: report the first clearance; best: chase high scores")
		goroutines = flag.Int("goroutines", 0, "parallel searcher goroutines, 0 = sequential")
		moveLimit  = flag.Int("max-moves", game.MOVE_LIMIT, "line depth bound")
		target     = flag.Int("target", 0, "best mode: stop once a line scores above this")
		ceiling    = flag.Int("ceiling", 0, "best mode: aberrant score bound, 0 = default")
		patience   = flag.Duration("patience", 0, "best mode: stop after this long without improvement")
		runSuite   = flag.Bool("experiments", false, "run the strategy comparison suite and exit")
		outDir     = flag.String("out", "results", "experiments output directory")
		list       = flag.Bool("list", false, "list benchmark boards and exit")
	)
	flag.Parse()

	if *list {
		for _, name := range game.BenchmarkNames() {
			fmt.Println(name)
		}
		return
	}

	if *runSuite {
		experiments.RunComparison(experiments.DefaultBoards(), *goroutines, *outDir)
		return
	}

	outcome, err := runner.Run(runner.Config{
		BoardFile:  *boardFile,
		Benchmark:  *bench,
		Width:      *width,
		Height:     *height,
		Strategy:   *strategy,
		Seed:       *seed,
		Mode:       *mode,
		Goroutines: *goroutines,
		MoveLimit:  *moveLimit,
		Target:     *target,
		Ceiling:    *ceiling,
		Patience:   *patience,
		Metrics:    true,
	})
	if err != nil {
		log.Fatal().Msgf("search failed: %v", err)
	}
	report(outcome)
}

func report(outcome runner.Outcome) {
	switch {
	case outcome.Solved:
		log.Info().
			Int("score", outcome.Score).
			Int("moves", outcome.Solution.Len()).
			Msgf("solution: %v", outcome.Solution)
	case outcome.Solution.Len() > 0:
		log.Info().
			Int("score", outcome.Score).
			Msgf("best line, board not cleared: %v", outcome.Solution)
	default:
		log.Info().Msg("no clearance found")
	}
	if m := outcome.Metrics; m.Nodes > 0 {
		log.Info().
			Int64("nodes", m.Nodes).
			Int64("deadEnds", m.DeadEnds).
			Int64("truncated", m.Truncated).
			Dur("took", m.Duration).
			Msgf("visited %.0f positions/s", m.NodesPerSecond())
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
