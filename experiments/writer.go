package experiments

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer stores experiment records as CSV files under a per-invocation
// timestamped directory.
type Writer struct {
	baseDir string
}

// NewWriter creates the output directory for this invocation.
func NewWriter(dir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(dir, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

// WriteRecords stores one CSV row per run and returns the file path.
func (w *Writer) WriteRecords(records []Record) (string, error) {
	path := filepath.Join(w.baseDir, "runs.csv")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{
		"board", "strategy", "goroutines", "solved", "first_solve_ms",
		"best_score", "nodes", "dead_ends", "truncated", "duration_ms",
	}
	err = writer.Write(header)
	if err != nil {
		return "", fmt.Errorf("failed to write records header: %w", err)
	}

	for _, r := range records {
		row := []string{
			r.Board,
			r.Strategy,
			strconv.Itoa(r.Goroutines),
			strconv.FormatBool(r.Solved),
			strconv.FormatInt(r.FirstSolve.Milliseconds(), 10),
			strconv.Itoa(r.BestScore),
			strconv.FormatInt(r.Nodes, 10),
			strconv.FormatInt(r.DeadEnds, 10),
			strconv.FormatInt(r.Truncated, 10),
			strconv.FormatInt(r.Duration.Milliseconds(), 10),
		}
		err = writer.Write(row)
		if err != nil {
			return "", fmt.Errorf("failed to write record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("failed to flush records: %w", err)
	}
	return path, nil
}
