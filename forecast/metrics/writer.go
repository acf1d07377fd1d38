package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// SetupRecord is one cell of the planner's precomputed setup grid.
type SetupRecord struct {
	Vector        string
	Bonus         int
	Wins          int
	Losses        int
	WinLikelihood float64
	Score         float64
}

type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped subdirectory under root holding this run's
// exports.
func NewWriter(root string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create metrics directory: %w", err)
	}

	return &Writer{baseDir: baseDir}, nil
}

// WriteSetupGrid dumps the planner's full (vector, bonus) prediction table as
// CSV for offline inspection.
func (w *Writer) WriteSetupGrid(records []SetupRecord) error {
	path := filepath.Join(w.baseDir, "setup_grid.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create setup grid file: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	header := []string{"vector", "bonus", "wins", "losses", "win_likelihood", "score"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, r := range records {
		row := []string{
			r.Vector,
			strconv.Itoa(r.Bonus),
			strconv.Itoa(r.Wins),
			strconv.Itoa(r.Losses),
			strconv.FormatFloat(r.WinLikelihood, 'f', 4, 64),
			strconv.FormatFloat(r.Score, 'f', 4, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
