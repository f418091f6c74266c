// Package sample generates deterministic example datasets so the pipeline
// can be exercised without real business data.
package sample

import (
	"encoding/csv"
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Options control dataset generation. The same seed always produces the
// same file.
type Options struct {
	Path     string
	Count    int
	Seed     int64
	Start    time.Time
	Progress bool
}

// DefaultOptions returns the generation parameters used by the sample data
// the analyzer ships with: one record per day starting 2024-01-01.
func DefaultOptions(path string) Options {
	return Options{
		Path:  path,
		Count: 1000,
		Seed:  42,
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

var statuses = []string{"Active", "Inactive", "New"}

// Generate writes a CSV dataset with every recognized column. Scores are
// uniform over their valid ranges, roughly 15% of records convert, and sales
// follow |N(50000, 15000)|.
func Generate(opts Options) error {
	if opts.Count <= 0 {
		return fmt.Errorf("record count must be positive, got %d", opts.Count)
	}

	dir := filepath.Dir(opts.Path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	f, err := os.Create(opts.Path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", opts.Path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{"date", "nps_score", "satisfaction_score", "converted", "visitors", "sales", "status"}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	var bar *progressbar.ProgressBar
	if opts.Progress {
		bar = progressbar.Default(int64(opts.Count))
	}

	for i := 0; i < opts.Count; i++ {
		date := opts.Start.AddDate(0, 0, i)
		sales := math.Abs(rng.NormFloat64()*15000 + 50000)
		row := []string{
			date.Format("2006-01-02"),
			strconv.Itoa(rng.Intn(11)),
			strconv.Itoa(1 + rng.Intn(5)),
			strconv.FormatBool(rng.Float64() < 0.15),
			strconv.Itoa(100 + rng.Intn(900)),
			strconv.FormatFloat(sales, 'f', 2, 64),
			statuses[rng.Intn(len(statuses))],
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", opts.Path, err)
	}
	return nil
}
