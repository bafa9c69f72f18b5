package history

import (
	"time"

	"benchgate/internal/benchmark"
)

// Sample is one recorded measurement of a benchmark from a past run.
type Sample struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Mean       float64   `json:"mean"`
	Median     float64   `json:"median"`
	StdDev     float64   `json:"std_dev"`
	Unit       string    `json:"unit"`
	RecordedAt time.Time `json:"recorded_at"`
}

// Store defines the methods for the benchmark history backend.
type Store interface {
	Close() error
	RecordRun(run benchmark.Run) error
	// Samples returns up to limit samples for the named benchmark,
	// newest first.
	Samples(name string, limit int) ([]Sample, error)
	// Names lists all benchmark names present in the store.
	Names() ([]string, error)
}
