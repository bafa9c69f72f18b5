package benchmark

import "time"

// Result represents the summary statistics of a single named benchmark.
// Values are in the unit reported by the harness, nanoseconds for Criterion.
type Result struct {
	Name      string    `json:"name"`
	Mean      float64   `json:"mean"`
	StdDev    float64   `json:"std_dev"`
	Median    float64   `json:"median"`
	Unit      string    `json:"unit"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// Run represents a collection of benchmark results from a single execution.
type Run struct {
	Timestamp  time.Time         `json:"timestamp"`
	Benchmarks map[string]Result `json:"benchmarks"`
}
