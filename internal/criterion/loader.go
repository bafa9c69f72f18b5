// Package criterion reads benchmark summaries from a Criterion output tree.
//
// Criterion writes one directory per benchmark containing an estimates.json
// file with nested point estimates:
//
//	{"mean": {"point_estimate": 123.4}, "std_dev": {...}, "median": {...}}
//
// Measurements live under a "base" grouping directory; "new" and "change"
// siblings hold transient data and are ignored.
package criterion

import (
	"encoding/json"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"benchgate/internal/benchmark"
)

const (
	estimatesFile = "estimates.json"
	baseSegment   = "base"
	defaultUnit   = "ns"
)

type pointEstimate struct {
	PointEstimate float64 `json:"point_estimate"`
}

// estimates mirrors the slice of Criterion's estimates.json we care about.
// Missing keys decode to zero values, deliberately lenient.
type estimates struct {
	Mean   pointEstimate `json:"mean"`
	StdDev pointEstimate `json:"std_dev"`
	Median pointEstimate `json:"median"`
}

// Load reads results from the immediate subdirectories of dir. Each
// subdirectory is one benchmark; its name is the benchmark name. The summary
// is read from <sub>/base/estimates.json, falling back to <sub>/estimates.json.
// A missing root directory yields an empty map, not an error.
func Load(dir string) (map[string]benchmark.Result, error) {
	results := make(map[string]benchmark.Result)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return results, nil
		}
		return nil, err
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		path := filepath.Join(dir, entry.Name(), baseSegment, estimatesFile)
		if _, err := os.Stat(path); err != nil {
			path = filepath.Join(dir, entry.Name(), estimatesFile)
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}

		est, err := readEstimates(path)
		if err != nil {
			slog.Warn("Failed to parse estimates file", "path", path, "error", err)
			continue
		}

		results[entry.Name()] = benchmark.Result{
			Name:   entry.Name(),
			Mean:   est.Mean.PointEstimate,
			StdDev: est.StdDev.PointEstimate,
			Median: est.Median.PointEstimate,
			Unit:   defaultUnit,
		}
	}
	return results, nil
}

// LoadTree reads results from every estimates.json found anywhere under dir.
// The benchmark name joins the path segments between dir and the file,
// excluding the trailing grouping segment and the filename, so
// cpu_usage/multi_pass/1000/base/estimates.json becomes
// "cpu_usage/multi_pass/1000". Only files under a "base" segment are kept;
// entries whose derived name would be empty are skipped. A missing root
// directory yields an empty map, not an error.
func LoadTree(dir string) (map[string]benchmark.Result, error) {
	results := make(map[string]benchmark.Result)

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return results, nil
	}

	loadedAt := time.Now()
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || d.Name() != estimatesFile {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		segments := strings.Split(filepath.ToSlash(rel), "/")

		// Name excludes the grouping segment and the filename itself.
		if len(segments) < 3 {
			return nil
		}
		if !containsSegment(segments, baseSegment) {
			return nil
		}
		name := strings.Join(segments[:len(segments)-2], "/")
		if name == "" {
			return nil
		}

		est, err := readEstimates(path)
		if err != nil {
			slog.Warn("Failed to parse estimates file", "path", path, "error", err)
			return nil
		}

		results[name] = benchmark.Result{
			Name:      name,
			Mean:      est.Mean.PointEstimate,
			StdDev:    est.StdDev.PointEstimate,
			Median:    est.Median.PointEstimate,
			Unit:      defaultUnit,
			Timestamp: loadedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

func readEstimates(path string) (estimates, error) {
	var est estimates
	data, err := os.ReadFile(path)
	if err != nil {
		return est, err
	}
	if err := json.Unmarshal(data, &est); err != nil {
		return est, err
	}
	return est, nil
}

func containsSegment(segments []string, want string) bool {
	for _, s := range segments {
		if s == want {
			return true
		}
	}
	return false
}
