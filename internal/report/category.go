package report

import (
	"sort"
	"strings"

	"benchgate/internal/benchmark"
)

// Category groups benchmarks by the first path segment of their name.
type Category struct {
	Name       string
	Benchmarks []benchmark.Result
}

// categorize splits results into categories keyed by the first "/" segment of
// the benchmark name, or "other" for unsegmented names. Categories and the
// benchmarks within them come back alphabetically sorted.
func categorize(results map[string]benchmark.Result) []Category {
	grouped := make(map[string][]benchmark.Result)
	for name, r := range results {
		category := "other"
		if idx := strings.Index(name, "/"); idx > 0 {
			category = name[:idx]
		}
		grouped[category] = append(grouped[category], r)
	}

	categories := make([]Category, 0, len(grouped))
	for name, benchmarks := range grouped {
		sort.Slice(benchmarks, func(i, j int) bool {
			return benchmarks[i].Name < benchmarks[j].Name
		})
		categories = append(categories, Category{Name: name, Benchmarks: benchmarks})
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Name < categories[j].Name
	})
	return categories
}

// displayName returns the last path segment of a benchmark name.
func displayName(name string) string {
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		return name[idx+1:]
	}
	return name
}

// categoryTitle turns "cpu_usage" into "Cpu Usage" for section headings.
func categoryTitle(name string) string {
	words := strings.Split(strings.ReplaceAll(name, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
