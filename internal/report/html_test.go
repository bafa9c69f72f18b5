package report

import (
	"testing"
	"time"

	"benchgate/internal/benchmark"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResults() map[string]benchmark.Result {
	return map[string]benchmark.Result{
		"cpu_usage/multi_pass/1000": {Name: "cpu_usage/multi_pass/1000", Mean: 2500, Median: 2490, StdDev: 30, Unit: "ns"},
		"cpu_usage/single_pass":     {Name: "cpu_usage/single_pass", Mean: 1200, Median: 1190, StdDev: 15, Unit: "ns"},
		"parsing/large_file":        {Name: "parsing/large_file", Mean: 5_000_000, Median: 4_900_000, StdDev: 100_000, Unit: "ns"},
		"standalone":                {Name: "standalone", Mean: 500, Median: 495, StdDev: 5, Unit: "ns"},
	}
}

func TestRenderHTML(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	html, err := RenderHTML(sampleResults(), now)
	require.NoError(t, err)

	assert.Contains(t, html, "<title>Benchmark Results</title>")
	assert.Contains(t, html, "Generated: 2026-03-14 12:00:00")

	// Category sections, alphabetical, with unsegmented names under Other.
	assert.Contains(t, html, "<h2>Cpu Usage</h2>")
	assert.Contains(t, html, "<h2>Parsing</h2>")
	assert.Contains(t, html, "<h2>Other</h2>")

	// Display names are the last path segment.
	assert.Contains(t, html, ">1000<")
	assert.Contains(t, html, ">single_pass<")

	// Summary panel with global fastest/slowest mean.
	assert.Contains(t, html, "500.00 ns")
	assert.Contains(t, html, "5.00 ms")
}

func TestRenderHTMLEmpty(t *testing.T) {
	html, err := RenderHTML(map[string]benchmark.Result{}, time.Now())
	require.NoError(t, err)
	assert.Contains(t, html, "N/A")
}

func TestRenderMarkdown(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	md := RenderMarkdown(sampleResults(), now)

	assert.Contains(t, md, "# Benchmark Results")
	assert.Contains(t, md, "**Generated:** 2026-03-14 12:00:00")
	assert.Contains(t, md, "- **Total Benchmarks:** 4")
	assert.Contains(t, md, "- **Categories:** 3")
	assert.Contains(t, md, "## Cpu Usage")
	assert.Contains(t, md, "| Benchmark | Mean | Median | Std Dev |")
	assert.Contains(t, md, "| large_file | 5.00 ms | 4.90 ms | 100.00 µs |")
	assert.Contains(t, md, "| standalone | 500.00 ns | 495.00 ns | 5.00 ns |")
}

func TestCategorize(t *testing.T) {
	cats := categorize(sampleResults())

	require.Len(t, cats, 3)
	assert.Equal(t, "cpu_usage", cats[0].Name)
	assert.Equal(t, "other", cats[1].Name)
	assert.Equal(t, "parsing", cats[2].Name)

	// Benchmarks within a category sorted by full name.
	require.Len(t, cats[0].Benchmarks, 2)
	assert.Equal(t, "cpu_usage/multi_pass/1000", cats[0].Benchmarks[0].Name)
}
