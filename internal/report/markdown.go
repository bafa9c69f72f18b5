package report

import (
	"fmt"
	"strings"
	"time"

	"benchgate/internal/benchmark"
)

// RenderMarkdown produces the Markdown report: a header with generation time
// and totals, then one table per category.
func RenderMarkdown(results map[string]benchmark.Result, now time.Time) string {
	categories := categorize(results)

	var sb strings.Builder
	sb.WriteString("# Benchmark Results\n\n")
	fmt.Fprintf(&sb, "**Generated:** %s\n\n", now.Format("2006-01-02 15:04:05"))
	sb.WriteString("## Summary\n\n")
	fmt.Fprintf(&sb, "- **Total Benchmarks:** %d\n", len(results))
	fmt.Fprintf(&sb, "- **Categories:** %d\n", len(categories))

	for _, cat := range categories {
		fmt.Fprintf(&sb, "\n## %s\n\n", categoryTitle(cat.Name))
		sb.WriteString("| Benchmark | Mean | Median | Std Dev |\n")
		sb.WriteString("|-----------|------|--------|---------|\n")
		for _, b := range cat.Benchmarks {
			fmt.Fprintf(&sb, "| %s | %s | %s | %s |\n",
				displayName(b.Name), FormatTime(b.Mean), FormatTime(b.Median), FormatTime(b.StdDev))
		}
	}
	return sb.String()
}
