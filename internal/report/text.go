package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"benchgate/internal/benchmark"
)

// Summary holds per-classification counts for a comparison run.
type Summary struct {
	Total        int
	Regressions  int
	Improvements int
	Stable       int
	New          int
	Missing      int
}

// Summarize counts comparisons per classification.
func Summarize(comparisons []benchmark.Comparison) Summary {
	s := Summary{Total: len(comparisons)}
	for _, c := range comparisons {
		switch c.Change {
		case benchmark.Regression:
			s.Regressions++
		case benchmark.Improvement:
			s.Improvements++
		case benchmark.Stable:
			s.Stable++
		case benchmark.New:
			s.New++
		case benchmark.Missing:
			s.Missing++
		}
	}
	return s
}

// WriteComparison renders the full regression analysis report to w.
// Regressions are listed worst-first, improvements most-improved-first.
func WriteComparison(w io.Writer, comparisons []benchmark.Comparison, threshold float64) {
	summary := Summarize(comparisons)
	rule := strings.Repeat("=", 80)

	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, titleStyle.Render("BENCHMARK REGRESSION ANALYSIS"))
	fmt.Fprintln(w, rule)

	fmt.Fprintln(w)
	fmt.Fprintln(w, sectionStyle.Render("Summary:"))
	fmt.Fprintf(w, "  Total benchmarks:  %d\n", summary.Total)
	fmt.Fprintf(w, "  Regressions:       %d\n", summary.Regressions)
	fmt.Fprintf(w, "  Improvements:      %d\n", summary.Improvements)
	fmt.Fprintf(w, "  Stable:            %d\n", summary.Stable)
	fmt.Fprintf(w, "  New:               %d\n", summary.New)
	fmt.Fprintf(w, "  Missing:           %d\n", summary.Missing)
	fmt.Fprintf(w, "  Threshold:         ±%.1f%%\n", threshold)

	regressions := filterByChange(comparisons, benchmark.Regression)
	improvements := filterByChange(comparisons, benchmark.Improvement)
	added := filterByChange(comparisons, benchmark.New)
	missing := filterByChange(comparisons, benchmark.Missing)

	// Worst regression first.
	sort.SliceStable(regressions, func(i, j int) bool {
		return regressions[i].ChangePercent > regressions[j].ChangePercent
	})
	// Biggest improvement first.
	sort.SliceStable(improvements, func(i, j int) bool {
		return improvements[i].ChangePercent < improvements[j].ChangePercent
	})

	if len(regressions) > 0 {
		writeSectionHeader(w, "REGRESSIONS (slower performance):")
		for _, c := range regressions {
			fmt.Fprintf(w, "  %s\n", regressionStyle.Render(c.Name))
			fmt.Fprintf(w, "     Baseline: %s\n", FormatTime(c.Baseline.Mean))
			fmt.Fprintf(w, "     Current:  %s\n", FormatTime(c.Current.Mean))
			fmt.Fprintf(w, "     Change:   +%.2f%% (slower)\n\n", c.ChangePercent)
		}
	}

	if len(improvements) > 0 {
		writeSectionHeader(w, "IMPROVEMENTS (faster performance):")
		for _, c := range improvements {
			fmt.Fprintf(w, "  %s\n", improvementStyle.Render(c.Name))
			fmt.Fprintf(w, "     Baseline: %s\n", FormatTime(c.Baseline.Mean))
			fmt.Fprintf(w, "     Current:  %s\n", FormatTime(c.Current.Mean))
			fmt.Fprintf(w, "     Change:   %.2f%% (faster)\n\n", c.ChangePercent)
		}
	}

	if len(added) > 0 {
		writeSectionHeader(w, "NEW BENCHMARKS:")
		for _, c := range added {
			fmt.Fprintf(w, "  %s: %s\n", c.Name, FormatTime(c.Current.Mean))
		}
	}

	if len(missing) > 0 {
		writeSectionHeader(w, "MISSING BENCHMARKS:")
		for _, c := range missing {
			fmt.Fprintf(w, "  %s: %s (baseline)\n", mutedStyle.Render(c.Name), FormatTime(c.Baseline.Mean))
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
}

func writeSectionHeader(w io.Writer, title string) {
	rule := strings.Repeat("-", 80)
	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, sectionStyle.Render(title))
	fmt.Fprintln(w, rule)
}

func filterByChange(comparisons []benchmark.Comparison, change benchmark.Classification) []benchmark.Comparison {
	var out []benchmark.Comparison
	for _, c := range comparisons {
		if c.Change == change {
			out = append(out, c)
		}
	}
	return out
}
