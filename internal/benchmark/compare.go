package benchmark

import "sort"

// Classification describes how a benchmark changed relative to the baseline.
type Classification string

const (
	Regression  Classification = "regression"
	Improvement Classification = "improvement"
	Stable      Classification = "stable"
	New         Classification = "new"
	Missing     Classification = "missing"
)

// DefaultThreshold is the regression threshold percentage used when none is
// configured.
const DefaultThreshold = 5.0

// Comparison pairs a baseline and a current result for one benchmark name.
// Exactly one of Baseline/Current is nil for New and Missing entries.
type Comparison struct {
	Name          string
	Baseline      *Result
	Current       *Result
	ChangePercent float64
	Change        Classification
}

// Classify maps a percentage change onto a classification. The boundary rule
// is: stable iff |change| < threshold, regression iff change >= threshold,
// improvement iff change <= -threshold. A change exactly at the threshold is
// therefore never stable.
func Classify(change, threshold float64) Classification {
	switch {
	case change >= threshold:
		return Regression
	case change <= -threshold:
		return Improvement
	default:
		return Stable
	}
}

// Compare pairs up baseline and current results by name and classifies each
// pair. The returned slice covers the union of both key sets, ordered
// lexicographically by name. Benchmarks present on only one side are reported
// as New (current only) or Missing (baseline only) with a zero change.
func Compare(baseline, current map[string]Result, threshold float64) []Comparison {
	names := make([]string, 0, len(baseline)+len(current))
	seen := make(map[string]bool, len(baseline)+len(current))
	for name := range baseline {
		names = append(names, name)
		seen[name] = true
	}
	for name := range current {
		if !seen[name] {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	comparisons := make([]Comparison, 0, len(names))
	for _, name := range names {
		base, hasBase := baseline[name]
		curr, hasCurr := current[name]

		switch {
		case hasBase && hasCurr:
			change := 0.0
			if base.Mean != 0 {
				change = (curr.Mean - base.Mean) / base.Mean * 100
			}
			comparisons = append(comparisons, Comparison{
				Name:          name,
				Baseline:      &base,
				Current:       &curr,
				ChangePercent: change,
				Change:        Classify(change, threshold),
			})
		case hasCurr:
			comparisons = append(comparisons, Comparison{
				Name:    name,
				Current: &curr,
				Change:  New,
			})
		default:
			comparisons = append(comparisons, Comparison{
				Name:     name,
				Baseline: &base,
				Change:   Missing,
			})
		}
	}
	return comparisons
}

// HasRegressions reports whether any comparison is classified as a regression.
// It drives the process exit code so the tool composes with CI gating.
func HasRegressions(comparisons []Comparison) bool {
	for _, c := range comparisons {
		if c.Change == Regression {
			return true
		}
	}
	return false
}
