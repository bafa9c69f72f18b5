package main

import (
	"fmt"
	"log/slog"
	"os"

	"benchgate/internal/benchmark"
	"benchgate/internal/criterion"
	"benchgate/internal/notify"
	"benchgate/internal/report"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	analyzeBaseline  string
	analyzeCurrent   string
	analyzeThreshold float64
	analyzeNotify    bool
)

// notifierFactory allows mocking the Slack notifier in tests.
var notifierFactory = func(webhookURL string) notify.Notifier {
	return notify.NewSlackNotifier(webhookURL)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Detect performance regressions against a baseline",
	Long: `Loads Criterion results from a baseline and a current directory,
pairs benchmarks by name, and classifies each as regression, improvement,
stable, new or missing based on the percentage change of the mean.

Exits 1 when regressions are found, when a required input directory is
missing, or when neither side contains any benchmark data.`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVar(&analyzeBaseline, "baseline", "", "Path to baseline criterion directory")
	analyzeCmd.Flags().StringVar(&analyzeCurrent, "current", "", "Path to current criterion directory")
	analyzeCmd.Flags().Float64Var(&analyzeThreshold, "threshold", 0, "Regression threshold percentage")
	analyzeCmd.Flags().BoolVar(&analyzeNotify, "notify", false, "Post a Slack alert when regressions are found")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	baselineDir := analyzeBaseline
	if baselineDir == "" {
		baselineDir = viper.GetString("baseline")
	}
	currentDir := analyzeCurrent
	if currentDir == "" {
		currentDir = viper.GetString("current")
	}
	threshold := analyzeThreshold
	if !cmd.Flags().Changed("threshold") {
		threshold = viper.GetFloat64("threshold")
	}

	if _, err := os.Stat(baselineDir); os.IsNotExist(err) {
		return fmt.Errorf("baseline directory not found: %s (capture a baseline first)", baselineDir)
	}
	if _, err := os.Stat(currentDir); os.IsNotExist(err) {
		return fmt.Errorf("current directory not found: %s (run benchmarks first)", currentDir)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Loading baseline results...")
	baseline, err := criterion.Load(baselineDir)
	if err != nil {
		return fmt.Errorf("failed to load baseline results: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d baseline benchmarks\n", len(baseline))

	fmt.Fprintln(cmd.OutOrStdout(), "Loading current results...")
	current, err := criterion.Load(currentDir)
	if err != nil {
		return fmt.Errorf("failed to load current results: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d current benchmarks\n", len(current))

	if len(baseline) == 0 && len(current) == 0 {
		return fmt.Errorf("no benchmark results found")
	}

	comparisons := benchmark.Compare(baseline, current, threshold)
	report.WriteComparison(cmd.OutOrStdout(), comparisons, threshold)

	if !benchmark.HasRegressions(comparisons) {
		fmt.Fprintln(cmd.OutOrStdout(), "\nNo performance regressions detected")
		return nil
	}

	if analyzeNotify {
		notifyRegressions(cmd, comparisons, threshold)
	}
	return fmt.Errorf("performance regressions detected")
}

func notifyRegressions(cmd *cobra.Command, comparisons []benchmark.Comparison, threshold float64) {
	webhookURL := viper.GetString("slack.webhook_url")
	if webhookURL == "" {
		slog.Warn("Slack webhook URL not configured, skipping notification")
		return
	}

	summary := report.Summarize(comparisons)
	message := fmt.Sprintf("benchgate: %d of %d benchmarks regressed beyond ±%.1f%%",
		summary.Regressions, summary.Total, threshold)

	if err := notifierFactory(webhookURL).Notify(cmd.Context(), message); err != nil {
		slog.Warn("Failed to send regression notification", "error", err)
	}
}
