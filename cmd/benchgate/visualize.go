package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"benchgate/internal/benchmark"
	"benchgate/internal/criterion"
	"benchgate/internal/history"
	"benchgate/internal/report"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	visualizeDir     string
	visualizeOutput  string
	visualizeFormat  string
	visualizePreview bool
)

// historyStoreFactory allows mocking the history backend in tests.
var historyStoreFactory = history.NewStore

var visualizeCmd = &cobra.Command{
	Use:   "visualize",
	Short: "Generate HTML, Markdown and JSON benchmark reports",
	Long: `Recursively loads every estimates.json under the criterion directory
and renders reports into the output directory: index.html, report.md, a
latest.json snapshot and an append-only history.jsonl log. Each run is also
recorded into the history store used by 'benchgate trend'.`,
	RunE: runVisualize,
}

func init() {
	rootCmd.AddCommand(visualizeCmd)
	visualizeCmd.Flags().StringVar(&visualizeDir, "criterion-dir", "", "Path to criterion directory")
	visualizeCmd.Flags().StringVarP(&visualizeOutput, "output", "o", "", "Output directory for reports")
	visualizeCmd.Flags().StringVarP(&visualizeFormat, "format", "f", "all", "Output format (html, markdown, json, all)")
	visualizeCmd.Flags().BoolVar(&visualizePreview, "preview", false, "Render the Markdown report to the terminal")
}

func runVisualize(cmd *cobra.Command, args []string) error {
	criterionDir := visualizeDir
	if criterionDir == "" {
		criterionDir = viper.GetString("criterion_dir")
	}
	outputDir := visualizeOutput
	if outputDir == "" {
		outputDir = viper.GetString("output")
	}

	switch visualizeFormat {
	case "html", "markdown", "json", "all":
	default:
		return fmt.Errorf("unsupported format: %s (expected html, markdown, json or all)", visualizeFormat)
	}

	if _, err := os.Stat(criterionDir); os.IsNotExist(err) {
		return fmt.Errorf("criterion directory not found: %s (run benchmarks first)", criterionDir)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Loading benchmark results from %s...\n", criterionDir)
	results, err := criterion.LoadTree(criterionDir)
	if err != nil {
		return fmt.Errorf("failed to load benchmark results: %w", err)
	}
	if len(results) == 0 {
		return fmt.Errorf("no benchmark results found")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d benchmarks\n", len(results))

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	now := time.Now()
	run := benchmark.Run{Timestamp: now, Benchmarks: results}

	if visualizeFormat == "html" || visualizeFormat == "all" {
		html, err := report.RenderHTML(results, now)
		if err != nil {
			return err
		}
		htmlFile := filepath.Join(outputDir, "index.html")
		if err := os.WriteFile(htmlFile, []byte(html), 0644); err != nil {
			return fmt.Errorf("failed to write HTML report: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "HTML report: %s\n", htmlFile)
	}

	if visualizeFormat == "markdown" || visualizeFormat == "all" {
		md := report.RenderMarkdown(results, now)
		mdFile := filepath.Join(outputDir, "report.md")
		if err := os.WriteFile(mdFile, []byte(md), 0644); err != nil {
			return fmt.Errorf("failed to write Markdown report: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Markdown report: %s\n", mdFile)

		if visualizePreview {
			previewMarkdown(cmd, md)
		}
	}

	if visualizeFormat == "json" || visualizeFormat == "all" {
		store, err := benchmark.NewFileStore(outputDir)
		if err != nil {
			return err
		}
		if err := store.SaveSnapshot(run); err != nil {
			return fmt.Errorf("failed to save snapshot: %w", err)
		}
		if err := store.AppendHistory(run); err != nil {
			return fmt.Errorf("failed to append history: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "JSON results: %s\n", store.SnapshotPath())
		fmt.Fprintf(cmd.OutOrStdout(), "Appended to history: %s\n", store.HistoryPath())
	}

	recordHistory(run, outputDir)

	fmt.Fprintf(cmd.OutOrStdout(), "\nAll reports generated in %s\n", outputDir)
	return nil
}

// recordHistory stores the run in the trend database. Failures are warnings;
// the on-disk reports remain the canonical output.
func recordHistory(run benchmark.Run, outputDir string) {
	store, err := historyStoreFactory(historyConfig(outputDir))
	if err != nil {
		slog.Warn("Failed to open history store", "error", err)
		return
	}
	defer store.Close()

	if err := store.RecordRun(run); err != nil {
		slog.Warn("Failed to record run in history store", "error", err)
	}
}

func previewMarkdown(cmd *cobra.Command, md string) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), md)
		return
	}
	out, err := renderer.Render(md)
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), md)
		return
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
}
