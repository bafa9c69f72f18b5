package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var trendLimit int

var trendCmd = &cobra.Command{
	Use:   "trend [benchmark]",
	Short: "Show recorded benchmark history",
	Long: `Reads the history store populated by 'benchgate visualize' and prints
the recorded means for a benchmark, oldest first, with the percentage change
between consecutive runs. Without an argument it lists the recorded
benchmark names.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTrend,
}

func init() {
	rootCmd.AddCommand(trendCmd)
	trendCmd.Flags().IntVar(&trendLimit, "limit", 20, "Maximum number of runs to show")
}

func runTrend(cmd *cobra.Command, args []string) error {
	store, err := historyStoreFactory(historyConfig(viper.GetString("output")))
	if err != nil {
		return fmt.Errorf("failed to open history store: %w", err)
	}
	defer store.Close()

	if len(args) == 0 {
		names, err := store.Names()
		if err != nil {
			return fmt.Errorf("failed to list benchmarks: %w", err)
		}
		if len(names) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No recorded benchmark runs. Run 'benchgate visualize' first.")
			return nil
		}
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	}

	name := args[0]
	samples, err := store.Samples(name, trendLimit)
	if err != nil {
		return fmt.Errorf("failed to load samples: %w", err)
	}
	if len(samples) == 0 {
		return fmt.Errorf("no recorded runs for %s", name)
	}

	// Samples come back newest first; display oldest first.
	for i, j := 0, len(samples)-1; i < j; i, j = i+1, j-1 {
		samples[i], samples[j] = samples[j], samples[i]
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "RECORDED\tMEAN\tMEDIAN\tCHANGE %")
	for i, s := range samples {
		change := "-"
		if i > 0 && samples[i-1].Mean != 0 {
			change = fmt.Sprintf("%+.2f%%", (s.Mean-samples[i-1].Mean)/samples[i-1].Mean*100)
		}
		fmt.Fprintf(w, "%s\t%.2f %s\t%.2f %s\t%s\n",
			s.RecordedAt.Format("2006-01-02 15:04:05"), s.Mean, s.Unit, s.Median, s.Unit, change)
	}
	return w.Flush()
}
