package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"benchgate/internal/benchmark"
	"benchgate/internal/history"
	"benchgate/internal/telemetry"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var exit = os.Exit
var cfgFile string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "benchgate",
	Short: "Benchmark regression gating and reporting",
	Long: `benchgate reads Criterion benchmark output, detects performance
regressions against a saved baseline, and renders HTML, Markdown and JSON
reports. It exits nonzero when regressions exceed the configured threshold,
so it slots directly into CI pipelines as a performance gate.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().String("log-file", "", "Also write logs as JSON to this file")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("log_file", rootCmd.PersistentFlags().Lookup("log-file"))
}

// initConfig reads in the config file and environment variables if set.
func initConfig() {
	// explicit .env loading; missing files are fine
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("BENCHGATE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("threshold", benchmark.DefaultThreshold)
	viper.SetDefault("baseline", filepath.Join("target", "criterion-baseline"))
	viper.SetDefault("current", filepath.Join("target", "criterion"))
	viper.SetDefault("criterion_dir", filepath.Join("target", "criterion"))
	viper.SetDefault("output", filepath.Join("target", "benchmark-reports"))
	viper.SetDefault("history.backend", "sqlite")
	viper.SetDefault("history.dsn", "")
	viper.SetDefault("slack.webhook_url", "")

	// A missing config file is not an error; flags and env still apply.
	_ = viper.ReadInConfig()

	telemetry.InitLogger(viper.GetBool("verbose"), viper.GetString("log_file"))
}

// historyConfig resolves the history backend configuration, defaulting the
// SQLite database file into the report output directory.
func historyConfig(outputDir string) history.Config {
	cfg := history.Config{
		Backend: viper.GetString("history.backend"),
		DSN:     viper.GetString("history.dsn"),
	}
	if cfg.DSN == "" {
		switch strings.ToLower(cfg.Backend) {
		case "", "sqlite", "sqlite3":
			cfg.DSN = filepath.Join(outputDir, "history.db")
		}
	}
	return cfg
}
