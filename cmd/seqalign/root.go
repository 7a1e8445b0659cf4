package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/seqalign/seqalign-go/config"
)

var (
	flagConfig   string
	flagMatch    int64
	flagMismatch int64
	flagGap      int64
	flagWidth    int
	flagRowName  string
	flagColName  string
)

// rootCmd represents the base command when called without any
// subcommands.
var rootCmd = &cobra.Command{
	Use:     "seqalign",
	Short:   "Optimal pairwise sequence alignment (Needleman-Wunsch and Smith-Waterman)",
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and runs it.
// This is called by main.main() and only needs to happen once.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		slog.New(slog.NewTextHandler(os.Stderr, nil)).Error("seqalign", "error", err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagConfig, "config", "c", "", "optional YAML config file")
	pf.Int64Var(&flagMatch, "match", 1, "weight added per matching symbol pair")
	pf.Int64Var(&flagMismatch, "mismatch", -1, "weight added per mismatching symbol pair")
	pf.Int64Var(&flagGap, "gap", -2, "weight added per gap")
	pf.IntVarP(&flagWidth, "width", "w", 80, "report width in columns")
	pf.StringVar(&flagRowName, "row-name", "", "display name for the row sequence")
	pf.StringVar(&flagColName, "col-name", "", "display name for the column sequence")
}

// settings layers explicit command-line flags over the config file and
// its defaults.
func settings() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	pf := rootCmd.PersistentFlags()
	if pf.Changed("match") {
		cfg.Scoring.Match = flagMatch
	}
	if pf.Changed("mismatch") {
		cfg.Scoring.Mismatch = flagMismatch
	}
	if pf.Changed("gap") {
		cfg.Scoring.Gap = flagGap
	}
	if pf.Changed("width") {
		cfg.Report.MaxWidth = flagWidth
	}
	return cfg, nil
}
