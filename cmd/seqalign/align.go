package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seqalign/seqalign-go/pkg/seqalign"
)

var globalCmd = &cobra.Command{
	Use:   "global ROW COL",
	Short: "Align two sequences over their full lengths (Needleman-Wunsch)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := settings()
		if err != nil {
			return err
		}

		result := seqalign.GlobalWith(args[0], args[1], cfg.Scoring.Scoring())
		fmt.Fprint(cmd.OutOrStdout(),
			seqalign.FormatGlobal(result, flagRowName, flagColName, cfg.Report.MaxWidth))
		return nil
	},
}

var localCmd = &cobra.Command{
	Use:   "local ROW COL",
	Short: "Find every best-scoring local alignment (Smith-Waterman)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := settings()
		if err != nil {
			return err
		}

		results := seqalign.LocalWith(args[0], args[1], cfg.Scoring.Scoring())
		fmt.Fprint(cmd.OutOrStdout(),
			seqalign.FormatLocals(results, flagRowName, flagColName, cfg.Report.MaxWidth))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(globalCmd)
	rootCmd.AddCommand(localCmd)
}
