// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/convert-case/internal/convert"
	"github.com/pdiddy/convert-case/pkg/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch <job.yaml>",
	Short: "Run the conversions listed in a YAML job file",
	Long: `Batch reads a YAML job file with default styles and a list of items, converts
every item, and prints per-item status and a summary. Use --out to save a
YAML report with every result.

Items without from/to use the job defaults, then the configured defaults.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}
	strict := cfg.Case.Strict
	if cmd.Flags().Changed("strict") {
		strict, _ = cmd.Flags().GetBool("strict")
	}

	jf, err := convert.ReadJobFile(args[0])
	if err != nil {
		return err
	}

	report := convert.RunJob(jf, cfg.Case, strict, cmd.OutOrStdout())

	if outPath, _ := cmd.Flags().GetString("out"); outPath != "" {
		if err := convert.WriteReport(outPath, report); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Report written to %s\n", outPath)
	}

	if cfg.History.Enabled {
		var entries []types.Entry
		for _, res := range report.Results {
			if res.Status != types.ConversionFailed {
				entries = append(entries, entryFor(res))
			}
		}
		if len(entries) > 0 {
			if err := recordHistory(historyContext(cmd), cfg.History, entries); err != nil {
				return err
			}
		}
	}

	if report.Summary.Failed > 0 {
		return fmt.Errorf("%d item(s) failed conversion", report.Summary.Failed)
	}
	return nil
}

func init() {
	batchCmd.Flags().String("out", "", "write a YAML report to this path")
	batchCmd.Flags().Bool("strict", false, "fail items with unknown styles instead of passing them through")

	rootCmd.AddCommand(batchCmd)
}
