// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/convert-case/internal/convert"
	"github.com/pdiddy/convert-case/internal/history"
	"github.com/pdiddy/convert-case/pkg/casing"
	"github.com/pdiddy/convert-case/pkg/types"
)

var (
	convertFrom casing.Style
	convertTo   casing.Style
)

var convertCmd = &cobra.Command{
	Use:   "convert [text...]",
	Short: "Convert text from one capitalization style to another",
	Long: `Convert rewrites each argument from the source style to the target style
and prints one result per line. With no arguments it reads stdin and converts
each line.

Styles default to the case.from and case.to configuration values. Unknown
styles from configuration pass input through unchanged unless --strict is set.`,
	Example: `  convert-case convert --from camel --to snake userId createdAt
  echo "order total" | convert-case convert -t pascal`,
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}
	caseCfg := caseConfig(cmd, cfg.Case)
	conv := convert.ForMode(caseCfg.Strict)

	var entries []types.Entry
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		summary, err := convert.ConvertLines(conv, cmd.InOrStdin(), caseCfg, out, cmd.ErrOrStderr(),
			func(res types.ItemResult) {
				if res.Status != types.ConversionFailed {
					entries = append(entries, entryFor(res))
				}
			})
		if err != nil {
			return err
		}
		if summary.HasFailures() {
			return fmt.Errorf("%d line(s) failed conversion", summary.Failed)
		}
	} else {
		for _, arg := range args {
			res := convert.ConvertItem(conv, types.Item{Input: arg}, caseCfg)
			if res.Status == types.ConversionFailed {
				return fmt.Errorf("converting %q: %s", arg, res.Error)
			}
			fmt.Fprintln(out, res.Output)
			entries = append(entries, entryFor(res))
		}
	}

	if !cfg.History.Enabled || len(entries) == 0 {
		return nil
	}
	return recordHistory(historyContext(cmd), cfg.History, entries)
}

// caseConfig overlays explicitly set --from, --to and --strict flags on the
// configured defaults.
func caseConfig(cmd *cobra.Command, base types.CaseConfig) types.CaseConfig {
	cfg := base
	if cmd.Flags().Changed("from") {
		cfg.From = convertFrom.String()
	}
	if cmd.Flags().Changed("to") {
		cfg.To = convertTo.String()
	}
	if cmd.Flags().Changed("strict") {
		cfg.Strict, _ = cmd.Flags().GetBool("strict")
	}
	return cfg
}

func recordHistory(ctx context.Context, cfg types.HistoryConfig, entries []types.Entry) error {
	store, err := history.NewStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.RecordAll(ctx, entries); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Recorded %d conversion(s) in %s\n", len(entries), store.Dir())
	return nil
}

func entryFor(res types.ItemResult) types.Entry {
	return types.Entry{Input: res.Input, Output: res.Output, From: res.From, To: res.To}
}

func init() {
	addStyleFlags(convertCmd, &convertFrom, &convertTo)
	convertCmd.Flags().Bool("strict", false, "fail on unknown styles instead of passing input through")

	rootCmd.AddCommand(convertCmd)
}
