// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/convert-case/internal/history"
	"github.com/pdiddy/convert-case/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect the conversion journal (list, search, export, clear)",
	Long: `History reads the SQLite journal written when conversions run with
--history or history.enabled in the configuration.`,
}

// --- list subcommand ---

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the most recent conversions",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openHistory()
		if err != nil {
			return err
		}
		defer store.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		entries, err := store.Recent(historyContext(cmd), limit)
		if err != nil {
			return err
		}
		jsonOutput, _ := cmd.Flags().GetBool("json")
		return formatEntries(cmd.OutOrStdout(), entries, jsonOutput)
	},
}

// --- search subcommand ---

var historySearchCmd = &cobra.Command{
	Use:   "search [text]",
	Short: "Find conversions by text or style",
	Long: `Search matches entries whose input or output contains the given text,
optionally filtered by source and target style.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := historyQueryFromFlags(cmd, args)
		if opts.IsEmpty() {
			return fmt.Errorf("search text or filter required: provide text, --from, or --to")
		}

		store, err := openHistory()
		if err != nil {
			return err
		}
		defer store.Close()

		entries, err := store.Search(historyContext(cmd), opts)
		if err != nil {
			return err
		}
		jsonOutput, _ := cmd.Flags().GetBool("json")
		return formatEntries(cmd.OutOrStdout(), entries, jsonOutput)
	},
}

// --- export subcommand ---

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the journal to YAML or JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")

		store, err := openHistory()
		if err != nil {
			return err
		}
		defer store.Close()

		opts := historyQueryFromFlags(cmd, args)
		outPath, _ := cmd.Flags().GetString("out")
		if outPath == "" {
			return exportHistory(historyContext(cmd), store, cmd.OutOrStdout(), format, opts)
		}

		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating export file: %w", err)
		}
		if err := exportHistory(historyContext(cmd), store, f, format, opts); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("closing export file: %w", err)
		}
		return nil
	},
}

func exportHistory(ctx context.Context, store *history.Store, w io.Writer, format string, opts history.QueryOptions) error {
	switch format {
	case "yaml", "":
		return store.ExportYAML(ctx, w, opts)
	case "json":
		return store.ExportJSON(ctx, w, opts)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
}

// --- clear subcommand ---

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every journal entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openHistory()
		if err != nil {
			return err
		}
		defer store.Close()

		n, err := store.Clear(historyContext(cmd))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %d entries\n", n)
		return nil
	},
}

// --- shared helpers ---

func openHistory() (*history.Store, error) {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return nil, err
	}
	return history.NewStore(cfg.History)
}

func historyContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func historyQueryFromFlags(cmd *cobra.Command, args []string) history.QueryOptions {
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	limit, _ := cmd.Flags().GetInt("limit")
	return history.QueryOptions{
		Text:       strings.Join(args, " "),
		From:       from,
		To:         to,
		MaxResults: limit,
	}
}

func formatEntries(w io.Writer, entries []types.Entry, jsonOutput bool) error {
	if jsonOutput {
		if entries == nil {
			entries = []types.Entry{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(w, "No conversions recorded.")
		return nil
	}

	fmt.Fprintf(w, "%-5s  %-16s  %-30s  %-30s  %s\n", "ID", "Styles", "Input", "Output", "When")
	fmt.Fprintln(w, strings.Repeat("-", 100))
	for _, e := range entries {
		fmt.Fprintf(w, "%-5d  %-16s  %-30s  %-30s  %s\n",
			e.ID, e.From+" -> "+e.To, truncate(e.Input, 30), truncate(e.Output, 30), humanize.Time(e.CreatedAt))
	}
	fmt.Fprintf(w, "\n%d entries\n", len(entries))
	return nil
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func init() {
	historyListCmd.Flags().Int("limit", 0, "maximum entries (0 = use history.max_results)")
	historyListCmd.Flags().Bool("json", false, "output entries as JSON")

	historySearchCmd.Flags().String("from", "", "filter by source style")
	historySearchCmd.Flags().String("to", "", "filter by target style")
	historySearchCmd.Flags().Int("limit", 0, "maximum entries (0 = use history.max_results)")
	historySearchCmd.Flags().Bool("json", false, "output entries as JSON")

	historyExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	historyExportCmd.Flags().String("out", "", "write to this file instead of stdout")
	historyExportCmd.Flags().String("from", "", "filter by source style")
	historyExportCmd.Flags().String("to", "", "filter by target style")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historySearchCmd)
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyClearCmd)

	rootCmd.AddCommand(historyCmd)
}
