// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pdiddy/convert-case/pkg/casing"
)

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List the supported capitalization styles",
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		return printStyles(cmd.OutOrStdout(), jsonOutput)
	},
}

type styleInfo struct {
	Name            string `json:"name"`
	Delimiter       string `json:"delimiter"`
	CapitalizeFirst bool   `json:"capitalize_first"`
	CapitalizeRest  bool   `json:"capitalize_rest"`
	CapitalizeAll   bool   `json:"capitalize_all"`
	Example         string `json:"example"`
}

func styleInfos() []styleInfo {
	var out []styleInfo
	for _, s := range casing.Styles() {
		rule, _ := s.Rule()
		out = append(out, styleInfo{
			Name:            s.String(),
			Delimiter:       rule.Delimiter,
			CapitalizeFirst: rule.CapitalizeFirst,
			CapitalizeRest:  rule.CapitalizeRest,
			CapitalizeAll:   rule.CapitalizeAll,
			Example:         casing.Convert("example style name", "human", s.String()),
		})
	}
	return out
}

func printStyles(w io.Writer, jsonOutput bool) error {
	infos := styleInfos()
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	fmt.Fprintf(w, "%-7s  %-9s  %-5s  %-5s  %-5s  %s\n", "Style", "Delimiter", "First", "Rest", "All", "Example")
	for _, s := range infos {
		fmt.Fprintf(w, "%-7s  %-9s  %-5t  %-5t  %-5t  %s\n",
			s.Name, strconv.Quote(s.Delimiter), s.CapitalizeFirst, s.CapitalizeRest, s.CapitalizeAll, s.Example)
	}
	return nil
}

func init() {
	stylesCmd.Flags().Bool("json", false, "output the style table as JSON")

	rootCmd.AddCommand(stylesCmd)
}
