// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/pdiddy/convert-case/pkg/casing"
)

// styleValue is a pflag.Value accepting only known style identifiers.
type styleValue struct {
	style *casing.Style
}

var _ pflag.Value = (*styleValue)(nil)

func newStyleValue(def casing.Style, p *casing.Style) *styleValue {
	*p = def
	return &styleValue{style: p}
}

func (v *styleValue) String() string {
	if v.style == nil {
		return ""
	}
	return v.style.String()
}

func (v *styleValue) Set(s string) error {
	style, ok := casing.ParseStyle(s)
	if !ok {
		return fmt.Errorf("must be one of %s", styleList())
	}
	*v.style = style
	return nil
}

func (v *styleValue) Type() string {
	return "style"
}

func styleList() string {
	names := make([]string, 0, len(casing.Styles()))
	for _, s := range casing.Styles() {
		names = append(names, s.String())
	}
	return strings.Join(names, ", ")
}

func completeStyles(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var out []string
	for _, s := range casing.Styles() {
		if strings.HasPrefix(s.String(), toComplete) {
			out = append(out, s.String())
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

// addStyleFlags registers --from and --to on cmd. The flag defaults are empty
// so unset flags fall back to configuration.
func addStyleFlags(cmd *cobra.Command, from, to *casing.Style) {
	cmd.Flags().VarP(newStyleValue(0, from), "from", "f", "source style: "+styleList())
	cmd.Flags().VarP(newStyleValue(0, to), "to", "t", "target style: "+styleList())
	_ = cmd.RegisterFlagCompletionFunc("from", completeStyles)
	_ = cmd.RegisterFlagCompletionFunc("to", completeStyles)
}
