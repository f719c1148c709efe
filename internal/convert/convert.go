// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert runs case conversions in bulk: over a stream of lines or
// over the items of a YAML job file. Each item is reported as converted,
// unchanged, or failed.
package convert

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pdiddy/convert-case/pkg/casing"
	"github.com/pdiddy/convert-case/pkg/types"
)

// Converter renders input from one style into another. Lenient and Strict
// differ only in how unknown styles are handled.
type Converter interface {
	Convert(input, from, to string) (string, error)
}

// Lenient passes input through unchanged when a style is unknown.
type Lenient struct{}

// Convert never returns an error.
func (Lenient) Convert(input, from, to string) (string, error) {
	return casing.Convert(input, from, to), nil
}

// Strict rejects unknown styles with an error wrapping casing.ErrUnknownStyle.
type Strict struct{}

// Convert delegates to casing.ConvertStrict.
func (Strict) Convert(input, from, to string) (string, error) {
	return casing.ConvertStrict(input, from, to)
}

// ForMode returns Strict when strict is set and Lenient otherwise.
func ForMode(strict bool) Converter {
	if strict {
		return Strict{}
	}
	return Lenient{}
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int `json:"converted" yaml:"converted"`
	Unchanged int `json:"unchanged" yaml:"unchanged"`
	Failed    int `json:"failed" yaml:"failed"`
}

// Total returns the total number of items processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Unchanged + r.Failed
}

// HasFailures reports whether any item failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

func (r *BatchResult) add(status types.ConversionStatus) {
	switch status {
	case types.ConversionDone:
		r.Converted++
	case types.ConversionUnchanged:
		r.Unchanged++
	case types.ConversionFailed:
		r.Failed++
	}
}

// ConvertItem converts a single item, filling empty styles from defaults.
func ConvertItem(c Converter, item types.Item, defaults types.CaseConfig) types.ItemResult {
	res := types.ItemResult{
		Input: item.Input,
		From:  item.From,
		To:    item.To,
	}
	if res.From == "" {
		res.From = defaults.From
	}
	if res.To == "" {
		res.To = defaults.To
	}

	out, err := c.Convert(item.Input, res.From, res.To)
	switch {
	case err != nil:
		res.Output = item.Input
		res.Status = types.ConversionFailed
		res.Error = err.Error()
	case out == item.Input:
		res.Output = out
		res.Status = types.ConversionUnchanged
	default:
		res.Output = out
		res.Status = types.ConversionDone
	}
	return res
}

// ConvertBatch converts every item, printing per-item status to w and
// returning the results in input order with a summary.
func ConvertBatch(c Converter, items []types.Item, defaults types.CaseConfig, w io.Writer) ([]types.ItemResult, BatchResult) {
	var summary BatchResult
	results := make([]types.ItemResult, 0, len(items))
	for _, item := range items {
		res := ConvertItem(c, item, defaults)
		switch res.Status {
		case types.ConversionDone:
			fmt.Fprintf(w, "converted: %q -> %q\n", res.Input, res.Output)
		case types.ConversionUnchanged:
			fmt.Fprintf(w, "unchanged: %q\n", res.Input)
		case types.ConversionFailed:
			fmt.Fprintf(w, "failed:    %q (%s)\n", res.Input, res.Error)
		}
		summary.add(res.Status)
		results = append(results, res)
	}
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d unchanged, %d failed (total: %d)\n",
		summary.Converted, summary.Unchanged, summary.Failed, summary.Total())
	return results, summary
}

// ResultFunc observes each item result as it is produced.
type ResultFunc func(types.ItemResult)

// ConvertLines converts each line read from r using the default styles and
// writes the results to out, one per line. Failed lines are reported on
// errw and echoed to out unchanged so line positions are kept. observe may
// be nil.
func ConvertLines(c Converter, r io.Reader, defaults types.CaseConfig, out, errw io.Writer, observe ResultFunc) (BatchResult, error) {
	var summary BatchResult
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		res := ConvertItem(c, types.Item{Input: sc.Text()}, defaults)
		if res.Status == types.ConversionFailed {
			fmt.Fprintf(errw, "line %d: %s\n", line, res.Error)
		}
		if _, err := fmt.Fprintln(out, res.Output); err != nil {
			return summary, fmt.Errorf("writing line %d: %w", line, err)
		}
		summary.add(res.Status)
		if observe != nil {
			observe(res)
		}
	}
	if err := sc.Err(); err != nil {
		return summary, fmt.Errorf("reading input: %w", err)
	}
	return summary, nil
}
